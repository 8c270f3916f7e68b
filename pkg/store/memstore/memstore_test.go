package memstore

import (
	"fmt"
	"sync"
	"testing"

	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(id int) usertypes.User {
	return usertypes.User{
		ID:    id,
		Name:  fmt.Sprintf("user-%d", id),
		Email: fmt.Sprintf("user%d@example.com", id),
		Age:   30,
	}
}

func TestAddAndGetUser(t *testing.T) {
	req := require.New(t)
	s := New()

	added, err := s.AddUser(testUser(1))
	req.NoError(err)
	req.Equal(testUser(1), *added)

	got, err := s.GetUserByID(1)
	req.NoError(err)
	req.Equal(testUser(1), *got)

	_, err = s.GetUserByID(2)
	req.Error(err)
	req.True(s.IsNotFound(err))
	req.Equal("user 2: not found", err.Error())
}

func TestListUsersInsertionOrder(t *testing.T) {
	req := require.New(t)
	s := New()

	users, err := s.ListUsers()
	req.NoError(err)
	req.NotNil(users)
	req.Empty(users)

	for _, id := range []int{5, 2, 9} {
		_, err := s.AddUser(testUser(id))
		req.NoError(err)
	}

	users, err = s.ListUsers()
	req.NoError(err)
	req.Equal([]usertypes.User{testUser(5), testUser(2), testUser(9)}, users)
}

func TestListUsersReturnsCopy(t *testing.T) {
	req := require.New(t)
	s := New()

	_, err := s.AddUser(testUser(1))
	req.NoError(err)

	users, err := s.ListUsers()
	req.NoError(err)
	users[0].Name = "changed"

	got, err := s.GetUserByID(1)
	req.NoError(err)
	req.Equal("user-1", got.Name)
}

func TestDuplicateIDs(t *testing.T) {
	req := require.New(t)
	s := New()

	first := testUser(7)
	second := testUser(7)
	second.Name = "second"

	_, err := s.AddUser(first)
	req.NoError(err)
	_, err = s.AddUser(second)
	req.NoError(err)

	users, err := s.ListUsers()
	req.NoError(err)
	req.Len(users, 2)

	got, err := s.GetUserByID(7)
	req.NoError(err)
	req.Equal(first, *got)
}

func TestConcurrentAdds(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.AddUser(testUser(id))
		}(i)
	}
	wg.Wait()

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 50)
}
