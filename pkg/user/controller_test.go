package user

import (
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/store/memstore"
	mock_store "github.com/replicatedhq/usersvc/pkg/store/mock"
	storetypes "github.com/replicatedhq/usersvc/pkg/store/types"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController() *Controller {
	return NewController(NewService(memstore.New()))
}

func TestCreateThenGetUser(t *testing.T) {
	req := require.New(t)
	c := newController()

	created, err := c.CreateUser([]byte(`{"id":1,"name":"Alice","email":"a@x.com","age":30}`))
	req.NoError(err)

	want := usertypes.User{ID: 1, Name: "Alice", Email: "a@x.com", Age: 30}
	req.Equal(want, *created)

	got, err := c.GetUser(1)
	req.NoError(err)
	req.Equal(want, *got)
}

func TestCreateUserRejectsInvalidInput(t *testing.T) {
	inputs := map[string]string{
		"age 17":         `{"id":1,"name":"Alice","email":"a@x.com","age":17}`,
		"name ab":        `{"id":1,"name":"ab","email":"a@x.com","age":30}`,
		"bad email":      `{"id":1,"name":"Alice","email":"a@","age":30}`,
		"negative id":    `{"id":-1,"name":"Alice","email":"a@x.com","age":30}`,
		"missing fields": `{}`,
		"string age":     `{"id":1,"name":"Alice","email":"a@x.com","age":"30"}`,
		"empty body":     ``,
		"uppercase keys": `{"ID":1,"NAME":"Alice","EMAIL":"a@x.com","AGE":30}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			c := newController()

			_, err := c.CreateUser([]byte(`{"id":9,"name":"Zed","email":"z@x.com","age":40}`))
			req.NoError(err)

			_, err = c.CreateUser([]byte(input))
			req.Error(err)

			validationErr, ok := AsValidationError(err)
			req.True(ok)
			req.NotEmpty(validationErr.Fields)

			users, err := c.ListUsers()
			req.NoError(err)
			req.Len(users, 1)
		})
	}
}

func TestListUsersAfterCreates(t *testing.T) {
	req := require.New(t)
	c := newController()

	want := []usertypes.User{}
	for i := 1; i <= 5; i++ {
		u := usertypes.User{ID: i, Name: fmt.Sprintf("user%d", i), Email: fmt.Sprintf("u%d@x.com", i), Age: 20 + i}
		raw := fmt.Sprintf(`{"id":%d,"name":%q,"email":%q,"age":%d}`, u.ID, u.Name, u.Email, u.Age)
		_, err := c.CreateUser([]byte(raw))
		req.NoError(err)
		want = append(want, u)
	}

	users, err := c.ListUsers()
	req.NoError(err)
	req.Equal(want, users)
}

func TestGetUnknownUser(t *testing.T) {
	c := newController()

	_, err := c.GetUser(42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, ok := AsValidationError(err)
	assert.False(t, ok)
}

func TestCreateDuplicateID(t *testing.T) {
	req := require.New(t)
	c := newController()

	_, err := c.CreateUser([]byte(`{"id":1,"name":"Alice","email":"a@x.com","age":30}`))
	req.NoError(err)
	_, err = c.CreateUser([]byte(`{"id":1,"name":"Alicia","email":"b@x.com","age":31}`))
	req.NoError(err)

	users, err := c.ListUsers()
	req.NoError(err)
	req.Len(users, 2)
	req.Equal(1, users[0].ID)
	req.Equal(1, users[1].ID)

	got, err := c.GetUser(1)
	req.NoError(err)
	req.Equal("Alice", got.Name)
}

func TestControllerDelegatesToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock_store.NewMockStore(ctrl)
	c := NewController(NewService(mockStore))

	alice := usertypes.User{ID: 1, Name: "Alice", Email: "a@x.com", Age: 30}

	mockStore.EXPECT().AddUser(alice).Return(&alice, nil)
	mockStore.EXPECT().GetUserByID(2).Return(nil, errors.Wrap(storetypes.ErrNotFound, "user 2"))
	mockStore.EXPECT().ListUsers().Return(nil, errors.New("store unavailable"))

	created, err := c.CreateUser([]byte(`{"id":1,"name":"Alice","email":"a@x.com","age":30}`))
	require.NoError(t, err)
	assert.Equal(t, alice, *created)

	_, err = c.GetUser(2)
	assert.True(t, IsNotFound(err))

	_, err = c.ListUsers()
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "failed to list users: store unavailable", err.Error())
}

func TestInvalidInputNeverReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any store call fails the test
	mockStore := mock_store.NewMockStore(ctrl)
	c := NewController(NewService(mockStore))

	_, err := c.CreateUser([]byte(`{"id":1,"name":"Al","email":"a@x.com","age":30}`))
	require.Error(t, err)
}
