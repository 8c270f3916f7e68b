package memstore

import (
	"sync"

	"github.com/pkg/errors"
	storetypes "github.com/replicatedhq/usersvc/pkg/store/types"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

// MemStore keeps users in process memory, in insertion order. Nothing is persisted.
// Ids are not required to be unique; lookups return the first match.
type MemStore struct {
	mu    sync.RWMutex
	users []usertypes.User
}

func New() *MemStore {
	return &MemStore{
		users: []usertypes.User{},
	}
}

func (s *MemStore) AddUser(user usertypes.User) (*usertypes.User, error) {
	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()

	return &user, nil
}

func (s *MemStore) GetUserByID(id int) (*usertypes.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}

	return nil, errors.Wrapf(storetypes.ErrNotFound, "user %d", id)
}

// ListUsers returns a copy of the stored users; changes to it do not affect the store.
func (s *MemStore) ListUsers() ([]usertypes.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]usertypes.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *MemStore) IsNotFound(err error) bool {
	return storetypes.IsNotFound(err)
}
