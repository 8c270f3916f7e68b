package user

import (
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/store"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

// Service mediates between the controller and the store.
type Service struct {
	store store.UserStore
}

func NewService(s store.UserStore) *Service {
	return &Service{
		store: s,
	}
}

func (s *Service) AddUser(u usertypes.User) (*usertypes.User, error) {
	added, err := s.store.AddUser(u)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add user")
	}
	return added, nil
}

func (s *Service) GetUserByID(id int) (*usertypes.User, error) {
	u, err := s.store.GetUserByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	return u, nil
}

func (s *Service) ListUsers() ([]usertypes.User, error) {
	users, err := s.store.ListUsers()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}
