package store

import (
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

//go:generate mockgen -destination=mock/mock.go -package=mock_store github.com/replicatedhq/usersvc/pkg/store Store

type Store interface {
	UserStore

	IsNotFound(err error) bool
}

type UserStore interface {
	AddUser(user usertypes.User) (*usertypes.User, error)
	GetUserByID(id int) (*usertypes.User, error)
	ListUsers() ([]usertypes.User, error)
}
