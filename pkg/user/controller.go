package user

import (
	"github.com/pkg/errors"
	storetypes "github.com/replicatedhq/usersvc/pkg/store/types"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{
		service: service,
	}
}

// CreateUser decodes and validates raw json before storing it. A rejected input returns
// a *usertypes.ValidationError and nothing is stored.
func (c *Controller) CreateUser(raw []byte) (*usertypes.User, error) {
	u, err := usertypes.DecodeUser(raw)
	if err != nil {
		return nil, err
	}

	return c.service.AddUser(*u)
}

func (c *Controller) GetUser(id int) (*usertypes.User, error) {
	return c.service.GetUserByID(id)
}

func (c *Controller) ListUsers() ([]usertypes.User, error) {
	return c.service.ListUsers()
}

func IsNotFound(err error) bool {
	return storetypes.IsNotFound(err)
}

// AsValidationError returns the validation failure carried by err, if any.
func AsValidationError(err error) (*usertypes.ValidationError, bool) {
	var validationErr *usertypes.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
