package types

import "github.com/pkg/errors"

var ErrNotFound = errors.New("not found")

func IsNotFound(err error) bool {
	return err != nil && errors.Cause(err) == ErrNotFound
}
