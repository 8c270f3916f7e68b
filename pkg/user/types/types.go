package types

import (
	"fmt"
	"strings"
)

// User is the single schema for a user record. The json tags define the wire shape and
// the validate tags define the constraints; both the HTTP layer and the controller
// validate against this one definition.
type User struct {
	ID    int    `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"required,gte=18,lte=100"`
}

// FieldError is one violated constraint. Field is the json name of the field, or empty
// when the body as a whole could not be decoded.
type FieldError struct {
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
}

func (e FieldError) String() string {
	s := e.Constraint
	if e.Param != "" {
		s = fmt.Sprintf("%s=%s", s, e.Param)
	}
	if e.Field == "" {
		return s
	}
	return fmt.Sprintf("%s: %s", e.Field, s)
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "invalid user data"
}

// Details lists the violated constraints, for logs.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "; ")
}
