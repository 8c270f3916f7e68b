package types

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate   = newValidator()
	userFields = jsonFieldNames(reflect.TypeOf(User{}))
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func jsonFieldNames(t reflect.Type) map[string]bool {
	names := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}

// DecodeUser decodes raw json into a User and validates it. Any failure is returned as a
// *ValidationError.
//
// Keys must match the json field names exactly. encoding/json would otherwise fill
// "id" from "ID" or "Id", so keys that differ only in case are dropped like any
// other unknown key.
func DecodeUser(raw []byte) (*User, error) {
	object := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, decodeError(err)
	}

	exact := map[string]json.RawMessage{}
	for key, value := range object {
		if userFields[key] {
			exact[key] = value
		}
	}

	b, err := json.Marshal(exact)
	if err != nil {
		return nil, decodeError(err)
	}

	u := User{}
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, decodeError(err)
	}

	if err := Validate(u); err != nil {
		return nil, err
	}

	return &u, nil
}

// Validate checks every constraint on u and reports all violations together.
func Validate(u User) error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate user")
	}

	validationErr := &ValidationError{}
	for _, fe := range fieldErrs {
		validationErr.Fields = append(validationErr.Fields, FieldError{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Param:      fe.Param(),
		})
	}
	return validationErr
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// an empty field means the body itself is not an object
		param := "object"
		if typeErr.Field != "" {
			param = typeErr.Type.String()
		}
		return &ValidationError{
			Fields: []FieldError{
				{
					Field:      typeErr.Field,
					Constraint: "type",
					Param:      param,
				},
			},
		}
	}

	return &ValidationError{
		Fields: []FieldError{
			{Constraint: "json"},
		},
	}
}
