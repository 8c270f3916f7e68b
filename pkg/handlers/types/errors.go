package types

import (
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

const (
	InvalidUserDataMessage  = "Invalid user data"
	UserNotFoundMessage     = "User not found"
	NotFoundMessage         = "Not found"
	MethodNotAllowedMessage = "Method not allowed"
)

type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []usertypes.FieldError `json:"fields,omitempty"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{
		Error: msg,
	}
}

type HealthzResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	GitSHA  string `json:"gitSha,omitempty"`
}
