package handlers

import "net/http"

//go:generate mockgen -destination=mock/mock.go -package=mock_handlers github.com/replicatedhq/usersvc/pkg/handlers UsersHandler

type UsersHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)

	// Users
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}
