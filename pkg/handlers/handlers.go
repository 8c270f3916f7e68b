package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/replicatedhq/usersvc/pkg/user"
)

var _ UsersHandler = (*Handler)(nil)

type Handler struct {
	Users *user.Controller

	// DetailedValidationErrors adds the violated constraints to 400 responses.
	DetailedValidationErrors bool
}

// NewHandler returns a new default Handler
func NewHandler(users *user.Controller) *Handler {
	return &Handler{
		Users: users,
	}
}

func RegisterRoutes(r *mux.Router, handler UsersHandler) {
	r.Use(RequestIDMiddleware, LoggingMiddleware, CorsMiddleware)

	r.Name("Healthz").Path("/healthz").Methods("GET").HandlerFunc(handler.Healthz)

	// Users
	r.Name("CreateUser").Path("/users").Methods("POST").HandlerFunc(handler.CreateUser)
	r.Name("ListUsers").Path("/users").Methods("GET").HandlerFunc(handler.ListUsers)
	r.Name("GetUser").Path("/users/{id}").Methods("GET").HandlerFunc(handler.GetUser)

	// mux skips middleware when nothing matches. Preflight requests land here since no
	// route is registered for OPTIONS.
	r.NotFoundHandler = RequestIDMiddleware(LoggingMiddleware(CorsMiddleware(StatusNotFoundHandler{})))
	r.MethodNotAllowedHandler = RequestIDMiddleware(LoggingMiddleware(CorsMiddleware(StatusMethodNotAllowedHandler{})))
}

func JSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
