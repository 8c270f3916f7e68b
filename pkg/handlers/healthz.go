package handlers

import (
	"net/http"

	"github.com/replicatedhq/usersvc/pkg/buildversion"
	"github.com/replicatedhq/usersvc/pkg/handlers/types"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, types.HealthzResponse{
		Status:  "ok",
		Version: buildversion.Version(),
		GitSHA:  buildversion.GitSHA(),
	})
}

type StatusNotFoundHandler struct{}

func (h StatusNotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, types.NewErrorResponse(types.NotFoundMessage))
}

type StatusMethodNotAllowedHandler struct{}

func (h StatusMethodNotAllowedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, types.NewErrorResponse(types.MethodNotAllowedMessage))
}
