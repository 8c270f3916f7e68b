package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/handlers/types"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/replicatedhq/usersvc/pkg/user"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
	"go.uber.org/zap"
)

const maxUserBodySize = 1 << 20

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUserBodySize))
	if err != nil {
		logger.Debug("failed to read create user request", zap.Error(err), zap.String("requestId", RequestIDFromContext(r.Context())))
		JSON(w, http.StatusBadRequest, types.NewErrorResponse(types.InvalidUserDataMessage))
		return
	}

	created, err := h.Users.CreateUser(body)
	if err != nil {
		if validationErr, ok := user.AsValidationError(err); ok {
			logger.Debug("rejected user",
				zap.String("reason", validationErr.Details()),
				zap.String("requestId", RequestIDFromContext(r.Context())),
			)
			JSON(w, http.StatusBadRequest, h.invalidUserResponse(validationErr))
			return
		}
		logger.Error(errors.Wrap(err, "failed to create user"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusCreated, created)
}

func (h *Handler) invalidUserResponse(validationErr *usertypes.ValidationError) types.ErrorResponse {
	response := types.NewErrorResponse(types.InvalidUserDataMessage)
	if h.DetailedValidationErrors {
		response.Fields = validationErr.Fields
	}
	return response
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	// an id that is not an integer cannot match any stored user
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		JSON(w, http.StatusNotFound, types.NewErrorResponse(types.UserNotFoundMessage))
		return
	}

	found, err := h.Users.GetUser(id)
	if err != nil {
		if user.IsNotFound(err) {
			JSON(w, http.StatusNotFound, types.NewErrorResponse(types.UserNotFoundMessage))
			return
		}
		logger.Error(errors.Wrapf(err, "failed to get user %d", id))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	JSON(w, http.StatusOK, found)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers()
	if err != nil {
		logger.Error(errors.Wrap(err, "failed to list users"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []usertypes.User{}
	}

	JSON(w, http.StatusOK, users)
}
