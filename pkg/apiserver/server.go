package apiserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/buildversion"
	"github.com/replicatedhq/usersvc/pkg/handlers"
	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/replicatedhq/usersvc/pkg/store"
	"github.com/replicatedhq/usersvc/pkg/user"
)

const (
	DefaultPort     = 3000
	shutdownTimeout = 10 * time.Second
)

type APIServerParams struct {
	Port                     int
	DetailedValidationErrors bool

	// Store defaults to a new in-memory store
	Store store.Store
}

// Start binds the port and serves until ctx is cancelled. A bind failure is returned
// immediately.
func Start(ctx context.Context, params *APIServerParams) error {
	logger.Infof("usersvc version %s", buildversion.Version())

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", params.Port))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", params.Port)
	}

	logger.Infof("Starting users API on port %d...", params.Port)

	return Serve(ctx, listener, NewRouter(params))
}

func NewRouter(params *APIServerParams) *mux.Router {
	userStore := params.Store
	if userStore == nil {
		userStore = store.New()
	}

	controller := user.NewController(user.NewService(userStore))

	handler := handlers.NewHandler(controller)
	handler.DetailedValidationErrors = params.DetailedValidationErrors

	r := mux.NewRouter()
	handlers.RegisterRoutes(r, handler)

	return r
}

// Serve runs an http server on listener and shuts it down gracefully when ctx is done.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(err, "failed to serve")
	case <-ctx.Done():
	}

	logger.Info("shutting down users API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down server")
	}

	return nil
}
