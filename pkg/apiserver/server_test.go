package apiserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFailsWhenPortIsTaken(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	err = Start(context.Background(), &APIServerParams{Port: port})
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("failed to listen on port %d", port))
}

func TestServeRoundTrip(t *testing.T) {
	req := require.New(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	baseURL := fmt.Sprintf("http://%s", listener.Addr().String())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, listener, NewRouter(&APIServerParams{}))
	}()

	resp, err := http.Post(baseURL+"/users", "application/json", strings.NewReader(`{"id":1,"name":"Alice","email":"a@x.com","age":30}`))
	req.NoError(err)
	resp.Body.Close()
	req.Equal(http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(baseURL + "/users")
	req.NoError(err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.JSONEq(`[{"id":1,"name":"Alice","email":"a@x.com","age":30}]`, string(body))

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRoutersDoNotShareState(t *testing.T) {
	first := NewRouter(&APIServerParams{})
	second := NewRouter(&APIServerParams{})

	w := httptest.NewRecorder()
	first.ServeHTTP(w, httptest.NewRequest("POST", "/users", strings.NewReader(`{"id":1,"name":"Alice","email":"a@x.com","age":30}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	second.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	assert.JSONEq(t, `[]`, w.Body.String())
}
