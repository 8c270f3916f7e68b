package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	handlertypes "github.com/replicatedhq/usersvc/pkg/handlers/types"
	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
	"github.com/replicatedhq/usersvc/pkg/util"
)

const defaultRetryMax = 3

// APIError is a non-success response from the users API.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []usertypes.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	details := &usertypes.ValidationError{Fields: e.Fields}
	return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, details.Details())
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	endpoint string

	// reads are retried, creates are not since ids are not unique and a retried
	// create could store the user twice
	readClient  *retryablehttp.Client
	writeClient *retryablehttp.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		readClient:  util.NewHTTPClient(defaultRetryMax),
		writeClient: util.NewHTTPClient(0),
	}
}

func (c *Client) ListUsers() ([]usertypes.User, error) {
	users := []usertypes.User{}
	if err := c.do(c.readClient, "GET", "/users", nil, http.StatusOK, &users); err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (c *Client) GetUser(id int) (*usertypes.User, error) {
	u := usertypes.User{}
	if err := c.do(c.readClient, "GET", fmt.Sprintf("/users/%d", id), nil, http.StatusOK, &u); err != nil {
		return nil, errors.Wrapf(err, "failed to get user %d", id)
	}
	return &u, nil
}

func (c *Client) CreateUser(u usertypes.User) (*usertypes.User, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal user")
	}

	created := usertypes.User{}
	if err := c.do(c.writeClient, "POST", "/users", b, http.StatusCreated, &created); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	return &created, nil
}

func (c *Client) do(client *retryablehttp.Client, method string, path string, body []byte, expectStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := util.NewRetryableRequest(method, c.endpoint+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read")
	}

	if resp.StatusCode != expectStatus {
		errResponse := handlertypes.ErrorResponse{}
		if err := json.Unmarshal(b, &errResponse); err != nil || errResponse.Error == "" {
			errResponse.Error = strings.TrimSpace(string(b))
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResponse.Error,
			Fields:     errResponse.Fields,
		}
	}

	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}

	return nil
}
