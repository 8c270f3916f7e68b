package util

import (
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/replicatedhq/usersvc/pkg/buildversion"
)

// NewHTTPClient returns a retrying client on a clean (non-shared) transport.
// retryMax of 0 disables retries.
func NewHTTPClient(retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.RetryMax = retryMax
	client.Logger = nil
	client.ErrorHandler = errorHandler
	return client
}

// NewRetryableRequest returns a retryablehttp.Request object with usersvc defaults set, including a User-Agent header.
func NewRetryableRequest(method string, url string, body io.Reader) (*retryablehttp.Request, error) {
	req, err := retryablehttp.NewRequest(method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call newrequest")
	}

	injectUserAgentHeader(req.Header)
	return req, nil
}

func injectUserAgentHeader(header http.Header) {
	header.Add("User-Agent", buildversion.GetUserAgent())
}

// errorHandler mimics net/http rather than doing anything fancy like the retryablehttp library.
func errorHandler(resp *http.Response, err error, attempt int) (*http.Response, error) {
	return resp, err
}
