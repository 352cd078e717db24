package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/netx"
	"github.com/google/uuid"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	profilePath  = "/api/user/me"
)

type loginResponse struct {
	Token string `json:"token"`
}

// HTTPClient talks to the auth API over HTTP/JSON. It never retries and sets
// no timeout of its own; callers bound requests through the context.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.http = c
	}
}

// WithLogger sets the logger used for request outcomes.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) {
		h.log = l
	}
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (for example "http://127.0.0.1:8080").
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid server base url %q: scheme and host required", baseURL)
	}

	c := &HTTPClient{
		baseURL: base,
		http:    &http.Client{},
		log:     logging.Discard(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends one request. A transport failure is returned as *NetworkError.
func (c *HTTPClient) do(ctx context.Context, method, path string, token models.AuthToken, body any) (*http.Response, error) {
	req, err := netx.NewJSONRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	reqID := c.newID()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+string(token))
	}

	log := c.log.With("method", method, "path", path, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, &NetworkError{Message: err.Error(), Err: err}
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode)
	return resp, nil
}

// Register creates an account. Any 2xx is success; the body is ignored.
func (c *HTTPClient) Register(ctx context.Context, r models.RegistrationRequest) error {
	resp, err := c.do(ctx, http.MethodPost, registerPath, "", r)
	if err != nil {
		return err
	}
	defer netx.DrainAndClose(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return &RegistrationFailedError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Login exchanges credentials for a token.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	resp, err := c.do(ctx, http.MethodPost, loginPath, "", creds)
	if err != nil {
		return "", err
	}
	defer netx.DrainAndClose(resp.Body)

	switch {
	case netx.IsSuccess(resp.StatusCode):
		var lr loginResponse
		if err := netx.DecodeJSON(resp.Body, &lr); err != nil {
			return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
		}
		if lr.Token == "" {
			return "", fmt.Errorf("%w: empty token in response", ErrLoginFailed)
		}
		return models.AuthToken(lr.Token), nil
	case resp.StatusCode == http.StatusUnauthorized:
		return "", ErrInvalidCredentials
	case resp.StatusCode == http.StatusBadRequest:
		return "", ErrInvalidInput
	default:
		return "", &UnexpectedStatusError{StatusCode: resp.StatusCode, Op: ErrLoginFailed}
	}
}

// FetchProfile loads the user the token belongs to. Every failure comes back
// as *ProfileFetchError.
func (c *HTTPClient) FetchProfile(ctx context.Context, token models.AuthToken) (*models.UserProfile, error) {
	resp, err := c.do(ctx, http.MethodGet, profilePath, token, nil)
	if err != nil {
		return nil, &ProfileFetchError{Err: err}
	}
	defer netx.DrainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &ProfileFetchError{StatusCode: resp.StatusCode}
	}

	var profile models.UserProfile
	if err := netx.DecodeJSON(resp.Body, &profile); err != nil {
		return nil, &ProfileFetchError{StatusCode: resp.StatusCode, Err: err}
	}
	return &profile, nil
}
