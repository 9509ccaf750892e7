package hypothesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-envconfig"
)

// Environment variables read by FromEnv.
const (
	EnvUsername     = "HYPOTHESIS_NAME"
	EnvDeveloperKey = "HYPOTHESIS_KEY"
)

// Client is a typed binding for the Hypothesis web API. It holds the base
// URL, the authenticated transport and the authenticated account identity,
// and exposes one method per endpoint. It keeps no entity state between
// calls and never retries a failed call.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     hclog.Logger

	// Username is the authenticated account's username.
	Username string

	// User is the authenticated account ID,
	// "acct:<username>@<authority>".
	User AccountID
}

// NewClient builds a client for the given username and developer key using
// the production defaults.
func NewClient(username, developerKey string) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Username = username
	cfg.DeveloperKey = developerKey
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig builds a client from an explicit Config. Validation
// failures (bad base URL, key not representable as a header value) surface
// here, before any call is made.
func NewClientWithConfig(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Authority == "" {
		cfg.Authority = DefaultAuthority
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return &Client{
		config:     cfg,
		httpClient: cfg.newHTTPClient(),
		logger:     cfg.Logger.Named("hypothesis"),
		Username:   cfg.Username,
		User:       MakeAccountID(cfg.Username, cfg.Authority),
	}, nil
}

// FromEnv builds a client from the HYPOTHESIS_NAME and HYPOTHESIS_KEY
// environment variables. A missing variable yields an *EnvironmentError
// naming it.
func FromEnv(ctx context.Context) (*Client, error) {
	var creds struct {
		Username     string `env:"HYPOTHESIS_NAME"`
		DeveloperKey string `env:"HYPOTHESIS_KEY"`
	}
	if err := envconfig.Process(ctx, &creds); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if creds.Username == "" {
		return nil, &EnvironmentError{
			Variable:   EnvUsername,
			Suggestion: "set the environment variable " + EnvUsername + " to your username",
		}
	}
	if creds.DeveloperKey == "" {
		return nil, &EnvironmentError{
			Variable:   EnvDeveloperKey,
			Suggestion: "set the environment variable " + EnvDeveloperKey + " to your personal API key",
		}
	}
	return NewClient(creds.Username, creds.DeveloperKey)
}

// endpoint joins the base URL, path and query into a request URL.
func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.config.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("building URL for %s: %w", path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// do executes a single HTTP round trip. The response body is read in full
// as text; a non-2xx status surfaces as an *APIError (zero-valued if even
// the error body fails to parse), a network failure as a *TransportError,
// and a 2xx body matching neither the success nor the error shape as a
// *DecodeError. Exactly one request is issued per call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body for %s: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.DeveloperKey)
	req.Header.Set("Accept", acceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request", "method", method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	c.logger.Debug("received response", "method", method, "url", endpoint,
		"status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// The body is not the success shape; see whether the service
		// answered 2xx with an error body before giving up.
		apiErr := &APIError{StatusCode: resp.StatusCode, Raw: string(raw)}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr == nil && (apiErr.Status != "" || apiErr.Reason != "") {
			return apiErr
		}
		return &DecodeError{Raw: string(raw), Err: err}
	}
	return nil
}
