package hypothesis

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/http/httpguts"
)

const (
	// DefaultBaseURL is the production Hypothesis API root.
	DefaultBaseURL = "https://api.hypothes.is/api"

	// acceptHeader pins the versioned API media type.
	acceptHeader = "application/vnd.hypothesis.v1+json"

	defaultTimeout = 30 * time.Second
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._]{3,30}$`)

// Config contains configuration for the Hypothesis client.
type Config struct {
	// BaseURL is the API root. Default: DefaultBaseURL.
	BaseURL string

	// Username is the account username.
	Username string

	// DeveloperKey is the personal API token, sent as a bearer token.
	// Keep it in an environment variable rather than on disk.
	DeveloperKey string

	// Authority is the account authority. Default "hypothes.is".
	Authority string

	// Timeout for API requests. Default 30 seconds. Callers needing
	// per-call deadlines should use context cancellation instead.
	Timeout time.Duration

	// Logger receives debug-level request/response logs. Optional.
	Logger hclog.Logger

	// HTTPClient overrides the transport. Optional; mainly for tests.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with the production defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Authority: DefaultAuthority,
		Timeout:   defaultTimeout,
	}
}

// Validate checks the configuration, including that the developer key can
// be carried in an Authorization header. Construction fails here, before
// any call is made.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Username, validation.Required, validation.Match(usernamePattern)),
		validation.Field(&c.DeveloperKey, validation.Required, validation.By(checkHeaderValue)),
		validation.Field(&c.Authority, validation.Required),
	)
}

func checkHeaderValue(value any) error {
	key, _ := value.(string)
	if !httpguts.ValidHeaderFieldValue("Bearer " + key) {
		return fmt.Errorf("contains characters not allowed in an HTTP header")
	}
	return nil
}

// newHTTPClient builds the connection-reuse transport shared by all calls.
func (c *Config) newHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
