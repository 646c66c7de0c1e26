package portalshell

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/skybarer/portalshell/menu"
	"github.com/skybarer/portalshell/session"
)

// Default endpoint paths for the portal's structured server calls.
const (
	DefaultAuthCheckPath = "/rpc/auth/check"
	DefaultLogoutPath    = "/rpc/auth/logout"
)

// Endpoints holds the RPC paths the portal consumes. Zero-valued fields get
// defaults.
type Endpoints struct {
	// AuthCheck validates the current user's session.
	AuthCheck string

	// Logout notifies the server that the session is ending.
	Logout string

	// Modules returns the module list for a user.
	Modules string

	// Links returns the service-link list for a user and module.
	Links string
}

// Logger interface for structured logging.
// Compatible with logging.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds the required configuration for a Portal.
//
// Example:
//
//	portal, _ := portalshell.New(portalshell.Config{
//	    BaseURL: "https://admin.example.edu",
//	    Logger:  logging.New(os.Stderr, "info"),
//	})
type Config struct {
	// BaseURL is the server all fragment and RPC paths resolve against
	// (required).
	BaseURL string

	// HTTPClient used for every request. Defaults to http.DefaultClient;
	// no client-imposed timeout is added to it.
	HTTPClient *http.Client

	// Logger for structured logging. If nil, logging is disabled.
	Logger Logger

	// Store is the tab-scoped state carrier. If nil, a fresh in-memory
	// store is created.
	Store session.Store

	// Endpoints overrides the default RPC paths.
	Endpoints Endpoints
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Store == nil {
		c.Store = session.NewMemoryStore()
	}
	if c.Endpoints.AuthCheck == "" {
		c.Endpoints.AuthCheck = DefaultAuthCheckPath
	}
	if c.Endpoints.Logout == "" {
		c.Endpoints.Logout = DefaultLogoutPath
	}
	if c.Endpoints.Modules == "" {
		c.Endpoints.Modules = menu.DefaultModulesPath
	}
	if c.Endpoints.Links == "" {
		c.Endpoints.Links = menu.DefaultLinksPath
	}
}
