package portalshell

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/skybarer/portalshell/hooks"
	"github.com/skybarer/portalshell/nav"
)

// Option is a functional option for configuring a Portal
type Option func(*internalConfig) error

// internalConfig holds the full portal configuration including optional
// parameters
type internalConfig struct {
	routes         []nav.RouteSpec
	opener         nav.Opener
	policy         *bluemonday.Policy
	hooks          *hooks.Registry
	markdownLabels bool
}

// WithRoutes replaces the embedded default route table.
func WithRoutes(routes []nav.RouteSpec) Option {
	return func(c *internalConfig) error {
		c.routes = routes
		return nil
	}
}

// WithOpener sets the callback that receives external route URLs.
func WithOpener(opener nav.Opener) Option {
	return func(c *internalConfig) error {
		c.opener = opener
		return nil
	}
}

// WithSanitizer installs a bluemonday policy at the fragment injection
// boundary. By default fragments are trusted server resources and are
// injected verbatim.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(c *internalConfig) error {
		c.policy = policy
		return nil
	}
}

// WithHooks attaches an observation registry.
func WithHooks(reg *hooks.Registry) Option {
	return func(c *internalConfig) error {
		c.hooks = reg
		return nil
	}
}

// WithMarkdownLabels renders descriptor descriptions from markdown.
func WithMarkdownLabels() Option {
	return func(c *internalConfig) error {
		c.markdownLabels = true
		return nil
	}
}
