// Package nav resolves symbolic actions to fragment routes and dispatches
// them against the page shell.
//
// The route table is static configuration data, not code: it is enumerated
// in routes.yaml, embedded at build time, and parsed once. Each entry maps a
// symbolic action to "fetch this path, inject it into this region".
package nav

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skybarer/portalshell/session"
)

// Action is a symbolic navigation target. The portal's own flows reference
// the constants below; the remaining actions exist only as route-table data.
type Action string

const (
	ActionHome        Action = "home"
	ActionLogin       Action = "login"
	ActionModuleList  Action = "module-list"
	ActionServiceList Action = "service-list"
)

// RouteSpec maps one action to a resource path and a target region.
// Immutable once loaded.
type RouteSpec struct {
	Action   Action `yaml:"action"`
	Path     string `yaml:"path"`
	Region   string `yaml:"region"`
	ParamKey string `yaml:"paramKey,omitempty"`
}

// External reports whether the route escapes to an external site instead of
// injecting a fragment.
func (r RouteSpec) External() bool {
	return strings.HasPrefix(r.Path, "http://") || strings.HasPrefix(r.Path, "https://")
}

// paramKey returns the store key a navigation parameter is written under.
func (r RouteSpec) paramKey() string {
	if r.ParamKey != "" {
		return r.ParamKey
	}
	return session.KeyParam
}

//go:embed routes.yaml
var routesYAML []byte

type routeFile struct {
	Routes []RouteSpec `yaml:"routes"`
}

var defaultRoutes = mustParseRoutes(routesYAML)

// DefaultRoutes returns the embedded route table.
func DefaultRoutes() []RouteSpec {
	routes := make([]RouteSpec, len(defaultRoutes))
	copy(routes, defaultRoutes)
	return routes
}

// ParseRoutes parses a YAML route table, rejecting incomplete or duplicate
// entries.
func ParseRoutes(data []byte) ([]RouteSpec, error) {
	var file routeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse route table: %w", err)
	}

	seen := make(map[Action]bool, len(file.Routes))
	for i, r := range file.Routes {
		if r.Action == "" || r.Path == "" {
			return nil, fmt.Errorf("route %d: action and path are required", i)
		}
		if !r.External() && r.Region == "" {
			return nil, fmt.Errorf("route %q: region is required for fragment routes", r.Action)
		}
		if seen[r.Action] {
			return nil, fmt.Errorf("route %q: duplicate action", r.Action)
		}
		seen[r.Action] = true
	}
	return file.Routes, nil
}

func mustParseRoutes(data []byte) []RouteSpec {
	routes, err := ParseRoutes(data)
	if err != nil {
		panic("nav: embedded route table is invalid: " + err.Error())
	}
	return routes
}
