package nav

import (
	"fmt"

	"github.com/skybarer/portalshell/hooks"
	"github.com/skybarer/portalshell/session"
	"github.com/skybarer/portalshell/shell"
)

// Opener receives the URL of an external route. The default opener does
// nothing; hosts embed their own (a browser window.open equivalent, an OS
// open, a log line).
type Opener func(url string)

// Dispatcher resolves symbolic actions against the route table and drives
// the page shell.
type Dispatcher struct {
	routes map[Action]RouteSpec
	store  session.Store
	shell  *shell.Shell
	opener Opener
	hooks  *hooks.Registry
}

// NewDispatcher creates a Dispatcher over the given route table. A nil
// routes slice selects the embedded default table. opener and reg may be
// nil.
func NewDispatcher(routes []RouteSpec, sh *shell.Shell, store session.Store, opener Opener, reg *hooks.Registry) *Dispatcher {
	if routes == nil {
		routes = DefaultRoutes()
	}
	table := make(map[Action]RouteSpec, len(routes))
	for _, r := range routes {
		table[r.Action] = r
	}
	if opener == nil {
		opener = func(string) {}
	}
	return &Dispatcher{
		routes: table,
		store:  store,
		shell:  sh,
		opener: opener,
		hooks:  reg,
	}
}

// Resolve returns the route for action and whether it exists.
func (d *Dispatcher) Resolve(action Action) (RouteSpec, bool) {
	r, ok := d.routes[action]
	return r, ok
}

// Navigate dispatches action. When a parameter is supplied it is written to
// the state store under the route's parameter key before the fragment
// request is issued; the destination fragment reads that key on arrival, so
// the ordering is load-bearing.
//
// External routes are handed to the opener and touch no region. Fragment
// routes are fetched asynchronously; Navigate returns without waiting.
//
// An unknown action is a programming error and panics.
func (d *Dispatcher) Navigate(action Action, param ...string) {
	route, ok := d.routes[action]
	if !ok {
		panic(fmt.Sprintf("nav: unknown action %q", action))
	}

	if len(param) > 0 {
		d.store.Set(route.paramKey(), param[0])
	}

	d.hooks.TriggerNavigate(string(action), route.Path, route.Region)

	if route.External() {
		d.opener(route.Path)
		return
	}

	d.shell.LoadFragment(route.Region, route.Path)
}
