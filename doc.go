// Package portalshell is the client-side page-composition and navigation
// layer for a multi-tenant administrative portal.
//
// The portal keeps one persistent page shell alive and swaps server-supplied
// markup fragments into its named regions. Small pieces of state travel
// across those swaps through a tab-scoped store, and flat server lists of
// modules and service links are categorized and rendered into differentiated
// menu fragments.
//
// # Components
//
//   - session.Store: the tab-scoped key/value carrier
//   - rpc.Client: blocking JSON-over-POST server calls
//   - shell.Shell: the page shell with named regions and async fragment loads
//   - nav.Dispatcher: symbolic action -> fragment route resolution
//   - menu.Composer: categorized menu composition
//
// Portal ties them together behind one configuration surface.
//
// # Quick Start
//
//	portal, err := portalshell.New(portalshell.Config{
//	    BaseURL: "https://admin.example.edu",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if portal.CheckAuth(ctx, "jsmith") {
//	    portal.Navigate(nav.ActionHome)
//	    portal.ComposeModules(ctx, "jsmith")
//	}
//
// # Concurrency contract
//
// RPC calls block the calling goroutine until the server responds; call
// sites read as straight-line code. Fragment loads are fire-and-forget with
// no cancellation: two navigations racing for one region resolve to
// whichever response arrives last. Neither behavior carries a timeout or
// retry layer.
package portalshell
