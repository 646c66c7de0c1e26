package portalshell

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/skybarer/portalshell/hooks"
	"github.com/skybarer/portalshell/menu"
	"github.com/skybarer/portalshell/nav"
	"github.com/skybarer/portalshell/rpc"
	"github.com/skybarer/portalshell/session"
	"github.com/skybarer/portalshell/shell"
)

// Portal composes the state store, the RPC client, the page shell, the
// navigation dispatcher, and the menu composer behind one configuration
// surface.
type Portal struct {
	cfg        Config
	store      session.Store
	client     *rpc.Client
	shell      *shell.Shell
	dispatcher *nav.Dispatcher
	composer   *menu.Composer
	hooks      *hooks.Registry
}

// New creates a Portal from cfg and options.
func New(cfg Config, opts ...Option) (*Portal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewPortalError("New", err)
	}
	cfg.applyDefaults()

	ic := &internalConfig{}
	for _, opt := range opts {
		if err := opt(ic); err != nil {
			return nil, NewPortalError("New", err)
		}
	}

	client := rpc.New(cfg.BaseURL, cfg.HTTPClient, cfg.Logger)
	sh := shell.New(cfg.BaseURL, &shell.Options{
		HTTPClient: cfg.HTTPClient,
		Policy:     ic.policy,
		Hooks:      ic.hooks,
		Logger:     cfg.Logger,
	})
	dispatcher := nav.NewDispatcher(ic.routes, sh, cfg.Store, ic.opener, ic.hooks)
	composer := menu.NewComposer(client, sh, &menu.Config{
		ModulesPath:    cfg.Endpoints.Modules,
		LinksPath:      cfg.Endpoints.Links,
		MarkdownLabels: ic.markdownLabels,
		Hooks:          ic.hooks,
		Logger:         cfg.Logger,
	})

	return &Portal{
		cfg:        cfg,
		store:      cfg.Store,
		client:     client,
		shell:      sh,
		dispatcher: dispatcher,
		composer:   composer,
		hooks:      ic.hooks,
	}, nil
}

// Store returns the tab-scoped state carrier.
func (p *Portal) Store() session.Store {
	return p.store
}

// Shell returns the page shell.
func (p *Portal) Shell() *shell.Shell {
	return p.shell
}

// Client returns the RPC client.
func (p *Portal) Client() *rpc.Client {
	return p.client
}

// Navigate dispatches a symbolic action. See nav.Dispatcher.Navigate.
func (p *Portal) Navigate(action nav.Action, param ...string) {
	p.dispatcher.Navigate(action, param...)
}

// ComposeModules renders the module menu for userName.
func (p *Portal) ComposeModules(ctx context.Context, userName string) {
	p.composer.ComposeModules(ctx, userName)
}

// ComposeLinks renders the categorized service menus for userName and
// moduleID.
func (p *Portal) ComposeLinks(ctx context.Context, userName, moduleID string) {
	p.composer.ComposeLinks(ctx, userName, moduleID)
}

// CheckAuth asks the server whether userName's session is valid. The call
// blocks; any RPC failure reads as not authenticated.
func (p *Portal) CheckAuth(ctx context.Context, userName string) bool {
	res := p.client.Call(ctx, p.cfg.Endpoints.AuthCheck, map[string]string{"userName": userName})
	if !res.Exists() {
		return false
	}
	if res.Type == gjson.True || res.Type == gjson.False {
		return res.Bool()
	}
	return res.Get("authenticated").Bool()
}

// Logout notifies the server, clears the context and collegeid keys, and
// then navigates to the landing fragment. The key clears happen before the
// navigation fires so the landing fragment never sees stale identity; the
// post-logout navigation always targets the main region regardless of prior
// history.
func (p *Portal) Logout(ctx context.Context) {
	p.client.Call(ctx, p.cfg.Endpoints.Logout, map[string]string{
		"userName": p.store.Get(session.KeyUsername),
	})

	p.store.Remove(session.KeyContext)
	p.store.Remove(session.KeyCollegeID)

	p.dispatcher.Navigate(nav.ActionHome)
}

// ReportError pushes msg into the designated error region. This is the only
// user-visible error path; the portal never calls it on its own.
func (p *Portal) ReportError(msg string) {
	p.shell.ReportError(msg)
}
