package menu

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/skybarer/portalshell/hooks"
	"github.com/skybarer/portalshell/rpc"
	"github.com/skybarer/portalshell/shell"
)

// Default endpoint paths for the structured list fetches.
const (
	DefaultModulesPath = "/rpc/modules"
	DefaultLinksPath   = "/rpc/services"
)

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds composer configuration. All fields are optional.
type Config struct {
	// ModulesPath and LinksPath are the RPC endpoints for the two list
	// fetches. Defaults: DefaultModulesPath, DefaultLinksPath.
	ModulesPath string
	LinksPath   string

	// MarkdownLabels converts descriptor descriptions from markdown when
	// rendering. Off by default; plain descriptions are HTML-escaped.
	MarkdownLabels bool

	// Hooks receives composition notifications. May be nil.
	Hooks *hooks.Registry

	// Logger for structured logging. May be nil.
	Logger Logger
}

// Composer requests module and service-link lists, categorizes the entries,
// and renders each category into its designated shell region.
//
// Composition is a pure function of the server response and the identifying
// parameters: it never writes to the state store.
type Composer struct {
	client *rpc.Client
	shell  *shell.Shell
	cfg    Config
	render *renderer
}

// NewComposer creates a Composer. cfg may be nil for defaults.
func NewComposer(client *rpc.Client, sh *shell.Shell, cfg *Config) *Composer {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.ModulesPath == "" {
		c.ModulesPath = DefaultModulesPath
	}
	if c.LinksPath == "" {
		c.LinksPath = DefaultLinksPath
	}
	return &Composer{
		client: client,
		shell:  sh,
		cfg:    c,
		render: newRenderer(c.MarkdownLabels),
	}
}

// linkRegions maps each category bucket to its render target. All five are
// rendered on every pass; a bucket with no entries writes the EmptyMenu
// placeholder so repeated composition never accumulates stale content.
var linkRegions = []struct {
	cat    Category
	region string
}{
	{CategoryPrimary, shell.RegionPrimaryMenu},
	{CategoryReport, shell.RegionReportMenu},
	{CategoryOverview, shell.RegionOverviewMenu},
	{CategoryConsolidated, shell.RegionConsolidatedMenu},
	{CategorySingle, shell.RegionServiceMenu},
}

// ComposeModules fetches the module list for userName and renders it into
// the module menu region. The RPC call blocks; rendering is synchronous.
// A null or empty server result renders the "no entries" placeholder.
func (c *Composer) ComposeModules(ctx context.Context, userName string) {
	res := c.client.Call(ctx, c.cfg.ModulesPath, map[string]string{"userName": userName})
	items := entries(res, "moduleList")

	if len(items) == 0 {
		c.shell.Apply(shell.RegionModuleMenu, EmptyMenu)
		c.cfg.Hooks.TriggerCompose("modules", 0)
		return
	}

	snippets := make([]string, 0, len(items))
	for _, v := range items {
		snippet, err := c.render.moduleItem(userName, ModuleFromJSON(v))
		if err != nil {
			c.warn("module snippet", err)
			continue
		}
		snippets = append(snippets, snippet)
	}

	c.applyGroup(shell.RegionModuleMenu, "modules", snippets)
	c.cfg.Hooks.TriggerCompose("modules", len(snippets))
}

// ComposeLinks fetches the service-link list for userName and moduleID,
// partitions the entries into category buckets, and renders every bucket
// into its region. The RPC call blocks; rendering is synchronous.
func (c *Composer) ComposeLinks(ctx context.Context, userName, moduleID string) {
	res := c.client.Call(ctx, c.cfg.LinksPath, map[string]string{
		"userName": userName,
		"moduleId": moduleID,
	})
	items := entries(res, "serviceList")

	links := make([]Link, 0, len(items))
	for _, v := range items {
		links = append(links, LinkFromJSON(v))
	}
	buckets := Categorize(links)

	rendered := 0
	for _, target := range linkRegions {
		bucket := buckets.ByCategory(target.cat)
		if len(bucket) == 0 {
			c.shell.Apply(target.region, EmptyMenu)
			continue
		}
		snippets := make([]string, 0, len(bucket))
		for _, l := range bucket {
			snippet, err := c.render.linkItem(l)
			if err != nil {
				c.warn("link snippet", err)
				continue
			}
			snippets = append(snippets, snippet)
		}
		c.applyGroup(target.region, target.cat.String(), snippets)
		rendered += len(snippets)
	}

	c.cfg.Hooks.TriggerCompose("links", rendered)
}

func (c *Composer) applyGroup(region, kind string, snippets []string) {
	markup, err := c.render.group(kind, snippets)
	if err != nil {
		c.warn("menu group", err)
		markup = EmptyMenu
	}
	c.shell.Apply(region, markup)
}

func (c *Composer) warn(what string, err error) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Warn("compose "+what+" failed", "error", err.Error())
	}
}

// entries extracts the descriptor list from a server response: either a
// bare JSON array or an object carrying the list under key.
func entries(res gjson.Result, key string) []gjson.Result {
	if !res.Exists() {
		return nil
	}
	if res.IsArray() {
		return res.Array()
	}
	if list := res.Get(key); list.IsArray() {
		return list.Array()
	}
	return nil
}
