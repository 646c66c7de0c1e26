// Package shell models the persistent page shell: a fixed set of named
// regions that fragment markup is injected into.
//
// Region writes are synchronous and replace the region's previous content.
// Fragment loads are asynchronous and fire-and-forget: the fetch runs on its
// own goroutine, there is no cancellation, and two loads racing for the same
// region resolve to whichever response arrives last. A failed fetch leaves
// the region unchanged. Both behaviors are contract, not accident.
package shell

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/skybarer/portalshell/hooks"
)

// Region identifiers of the page shell. External fragments and the menu
// composer address regions by these names.
const (
	RegionMain             = "main"
	RegionError            = "errors"
	RegionModuleMenu       = "menu-modules"
	RegionPrimaryMenu      = "menu-primary"
	RegionReportMenu       = "menu-report"
	RegionOverviewMenu     = "menu-overview"
	RegionConsolidatedMenu = "menu-consolidated"
	RegionServiceMenu      = "menu-services"
)

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Shell holds the current markup of every region.
type Shell struct {
	mu      sync.RWMutex
	regions map[string]string

	baseURL string
	httpc   *http.Client
	policy  *bluemonday.Policy
	hooks   *hooks.Registry
	logger  Logger

	inflight sync.WaitGroup
}

// Options configures a Shell. All fields are optional.
type Options struct {
	// HTTPClient used for fragment fetches. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Policy, when set, sanitizes all injected markup. The default is nil:
	// fragments come from trusted server resources and are injected
	// verbatim.
	Policy *bluemonday.Policy

	// Hooks receives fragment-load notifications. May be nil.
	Hooks *hooks.Registry

	// Logger for structured logging. May be nil.
	Logger Logger
}

// New creates a Shell that resolves relative fragment paths against baseURL.
func New(baseURL string, opts *Options) *Shell {
	if opts == nil {
		opts = &Options{}
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Shell{
		regions: make(map[string]string),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		policy:  opts.Policy,
		hooks:   opts.Hooks,
		logger:  opts.Logger,
	}
}

// Apply replaces the content of region with markup, passing it through the
// sanitization policy when one is installed.
func (s *Shell) Apply(region, markup string) {
	if s.policy != nil {
		markup = s.policy.Sanitize(markup)
	}
	s.mu.Lock()
	s.regions[region] = markup
	s.mu.Unlock()
}

// Region returns the current content of region, or "" if nothing has been
// injected yet.
func (s *Shell) Region(region string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regions[region]
}

// Regions returns a snapshot of all populated regions.
func (s *Shell) Regions() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]string, len(s.regions))
	for k, v := range s.regions {
		snapshot[k] = v
	}
	return snapshot
}

// LoadFragment fetches the markup at path and injects it into region when it
// arrives. It returns immediately; the fetch runs on its own goroutine with
// no cancellation. On fetch failure the region is left unchanged.
func (s *Shell) LoadFragment(region, path string) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = s.baseURL + path
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		markup, ok := s.fetch(url)
		if ok {
			s.Apply(region, markup)
		}
		s.hooks.TriggerFragment(region, url, ok)
	}()
}

// Wait blocks until all fragment loads started so far have completed. It
// exists for tests and orderly shutdown; the composition layer itself never
// waits.
func (s *Shell) Wait() {
	s.inflight.Wait()
}

// ReportError writes msg into the designated error region. This is the only
// user-visible error path; nothing in the composition layer calls it
// automatically.
func (s *Shell) ReportError(msg string) {
	s.Apply(RegionError, `<div class="portal-error">`+msg+`</div>`)
}

func (s *Shell) fetch(url string) (string, bool) {
	resp, err := s.httpc.Get(url)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("fragment fetch failed", "url", url, "error", err.Error())
		}
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if s.logger != nil {
			s.logger.Warn("fragment non-2xx status", "url", url, "status", resp.StatusCode)
		}
		return "", false
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("fragment read failed", "url", url, "error", err.Error())
		}
		return "", false
	}
	return string(raw), true
}
