package shell

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/skybarer/portalshell/hooks"
)

func TestApplyAndRegion(t *testing.T) {
	s := New("http://unused", nil)

	s.Apply(RegionMain, "<p>hello</p>")
	if got := s.Region(RegionMain); got != "<p>hello</p>" {
		t.Errorf("Region = %q, want %q", got, "<p>hello</p>")
	}

	s.Apply(RegionMain, "<p>replaced</p>")
	if got := s.Region(RegionMain); got != "<p>replaced</p>" {
		t.Errorf("Region after second Apply = %q, want replaced content", got)
	}
}

func TestRegionEmptyByDefault(t *testing.T) {
	s := New("http://unused", nil)
	if got := s.Region(RegionReportMenu); got != "" {
		t.Errorf("untouched region = %q, want empty", got)
	}
}

func TestLoadFragmentInjectsOnArrival(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fragments/home" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte("<section>home</section>"))
	}))
	defer srv.Close()

	s := New(srv.URL, &Options{HTTPClient: srv.Client()})
	s.LoadFragment(RegionMain, "/fragments/home")
	s.Wait()

	if got := s.Region(RegionMain); got != "<section>home</section>" {
		t.Errorf("Region after load = %q", got)
	}
}

func TestLoadFragmentFailureLeavesRegionUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	s := New(srv.URL, &Options{HTTPClient: srv.Client()})
	s.Apply(RegionMain, "<p>previous</p>")
	s.LoadFragment(RegionMain, "/fragments/missing")
	s.Wait()

	if got := s.Region(RegionMain); got != "<p>previous</p>" {
		t.Errorf("Region after failed load = %q, want previous content", got)
	}
}

func TestLoadFragmentTriggersHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	var mu sync.Mutex
	var gotRegion string
	var gotOK bool

	reg := hooks.NewRegistry()
	reg.OnFragment(func(region, url string, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		gotRegion, gotOK = region, ok
	})

	s := New(srv.URL, &Options{HTTPClient: srv.Client(), Hooks: reg})
	s.LoadFragment(RegionMain, "/f")
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	if gotRegion != RegionMain || !gotOK {
		t.Errorf("fragment hook got (%q, %v), want (%q, true)", gotRegion, gotOK, RegionMain)
	}
}

func TestSanitizationPolicyApplies(t *testing.T) {
	// The injection boundary trusts server fragments by default, but a
	// policy can be installed where that trust does not hold.
	s := New("http://unused", &Options{Policy: bluemonday.UGCPolicy()})

	s.Apply(RegionMain, `<p>safe</p><script>alert(1)</script>`)
	got := s.Region(RegionMain)
	if strings.Contains(got, "<script>") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>safe</p>") {
		t.Errorf("benign markup did not survive sanitization: %q", got)
	}
}

func TestVerbatimInjectionWithoutPolicy(t *testing.T) {
	s := New("http://unused", nil)
	raw := `<div onclick="x()">raw</div>`
	s.Apply(RegionMain, raw)
	if got := s.Region(RegionMain); got != raw {
		t.Errorf("verbatim injection altered markup: %q", got)
	}
}

func TestReportError(t *testing.T) {
	s := New("http://unused", nil)
	s.ReportError("session expired")
	if got := s.Region(RegionError); !strings.Contains(got, "session expired") {
		t.Errorf("error region = %q, want message present", got)
	}
}

func TestRegionsSnapshot(t *testing.T) {
	s := New("http://unused", nil)
	s.Apply(RegionMain, "a")
	s.Apply(RegionServiceMenu, "b")

	snap := s.Regions()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d regions, want 2", len(snap))
	}

	// Mutating the snapshot must not affect the shell.
	snap[RegionMain] = "mutated"
	if got := s.Region(RegionMain); got != "a" {
		t.Errorf("shell region changed through snapshot: %q", got)
	}
}

func TestConcurrentLoadsLastArrivalWins(t *testing.T) {
	// Two loads racing for one region: whichever response lands last owns
	// the region. Both must complete without losing the region entirely.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	s := New(srv.URL, &Options{HTTPClient: srv.Client()})
	s.LoadFragment(RegionMain, "/first")
	s.LoadFragment(RegionMain, "/second")
	s.Wait()

	got := s.Region(RegionMain)
	if got != "/first" && got != "/second" {
		t.Errorf("Region after racing loads = %q, want one of the responses", got)
	}
}
