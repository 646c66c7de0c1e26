package menu

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

//go:embed templates/*
var templatesFS embed.FS

// renderer turns descriptors into list-entry snippets and buckets into
// grouped menu fragments.
type renderer struct {
	tmpl     *template.Template
	markdown bool
	md       goldmark.Markdown
}

func newRenderer(markdown bool) *renderer {
	tmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/*.html"))
	return &renderer{
		tmpl:     tmpl,
		markdown: markdown,
		md:       goldmark.New(),
	}
}

type linkItemData struct {
	ID           string
	FunctionName string
	URL          string
	Name         string
	Desc         template.HTML
}

type moduleItemData struct {
	ID       string
	UserName string
	URL      string
	Name     string
	Desc     template.HTML
}

func (r *renderer) linkItem(l Link) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "link-item.html", linkItemData{
		ID:           l.ID,
		FunctionName: l.FunctionName,
		URL:          l.URL,
		Name:         l.Name,
		Desc:         r.desc(l.Description),
	})
	if err != nil {
		return "", fmt.Errorf("render link item: %w", err)
	}
	return buf.String(), nil
}

func (r *renderer) moduleItem(userName string, m Module) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "module-item.html", moduleItemData{
		ID:       m.ID,
		UserName: userName,
		URL:      m.URL,
		Name:     m.Name,
		Desc:     r.desc(m.Description),
	})
	if err != nil {
		return "", fmt.Errorf("render module item: %w", err)
	}
	return buf.String(), nil
}

// group wraps the concatenated item snippets of one bucket.
func (r *renderer) group(kind string, items []string) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "menu-group.html", map[string]any{
		"Kind":  kind,
		"Items": template.HTML(strings.Join(items, "")),
	})
	if err != nil {
		return "", fmt.Errorf("render menu group: %w", err)
	}
	return buf.String(), nil
}

// desc prepares a description for embedding in a snippet. Plain text is
// HTML-escaped; with markdown labels enabled it is converted first.
func (r *renderer) desc(s string) template.HTML {
	if !r.markdown {
		return template.HTML(template.HTMLEscapeString(s))
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"safeHTML": safeHTML,
	}
}

func truncate(n int, v any) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func safeHTML(s string) template.HTML {
	return template.HTML(s)
}
