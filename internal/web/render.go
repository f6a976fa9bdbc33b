// Package web serves the storefront and admin console as server-rendered
// HTML. Every button is a small form posting to a handler that changes the
// session's view state and redirects back to the page.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// The goldmark parser is configured once and shared; it escapes raw HTML
// in its input.
var (
	markdownOnce     sync.Once
	markdownInstance goldmark.Markdown
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// renderMarkdown converts a short markdown blurb to HTML
func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// formatWon renders an amount the way the storefront shows prices: ₩13,000
func formatWon(amount int64) string {
	return "₩" + humanize.Comma(amount)
}

// stars returns five flags, true for each filled star of rating
func stars(rating int) []bool {
	filled := make([]bool, 5)
	for i := range filled {
		filled[i] = i < rating
	}
	return filled
}

var templateFuncs = template.FuncMap{
	"won":      formatWon,
	"markdown": renderMarkdown,
	"stars":    stars,
	"tabLabel": func(tab session.AdminTab) string { return tab.Label() },
}

// Renderer executes the page templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes the named page with data. The page is rendered into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
