// Package templates parses the embedded html/template files and exposes
// them as templ components. Each page is parsed on a clone of the base
// layout and partials so pages can define their own blocks.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"groeipaden_app/web/templates/shared"
)

//go:embed html
var files embed.FS

// mdRenderer escapes raw HTML in its input (WithUnsafe is not set)
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var funcs = template.FuncMap{
	"icon":     shared.IconSVG,
	"color":    shared.Color,
	"tint":     shared.Tint,
	"markdown": Markdown,
}

// Markdown renders s as HTML. Rendering errors fall back to escaped text.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

// Renderer holds one template set per page
type Renderer struct {
	pages map[string]*template.Template
	base  *template.Template
}

// NewRenderer parses layouts and partials from fsys as the foundation and
// clones it for every page under html/pages.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(fsys, "html/layouts/*.html", "html/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pages, err := fs.Glob(fsys, "html/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), base: base}
	for _, page := range pages {
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := pageTemplate.ParseFS(fsys, page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[path.Base(page)] = pageTemplate
	}
	return r, nil
}

// Page renders the named page inside the base layout
func (r *Renderer) Page(name string, data any) templ.Component {
	tmpl, ok := r.pages[name]
	if !ok {
		return missing(name)
	}
	base := tmpl.Lookup("base")
	if base == nil {
		return missing(name + ": base")
	}
	return templ.FromGoHTML(base, data)
}

// Partial renders a template defined in html/partials on its own
func (r *Renderer) Partial(name string, data any) templ.Component {
	tmpl := r.base.Lookup(name)
	if tmpl == nil {
		return missing(name)
	}
	return templ.FromGoHTML(tmpl, data)
}

func missing(name string) templ.Component {
	return templ.Raw("", fmt.Errorf("template not found: %s", name))
}

var defaultRenderer = mustNewRenderer()

func mustNewRenderer() *Renderer {
	r, err := NewRenderer(files)
	if err != nil {
		panic(err)
	}
	return r
}

// Page renders a page with the embedded templates
func Page(name string, data any) templ.Component {
	return defaultRenderer.Page(name, data)
}

// Partial renders a partial with the embedded templates
func Partial(name string, data any) templ.Component {
	return defaultRenderer.Partial(name, data)
}
