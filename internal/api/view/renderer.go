// Package view renders the portal's HTML pages.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloodchain/portal/internal/core/domain"
)

//go:embed templates
var templateFS embed.FS

// Page is the data every template receives. Data holds the page-specific view.
type Page struct {
	Title   string
	Session domain.Session
	Roles   []domain.Role
	Sidebar []domain.RouteEntry
	Base    string
	Path    string
	Flashes []domain.Flash
	CSRF    string
	Error   string
	Data    any
}

// Renderer implements echo.Renderer with one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded layout, partials and pages.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = clone
	}
	return r, nil
}

var ErrUnknownTemplate = errors.New("unknown template")

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render satisfies echo.Renderer. name is the page file name without extension.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"dict":          dict,
	"add":           func(a, b int) int { return a + b },
	"lower":         strings.ToLower,
	"roleOptions":   roleOptions,
	"bloodOptions":  bloodOptions,
	"statusOptions": statusOptions,
	"urgencyOptions": func() []domain.Option {
		return domain.UrgencyLevels
	},
	"actionOptions": func() []domain.Option {
		return domain.InventoryActions
	},
	"unitsOptions": unitsOptions,
}

// dict builds a map from alternating keys and values, for passing several
// arguments to a partial.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

func withPlaceholder(placeholder string, opts []domain.Option) []domain.Option {
	if placeholder == "" {
		return opts
	}
	return append([]domain.Option{{Value: "", Label: placeholder}}, opts...)
}

func roleOptions() []domain.Option {
	out := make([]domain.Option, len(domain.Roles))
	for i, r := range domain.Roles {
		out[i] = domain.Option{Value: string(r), Label: string(r)}
	}
	return out
}

func bloodOptions(placeholder string) []domain.Option {
	out := make([]domain.Option, len(domain.BloodTypes))
	for i, b := range domain.BloodTypes {
		out[i] = domain.Option{Value: b, Label: b}
	}
	return withPlaceholder(placeholder, out)
}

func statusOptions(placeholder string) []domain.Option {
	out := make([]domain.Option, len(domain.UnitStatuses))
	for i, s := range domain.UnitStatuses {
		out[i] = domain.Option{Value: string(s), Label: string(s)}
	}
	return withPlaceholder(placeholder, out)
}

func unitsOptions() []domain.Option {
	out := make([]domain.Option, 10)
	for i := range out {
		v := fmt.Sprint(i + 1)
		out[i] = domain.Option{Value: v, Label: v}
	}
	return out
}
