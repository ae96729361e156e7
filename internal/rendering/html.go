package rendering

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/jonathan/harvard-cv/internal/cv"
)

// DefaultTemplateName is the Harvard resume template shipped with the binary.
const DefaultTemplateName = "harvard_cv.html"

//go:embed templates/*.html
var embeddedTemplates embed.FS

// HTMLRenderer fills an HTML template with a normalized record.
// It holds no state between calls.
type HTMLRenderer struct {
	templates fs.FS
	name      string
}

// HTMLOption configures an HTMLRenderer
type HTMLOption func(*HTMLRenderer)

// WithTemplateDir loads templates from dir instead of the embedded set.
func WithTemplateDir(dir string) HTMLOption {
	return func(r *HTMLRenderer) {
		if dir != "" {
			r.templates = os.DirFS(dir)
		}
	}
}

// WithTemplateFS loads templates from fsys.
func WithTemplateFS(fsys fs.FS) HTMLOption {
	return func(r *HTMLRenderer) {
		r.templates = fsys
	}
}

// WithTemplateName selects the template file to execute.
func WithTemplateName(name string) HTMLOption {
	return func(r *HTMLRenderer) {
		if name != "" {
			r.name = name
		}
	}
}

// NewHTMLRenderer creates an HTMLRenderer using the embedded Harvard template by default.
func NewHTMLRenderer(opts ...HTMLOption) *HTMLRenderer {
	sub, _ := fs.Sub(embeddedTemplates, "templates")
	r := &HTMLRenderer{templates: sub, name: DefaultTemplateName}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// htmlView is the data handed to the template
type htmlView struct {
	*cv.Record
	FullName   string
	Contact    []string
	SkillLines []cv.SkillLine
}

// RenderHTML executes the configured template against rec.
func (r *HTMLRenderer) RenderHTML(rec *cv.Record) (string, error) {
	tmpl, err := r.parse()
	if err != nil {
		return "", err
	}

	view := htmlView{
		Record:     rec,
		FullName:   rec.Profile.FullName(),
		Contact:    rec.ContactParts(),
		SkillLines: rec.SkillLines(),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, view); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

func (r *HTMLRenderer) parse() (*template.Template, error) {
	content, err := fs.ReadFile(r.templates, r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TemplateNotFoundError{Name: r.name, Cause: err}
		}
		return nil, &TemplateError{
			Message: "failed to read template " + r.name,
			Cause:   err,
		}
	}

	tmpl, err := template.New(r.name).Funcs(template.FuncMap{
		"dateRange": cv.FormatRange,
		"join":      strings.Join,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
