package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	texttemplate "text/template"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"
)

//go:embed templates/*.txt templates/*.html
var embeddedTemplates embed.FS

// DefaultTemplates returns the mail templates shipped with the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// templateRenderer renders <name>.txt with text/template and <name>.html with
// html/template. Both are parsed once on construction.
type templateRenderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses every .txt and .html template found at the root of fsys
func NewTemplateRenderer(fsys fs.FS) (mail.Renderer, error) {
	text, err := texttemplate.New("mail").Option("missingkey=error").ParseFS(fsys, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text mail templates: %w", err)
	}

	html, err := htmltemplate.New("mail").Option("missingkey=error").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html mail templates: %w", err)
	}

	return &templateRenderer{text: text, html: html}, nil
}

// Render returns the plaintext and HTML bodies of templateName.
func (r *templateRenderer) Render(templateName string, data map[string]any) (string, string, error) {
	textTmpl := r.text.Lookup(templateName + ".txt")
	htmlTmpl := r.html.Lookup(templateName + ".html")
	if textTmpl == nil || htmlTmpl == nil {
		return "", "", fmt.Errorf("mail template %q not found", templateName)
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.txt: %w", templateName, err)
	}

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.html: %w", templateName, err)
	}

	return text.String(), html.String(), nil
}
