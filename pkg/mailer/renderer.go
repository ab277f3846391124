package mailer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/dispatch/pkg/sanitizer"
)

// layout is the outer document. text/template is used on purpose: names and
// the fragment are inserted without escaping.
const layout = `<html>
  <body style="font-family: sans-serif; line-height: 1.5; color: #333; max-width: 600px;">
{{- if .Preheader}}
    <div style="display: none; max-height: 0; overflow: hidden;">{{.Preheader}}</div>
{{- end}}
    <p>Hi {{.FirstName}},</p>
    <div style="text-align: center; margin-bottom: 20px;">
      <img src="{{.ImageRef}}" style="max-width: 100%; border-radius: 8px;">
    </div>
    {{.Content}}
    <div style="margin-top: 30px; padding: 15px; background-color: #f9f9f9; border-left: 4px solid #6d4aff;">
      <strong>Read the full story here:</strong><br>
      <a href="{{.DocLink}}">Open the full letter</a>
    </div>
  </body>
</html>
`

// Renderer turns a message fragment into a complete HTML document.
type Renderer struct {
	md          goldmark.Markdown
	layout      *texttemplate.Template
	readFile    func(string) ([]byte, error)
	escapeNames bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithNameEscaping strips markup from first names and escapes HTML special
// characters before interpolation. Off by default: names are inserted as-is.
func WithNameEscaping(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.escapeNames = enabled
	}
}

// NewRenderer creates a renderer with the built-in newsletter layout.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		layout:   texttemplate.Must(texttemplate.New("newsletter").Parse(layout)),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Page is a rendered document plus the front matter that came with its fragment.
type Page struct {
	HTML      string
	Subject   string
	Preheader string
}

// Render produces the HTML document for one recipient. imageRef becomes the
// src of the header image: a file path for local previews, "cid:<id>" inside
// a message. The fragment is read from disk on every call.
func (r *Renderer) Render(firstName, fragmentPath, imageRef, docLink string) (string, error) {
	page, err := r.RenderPage(firstName, fragmentPath, imageRef, docLink)
	if err != nil {
		return "", err
	}
	return page.HTML, nil
}

// RenderPage is Render that also returns the fragment's front matter.
func (r *Renderer) RenderPage(firstName, fragmentPath, imageRef, docLink string) (*Page, error) {
	raw, err := r.readFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFragmentRead, fragmentPath, err)
	}

	fragment, err := ParseFragment(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, fragmentPath, err)
	}

	content := fragment.Body
	if isMarkdown(fragmentPath) {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
		}
		content = buf.String()
	}

	if r.escapeNames {
		firstName = sanitizer.Name(firstName)
	}

	var out bytes.Buffer
	if err := r.layout.Execute(&out, map[string]string{
		"FirstName": firstName,
		"ImageRef":  imageRef,
		"Content":   content,
		"DocLink":   docLink,
		"Preheader": fragment.Preheader(),
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	return &Page{
		HTML:      out.String(),
		Subject:   fragment.Subject(),
		Preheader: fragment.Preheader(),
	}, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
