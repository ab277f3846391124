package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Front matter keys understood by the renderer.
const (
	MetaSubject   = "Subject"
	MetaPreheader = "Preheader"
)

var frontmatterDelimiter = []byte("---")

// Fragment is a message fragment split into its front matter and body.
type Fragment struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the Subject front matter value, or "".
func (f *Fragment) Subject() string {
	return f.meta(MetaSubject)
}

// Preheader returns the Preheader front matter value, or "".
func (f *Fragment) Preheader() string {
	return f.meta(MetaPreheader)
}

func (f *Fragment) meta(key string) string {
	if v, ok := f.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// ParseFragment extracts optional YAML front matter from fragment content.
// Content that does not open with a "---" line is returned verbatim as the body.
func ParseFragment(content []byte) (*Fragment, error) {
	first, rest, found := cutLine(content)
	if !found || !bytes.Equal(bytes.TrimSpace(first), frontmatterDelimiter) {
		return &Fragment{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	var head []byte
	for {
		line, remaining, ok := cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), frontmatterDelimiter) {
			rest = remaining
			break
		}
		if !ok {
			return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
		head = append(head, line...)
		head = append(head, '\n')
		rest = remaining
	}

	metadata := map[string]any{}
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Fragment{Metadata: metadata, Body: string(rest)}, nil
}

// cutLine splits b after the first newline, dropping a trailing \r from the line.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
