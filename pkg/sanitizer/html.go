package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once

	lineBreakRe  = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|h[1-6]|li|tr|table|blockquote)>`)
	anchorRe     = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML and escapes what remains
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// Name strips markup from a name before it is interpolated into HTML and
// escapes HTML special characters. Plain names pass through unchanged.
func Name(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// PlainText derives a readable plain-text rendition of an HTML document for
// the text/plain alternative of a message. Links keep their target in
// parentheses, block elements end lines, and entities are decoded.
func PlainText(doc string) string {
	initPolicies()

	doc = anchorRe.ReplaceAllStringFunc(doc, func(m string) string {
		parts := anchorRe.FindStringSubmatch(m)
		label := strings.TrimSpace(parts[2])
		if label == "" || label == parts[1] {
			return parts[1]
		}
		return label + " (" + parts[1] + ")"
	})
	doc = lineBreakRe.ReplaceAllString(doc, "$0\n")

	text := html.UnescapeString(strictPolicy.Sanitize(doc))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
