package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFragment(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Hi!</p>")

	out, err := NewRenderer().Render("Amy", path, "cid:123", "https://doc")
	require.NoError(t, err)

	assert.Contains(t, out, "Hi Amy,")
	assert.Contains(t, out, `src="cid:123"`)
	assert.Contains(t, out, `href="https://doc"`)
	assert.Contains(t, out, "<p>Hi!</p>")
	assert.Contains(t, out, "Read the full story here:")
	assert.NotContains(t, out, "display: none")
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Same every time</p>")
	r := NewRenderer()

	first, err := r.Render("Amy", path, "cid:123", "https://doc")
	require.NoError(t, err)
	second, err := r.Render("Amy", path, "cid:123", "https://doc")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRenderer_Render_ReadsFragmentEveryCall(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>first draft</p>")
	r := NewRenderer()

	out, err := r.Render("Amy", path, "img.jpg", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "first draft")

	require.NoError(t, os.WriteFile(path, []byte("<p>second draft</p>"), 0o600))

	out, err = r.Render("Amy", path, "img.jpg", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "second draft")
	require.NotContains(t, out, "first draft")
}

func TestRenderer_Render_LocalImagePath(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Hi!</p>")

	out, err := NewRenderer().Render("TestName", path, "header_photo.jpg", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, `src="header_photo.jpg"`)
	require.Contains(t, out, "Hi TestName,")
}

func TestRenderer_Render_NamesNotEscapedByDefault(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Hi!</p>")

	out, err := NewRenderer().Render("<b>Amy</b> & Co", path, "cid:1", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "Hi <b>Amy</b> & Co,")
}

func TestRenderer_Render_WithNameEscaping(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Hi!</p>")

	out, err := NewRenderer(WithNameEscaping(true)).Render("<script>x</script>Amy", path, "cid:1", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "Hi Amy,")
	require.NotContains(t, out, "<script>")
}

func TestRenderer_Render_EmptyFirstName(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "<p>Hi!</p>")

	out, err := NewRenderer().Render("", path, "cid:1", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "Hi ,")
}

func TestRenderer_Render_MissingFragment(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer().Render("Amy", filepath.Join(t.TempDir(), "missing.html"), "cid:1", "https://doc")
	require.ErrorIs(t, err, ErrFragmentRead)
}

func TestRenderer_Render_HTMLFragmentNotTransformed(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "# not a heading\n<p>**raw**</p>")

	out, err := NewRenderer().Render("Amy", path, "cid:1", "https://doc")
	require.NoError(t, err)
	require.Contains(t, out, "# not a heading\n<p>**raw**</p>")
}

func TestRenderer_RenderPage_Markdown(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.md", `---
Subject: Winter update
Preheader: Photos from the trip
---
# Big news

We **moved**.

[!button|See photos](https://example.com/photos)
`)

	page, err := NewRenderer().RenderPage("Amy", path, "cid:1", "https://doc")
	require.NoError(t, err)

	require.Equal(t, "Winter update", page.Subject)
	require.Equal(t, "Photos from the trip", page.Preheader)
	require.Contains(t, page.HTML, "<h1>Big news</h1>")
	require.Contains(t, page.HTML, "<strong>moved</strong>")
	require.Contains(t, page.HTML, `<a href="https://example.com/photos"`)
	require.Contains(t, page.HTML, "Photos from the trip</div>")
	require.NotContains(t, page.HTML, "Subject: Winter update")
}

func TestRenderer_RenderPage_InvalidFrontmatter(t *testing.T) {
	t.Parallel()

	path := writeFragment(t, "frag.html", "---\nSubject: x\n<p>never closed</p>")

	_, err := NewRenderer().RenderPage("Amy", path, "cid:1", "https://doc")
	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}
