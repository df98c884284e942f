package threedocs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threedocs/threedocs"
)

func TestToMarkdown_Tags(t *testing.T) {
	t.Parallel()

	input := `<a href="#">Link</a><h1>Header</h1><strong>Bold</strong><b>Bold</b><italic>Italic</italic><i>Italic</i>`
	output := threedocs.ToMarkdown(input)

	assert.Equal(t, "[Link](#)**Header****Bold****Bold***Italic**Italic*", output)
}

func TestToMarkdown_CodeSpans(t *testing.T) {
	t.Parallel()

	output := threedocs.ToMarkdown(`<code class="language-js">const v = new Vector3();</code>`)

	assert.Equal(t, "```const v = new Vector3();```", output)
}

func TestToMarkdown_PermalinkAnchorsDropped(t *testing.T) {
	t.Parallel()

	input := `<h3>x<a class="permalink" href="#x">#</a></h3>`
	output := threedocs.ToMarkdown(input)

	assert.Equal(t, "**x**", output)
}

func TestToMarkdown_CustomLinkSyntax(t *testing.T) {
	t.Parallel()

	output := threedocs.ToMarkdown(`See [link:https://threejs.org/examples/#webgl_shadowmap the shadowmap example].`)

	assert.Equal(t, "See [the shadowmap example](https://threejs.org/examples/#webgl_shadowmap).", output)
}

func TestToMarkdown_InlineReferences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x: Float", threedocs.ToMarkdown(`[property:Float x]`))
	assert.Equal(t, "Vector3", threedocs.ToMarkdown(`[page:Vector3]`))
}

func TestToMarkdown_WhitespaceCollapse(t *testing.T) {
	t.Parallel()

	output := threedocs.ToMarkdown("a   b<br>c \n\n  d")

	assert.Equal(t, "a b\nc\nd", output)
}

func TestToMarkdownMeta(t *testing.T) {
	t.Parallel()

	html := `<a href="#">Link</a><h1>Header</h1>`
	meta := map[string]string{"title": html, "description": html}
	output := threedocs.ToMarkdownMeta(meta)

	assert.Equal(t, output["title"], output["description"])
	assert.Equal(t, "[Link](#)**Header**", output["title"])
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", threedocs.MaxTitleLength+100)
	assert.Len(t, threedocs.Truncate(long, threedocs.MaxTitleLength), threedocs.MaxTitleLength)

	assert.Equal(t, "short", threedocs.Truncate("short", threedocs.MaxTitleLength))
	assert.Empty(t, threedocs.Truncate("anything", 0))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	t.Parallel()

	// Multi-byte characters are never split mid-rune.
	out := threedocs.Truncate("héllo", 2)
	assert.Equal(t, "hé", out)
}
