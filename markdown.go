package threedocs

import (
	"regexp"
	"strings"
)

// Chat platform message ceilings. Rendered payloads must already satisfy
// these; they are never delegated downstream.
const (
	MaxContentLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 2048
	MaxFieldCount        = 25
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
)

// markdownRule is one named text transform. Rules are applied in a fixed
// order because later rules assume earlier ones already collapsed
// certain tags.
type markdownRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

var markdownRules = []markdownRule{
	// Code spans become code blocks.
	{"code", regexp.MustCompile(`(?i)</?code[^>]*>`), "```"},
	// Headings and strong text become bold markers; open and close tags
	// both map to ** and pair up as markdown bold.
	{"bold", regexp.MustCompile(`(?i)</?(?:h[0-9]|strong|b)>`), "**"},
	// Italic markers, including the documentation's own <italic> tag.
	{"italic", regexp.MustCompile(`(?i)</?(?:italic|i|em)>`), "*"},
	// Spans carry no meaning in chat markdown; unwrap them.
	{"span", regexp.MustCompile(`(?is)<span[^>]*>([^<]*)</span>`), "$1"},
	// In-page permalink anchors carry no user-facing text; drop them
	// before the generic anchor rule can see them.
	{"permalink", regexp.MustCompile(`(?i)<a[^>]*class="permalink"[^>]*>[^<]*</a>`), ""},
	// Script-driven anchors keep their text only.
	{"onclick", regexp.MustCompile(`(?i)<a[^>]*onclick=["'][^"']*["'][^>]*>([^<]*)</a>`), "$1"},
	// Plain anchors become markdown links.
	{"anchor", regexp.MustCompile(`(?i)<a[^>]*href=["']([^"']*)["'][^>]*>([^<]*)</a>`), "[$2]($1)"},
	// The documentation's custom link syntax: [link:URL TEXT].
	{"link", regexp.MustCompile(`\[link:([^\s\]]+)\s+([^\]]+)\]`), "[$2]($1)"},
	// Inline references: [kind:Type name] reads as "name: Type".
	{"ref", regexp.MustCompile(`\[[a-zA-Z]+:([^\s\]]+)\s+([^\]]+)\]`), "$2: $1"},
	// Leftover single-token references keep the token.
	{"ref-bare", regexp.MustCompile(`\[[a-zA-Z]+:([^\]\s]+)\]`), "$1"},
	// Line breaks and whitespace collapse to single separators.
	{"break", regexp.MustCompile(`(?i)<br\s*/?>`), "\n"},
	{"strip", regexp.MustCompile(`(?i)</?(?:li|div)>`), ""},
	{"space", regexp.MustCompile(`[^\S\n]+`), " "},
	{"newline", regexp.MustCompile(`\s*\n\s*`), "\n"},
}

// ToMarkdown converts a raw HTML fragment into the restricted markdown
// dialect used for chat rendering. It is a pure transform; per-field
// length ceilings are applied by the renderer, not here.
func ToMarkdown(html string) string {
	s := html
	for _, rule := range markdownRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	return strings.TrimSpace(s)
}

// ToMarkdownMeta applies ToMarkdown to every value of meta,
// field-name-agnostically, returning a new map.
func ToMarkdownMeta(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = ToMarkdown(v)
	}
	return out
}

// Truncate hard-slices s to at most max characters. The slice happens at
// a character boundary; no ellipsis is inserted.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
