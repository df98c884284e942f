// Package goquery provides a goquery-based implementation of
// threedocs.Extractor for the three.js documentation page template.
//
// Extraction is a DOM walk with named rules (constructor lookup,
// description lookup, property heading scan) rather than string
// rewriting, so each rule can fail, and be tested, in isolation.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/threedocs/threedocs"
)

// Ensure Extractor implements threedocs.Extractor at compile time.
var _ threedocs.Extractor = (*Extractor)(nil)

// propertyHeadingRE matches the bracket-tagged third-level headings that
// declare a class member: "[property:Type name]" or
// "[method:Type name](...)".
var propertyHeadingRE = regexp.MustCompile(`^\[(property|method):\S+\s+([^\]]+)\]`)

// methodReturnRE moves a method's return type from before the argument
// list to after it, so "set: Vector3( x: Float )" reads as
// "set( x: Float ): Vector3".
var methodReturnRE = regexp.MustCompile(`(\w+)(:[^(]+)(\([^)]*\))`)

// Extractor parses one documentation page into a structured entry.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the raw HTML of the documentation page for key and
// returns its entry. The entry's URL fields are left empty; the corpus
// loader fills them in from the endpoint it fetched.
func (e *Extractor) Extract(html, key string) (*threedocs.Entry, error) {
	// The template refers to the page's own class as ":this" and
	// "[name]"; rewrite both to the entry key before parsing so titles
	// read naturally (e.g. "Vector3.set(...): Vector3" rather than
	// ": this").
	html = strings.ReplaceAll(html, ":this", ":"+key)
	html = strings.ReplaceAll(html, "[name]", key)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, threedocs.Errorf(threedocs.EINVALID, "parse %q: %v", key, err)
	}

	if doc.Find("h1,h2,h3").Length() == 0 {
		return nil, threedocs.Errorf(threedocs.EINVALID, "page %q has no heading", key)
	}

	entry := &threedocs.Entry{
		Name:        key,
		Title:       titleOf(doc, key),
		Description: descriptionOf(doc),
		Properties:  propertiesOf(doc),
	}
	return entry, nil
}

// titleOf locates the entry's signature. When a "Constructor" marker
// section exists, the signature block adjacent to it wins; otherwise the
// page's top-level heading is used, falling back to the entry key.
func titleOf(doc *goquery.Document, key string) string {
	var title string
	doc.Find("body").Children().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		html, err := goquery.OuterHtml(sel)
		if err != nil || !strings.Contains(html, "Constructor") {
			return true
		}
		if next := sel.Next(); next.Length() > 0 {
			title = strings.TrimSpace(next.Text())
		}
		return false
	})

	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = key
	}
	return formatTitle(title)
}

// descriptionOf locates the description block by its class marker,
// falling back to the first plain paragraph before any heading.
func descriptionOf(doc *goquery.Document) string {
	desc := doc.Find(".desc").First()
	if desc.Length() == 0 {
		desc = firstLeadingParagraph(doc)
	}
	if desc == nil || desc.Length() == 0 {
		return ""
	}

	html, err := desc.Html()
	if err != nil {
		return ""
	}
	md := threedocs.ToMarkdown(html)
	if md == "" {
		return ""
	}

	// A following paragraph or list means the description continues
	// beyond this block; a literal "..." signals the cut.
	switch goquery.NodeName(desc.Next()) {
	case "p", "ul":
		md += "..."
	}
	return md
}

// firstLeadingParagraph returns the first paragraph among the body's
// children that appears before any heading.
func firstLeadingParagraph(doc *goquery.Document) *goquery.Selection {
	var result *goquery.Selection
	doc.Find("body").Children().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		switch goquery.NodeName(sel) {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return false
		case "p":
			result = sel
			return false
		}
		return true
	})
	return result
}

// propertiesOf scans third-level headings for bracket-tagged members and
// builds one child entry per marker, with the immediately following
// paragraph as the child's description if present.
func propertiesOf(doc *goquery.Document) []*threedocs.Entry {
	var props []*threedocs.Entry
	seen := make(map[string]struct{})

	doc.Find("h3").Each(func(_ int, sel *goquery.Selection) {
		heading, _, _ := strings.Cut(strings.TrimSpace(sel.Text()), "\n")
		m := propertyHeadingRE.FindStringSubmatch(heading)
		if m == nil {
			return
		}

		name := strings.TrimSpace(m[2])
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}

		var description string
		if next := sel.Next(); goquery.NodeName(next) == "p" {
			if html, err := next.Html(); err == nil {
				description = threedocs.ToMarkdown(html)
			}
		}

		props = append(props, &threedocs.Entry{
			Name:        name,
			Title:       formatTitle(heading),
			Description: description,
		})
	})

	return props
}

// formatTitle normalizes a raw heading into a display signature: bracket
// references become "name: Type" and a method's return type moves from
// prefix to suffix.
func formatTitle(heading string) string {
	title := threedocs.ToMarkdown(heading)
	return methodReturnRE.ReplaceAllString(title, "$1$3$2")
}
