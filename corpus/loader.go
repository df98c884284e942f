// Package corpus provides corpus loading orchestration. It coordinates
// manifest fetching, per-endpoint page extraction, and atomic
// publication of the assembled documentation and example collections.
package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/threedocs/threedocs"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Default site locations. The docs deep-link anchor format matches the
// site's client-side router: index.html#<endpoint>[.<property>].
const (
	DefaultDocBaseURL     = "https://threejs.org/docs/"
	DefaultExampleBaseURL = "https://threejs.org/examples/"
	DefaultLocale         = "en"
)

// Ensure Loader implements threedocs.CorpusLoader at compile time.
var _ threedocs.CorpusLoader = (*Loader)(nil)

// Loader builds a corpus from the documentation site's manifests.
// Endpoint fetches run concurrently; each fetch is independent and
// idempotent, so failures are isolated and never cancel siblings.
type Loader struct {
	Manifests threedocs.ManifestService
	Fetcher   threedocs.Fetcher
	Extractor threedocs.Extractor

	// Locale selects the documentation language. Defaults to "en".
	Locale string

	// DocBaseURL and ExampleBaseURL locate the site sections.
	DocBaseURL     string
	ExampleBaseURL string

	// Limiter optionally throttles page fetches for politeness.
	Limiter *rate.Limiter

	// Logger receives per-endpoint warnings. Defaults to slog.Default.
	Logger *slog.Logger
}

// Load fetches the site manifests and assembles the corpus. Individual
// endpoint failures are logged and dropped, not retried; only a manifest
// failure aborts the load.
func (l *Loader) Load(ctx context.Context) (*threedocs.Corpus, error) {
	locale := l.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	docBase := l.DocBaseURL
	if docBase == "" {
		docBase = DefaultDocBaseURL
	}
	exampleBase := l.ExampleBaseURL
	if exampleBase == "" {
		exampleBase = DefaultExampleBaseURL
	}

	docIndex, err := l.Manifests.DocIndex(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("doc index: %w", err)
	}
	exampleIndex, err := l.Manifests.ExampleIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("example index: %w", err)
	}
	exampleTags, err := l.Manifests.ExampleTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("example tags: %w", err)
	}

	docs, err := l.loadDocs(ctx, docBase, docIndex)
	if err != nil {
		return nil, err
	}

	corpus := &threedocs.Corpus{
		Docs:     docs,
		Examples: assembleExamples(exampleBase, exampleIndex, exampleTags),
	}
	corpus.Revision = revision(corpus)

	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	return corpus, nil
}

// loadDocs fans out one fetch and extraction per doc endpoint. Results
// keep the manifest's (sorted) name order regardless of completion
// order; failed endpoints leave gaps that are dropped afterwards.
func (l *Loader) loadDocs(ctx context.Context, base string, index map[string]string) ([]*threedocs.Entry, error) {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]*threedocs.Entry, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		endpoint := index[name]
		g.Go(func() error {
			if l.Limiter != nil {
				if err := l.Limiter.Wait(gctx); err != nil {
					return err
				}
			}

			pageURL := base + endpoint + ".html"
			html, err := l.Fetcher.Fetch(gctx, pageURL)
			if err != nil {
				logger.Warn("doc fetch failed", "name", name, "url", pageURL, "error", err)
				return nil
			}

			entry, err := l.Extractor.Extract(html, name)
			if err != nil {
				logger.Warn("doc extract failed", "name", name, "url", pageURL, "error", err)
				return nil
			}

			entry.URL = base + "index.html#" + endpoint
			for _, p := range entry.Properties {
				p.URL = entry.URL + "." + p.Name
			}

			results[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make([]*threedocs.Entry, 0, len(results))
	for _, entry := range results {
		if entry != nil {
			docs = append(docs, entry)
		}
	}
	return docs, nil
}

// assembleExamples builds one entry per example identifier. Tags are the
// union of the underscore-split name tokens and the manifest-supplied
// tags, in that order, deduplicated.
func assembleExamples(base string, index map[string][]string, tags map[string][]string) []*threedocs.Entry {
	categories := make([]string, 0, len(index))
	for category := range index {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	seen := make(map[string]struct{})
	var examples []*threedocs.Entry
	for _, category := range categories {
		for _, name := range index[category] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			examples = append(examples, &threedocs.Entry{
				Name:      name,
				Title:     strings.ReplaceAll(name, "_", " "),
				URL:       base + "#" + name,
				Thumbnail: base + "screenshots/" + name + ".jpg",
				Tags:      unionTags(strings.Split(name, "_"), tags[name]),
			})
		}
	}
	return examples
}

// unionTags merges two tag lists, preserving first-occurrence order.
func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tag := range list {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// revision hashes the corpus content so identical loads produce the
// same revision across refresh cycles.
func revision(c *threedocs.Corpus) string {
	h := xxhash.New()
	for _, collection := range [][]*threedocs.Entry{c.Docs, c.Examples} {
		for _, entry := range collection {
			_, _ = h.WriteString(entry.Name)
			_, _ = h.WriteString(entry.Title)
			_, _ = h.WriteString(entry.Description)
			for _, p := range entry.Properties {
				_, _ = h.WriteString(p.Name)
				_, _ = h.WriteString(p.Title)
				_, _ = h.WriteString(p.Description)
			}
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
