package threedocs

import "context"

// Corpus holds the full set of catalog entries for documentation pages
// and for examples. A corpus is built from scratch on each refresh and
// never mutated afterwards; consumers always read a single published
// corpus, so an in-flight refresh cannot corrupt an in-flight query.
type Corpus struct {
	Docs     []*Entry `json:"docs"`
	Examples []*Entry `json:"examples"`

	// Revision is a content hash of the corpus, stable across loads
	// that produce identical entries.
	Revision string `json:"revision"`
}

// Validate returns an error if the corpus violates its uniqueness
// invariants: entry names and URLs are unique within a collection, and
// property names are unique within their parent.
func (c *Corpus) Validate() error {
	for _, collection := range [][]*Entry{c.Docs, c.Examples} {
		names := make(map[string]struct{}, len(collection))
		urls := make(map[string]struct{}, len(collection))
		for _, entry := range collection {
			if err := entry.Validate(); err != nil {
				return err
			}
			if _, ok := names[entry.Name]; ok {
				return Errorf(ECONFLICT, "duplicate entry name %q", entry.Name)
			}
			if _, ok := urls[entry.URL]; ok {
				return Errorf(ECONFLICT, "duplicate entry URL %q", entry.URL)
			}
			names[entry.Name] = struct{}{}
			urls[entry.URL] = struct{}{}

			props := make(map[string]struct{}, len(entry.Properties))
			for _, p := range entry.Properties {
				if _, ok := props[p.Name]; ok {
					return Errorf(ECONFLICT, "duplicate property %q on entry %q", p.Name, entry.Name)
				}
				props[p.Name] = struct{}{}
			}
		}
	}
	return nil
}

// CorpusLoader builds a corpus from the documentation site.
type CorpusLoader interface {
	// Load fetches the site manifests, extracts one entry per endpoint,
	// and returns the assembled corpus. Failures of individual endpoints
	// are dropped, not retried; Load fails only when a manifest itself
	// is unreachable.
	Load(ctx context.Context) (*Corpus, error)
}

// CorpusSource provides read access to the currently published corpus.
// Implementations must swap the corpus atomically so readers never
// observe a half-updated state.
type CorpusSource interface {
	// Corpus returns the currently published corpus, or nil if no load
	// has completed yet.
	Corpus() *Corpus
}
