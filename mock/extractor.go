package mock

import "github.com/threedocs/threedocs"

var _ threedocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of threedocs.Extractor.
type Extractor struct {
	ExtractFn func(html, key string) (*threedocs.Entry, error)
}

func (e *Extractor) Extract(html, key string) (*threedocs.Entry, error) {
	return e.ExtractFn(html, key)
}
