package corpus

import (
	"sync/atomic"

	"github.com/threedocs/threedocs"
)

// Ensure Store implements threedocs.CorpusSource at compile time.
var _ threedocs.CorpusSource = (*Store)(nil)

// Store holds the currently published corpus. Publication is a single
// atomic reference swap: queries in flight keep reading the corpus they
// started with, and the replaced corpus is simply dropped, never edited.
type Store struct {
	current atomic.Pointer[threedocs.Corpus]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Corpus returns the currently published corpus, or nil before the
// first publish.
func (s *Store) Corpus() *threedocs.Corpus {
	return s.current.Load()
}

// Publish atomically replaces the published corpus. Concurrent
// publishes are last-write-wins.
func (s *Store) Publish(c *threedocs.Corpus) {
	s.current.Store(c)
}
