package mock

import (
	"context"

	"github.com/threedocs/threedocs"
)

var _ threedocs.CorpusLoader = (*CorpusLoader)(nil)

// CorpusLoader is a mock implementation of threedocs.CorpusLoader.
type CorpusLoader struct {
	LoadFn func(ctx context.Context) (*threedocs.Corpus, error)
}

func (l *CorpusLoader) Load(ctx context.Context) (*threedocs.Corpus, error) {
	return l.LoadFn(ctx)
}

var _ threedocs.CorpusSource = (*CorpusSource)(nil)

// CorpusSource is a mock implementation of threedocs.CorpusSource.
type CorpusSource struct {
	CorpusFn func() *threedocs.Corpus
}

func (s *CorpusSource) Corpus() *threedocs.Corpus {
	return s.CorpusFn()
}
