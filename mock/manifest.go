package mock

import (
	"context"

	"github.com/threedocs/threedocs"
)

var _ threedocs.ManifestService = (*ManifestService)(nil)

// ManifestService is a mock implementation of threedocs.ManifestService.
type ManifestService struct {
	DocIndexFn     func(ctx context.Context, locale string) (map[string]string, error)
	ExampleIndexFn func(ctx context.Context) (map[string][]string, error)
	ExampleTagsFn  func(ctx context.Context) (map[string][]string, error)
}

func (s *ManifestService) DocIndex(ctx context.Context, locale string) (map[string]string, error) {
	return s.DocIndexFn(ctx, locale)
}

func (s *ManifestService) ExampleIndex(ctx context.Context) (map[string][]string, error) {
	return s.ExampleIndexFn(ctx)
}

func (s *ManifestService) ExampleTags(ctx context.Context) (map[string][]string, error) {
	return s.ExampleTagsFn(ctx)
}
