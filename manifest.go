package threedocs

import "context"

// ManifestService retrieves the documentation site's index files.
// The site publishes three manifests: a locale-keyed nested index of
// documentation endpoints, a category-grouped index of example names,
// and a flat map of example name to tag list.
type ManifestService interface {
	// DocIndex returns the documentation index for a locale, flattened
	// to a map of entry name to endpoint path.
	DocIndex(ctx context.Context, locale string) (map[string]string, error)

	// ExampleIndex returns the example names grouped by category.
	ExampleIndex(ctx context.Context) (map[string][]string, error)

	// ExampleTags returns the manifest-supplied tags per example name.
	// Examples without supplied tags are absent from the map.
	ExampleTags(ctx context.Context) (map[string][]string, error)
}
