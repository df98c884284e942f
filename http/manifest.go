package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/threedocs/threedocs"
)

// Default manifest locations on the documentation site.
const (
	DefaultDocListURL     = "https://threejs.org/docs/list.json"
	DefaultExampleListURL = "https://threejs.org/examples/files.json"
	DefaultExampleTagsURL = "https://threejs.org/examples/tags.json"
)

// Ensure ManifestService implements threedocs.ManifestService at compile time.
var _ threedocs.ManifestService = (*ManifestService)(nil)

// ManifestConfig holds the manifest endpoint URLs. Zero-value fields
// fall back to the public site defaults.
type ManifestConfig struct {
	DocListURL     string
	ExampleListURL string
	ExampleTagsURL string
}

// ManifestService retrieves and decodes the site's JSON index files.
type ManifestService struct {
	client *http.Client
	cfg    ManifestConfig
}

// NewManifestService creates a new ManifestService. If client is nil,
// http.DefaultClient is used.
func NewManifestService(client *http.Client, cfg ManifestConfig) *ManifestService {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.DocListURL == "" {
		cfg.DocListURL = DefaultDocListURL
	}
	if cfg.ExampleListURL == "" {
		cfg.ExampleListURL = DefaultExampleListURL
	}
	if cfg.ExampleTagsURL == "" {
		cfg.ExampleTagsURL = DefaultExampleTagsURL
	}
	return &ManifestService{client: client, cfg: cfg}
}

// DocIndex fetches the locale-keyed documentation index and flattens the
// requested locale's nested categories into a name-to-endpoint map.
func (s *ManifestService) DocIndex(ctx context.Context, locale string) (map[string]string, error) {
	var index map[string]json.RawMessage
	if err := s.getJSON(ctx, s.cfg.DocListURL, &index); err != nil {
		return nil, err
	}

	localized, ok := index[locale]
	if !ok {
		return nil, threedocs.Errorf(threedocs.ENOTFOUND, "locale %q not in doc index", locale)
	}

	flat := make(map[string]string)
	if err := flatten(localized, flat); err != nil {
		return nil, threedocs.Errorf(threedocs.EINVALID, "doc index for locale %q: %v", locale, err)
	}
	return flat, nil
}

// ExampleIndex fetches the example identifiers grouped by category.
func (s *ManifestService) ExampleIndex(ctx context.Context) (map[string][]string, error) {
	var index map[string][]string
	if err := s.getJSON(ctx, s.cfg.ExampleListURL, &index); err != nil {
		return nil, err
	}
	return index, nil
}

// ExampleTags fetches the manifest-supplied tags per example identifier.
func (s *ManifestService) ExampleTags(ctx context.Context) (map[string][]string, error) {
	var tags map[string][]string
	if err := s.getJSON(ctx, s.cfg.ExampleTagsURL, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// getJSON performs a GET request and decodes the JSON response into v.
func (s *ManifestService) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return threedocs.Errorf(threedocs.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return threedocs.Errorf(threedocs.EINVALID, "decode %s: %v", url, err)
	}
	return nil
}

// flatten walks an arbitrarily nested category tree whose leaves are
// endpoint strings and collects name-to-endpoint pairs.
func flatten(raw json.RawMessage, out map[string]string) error {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		return err
	}
	for name, value := range node {
		var endpoint string
		if err := json.Unmarshal(value, &endpoint); err == nil {
			out[name] = endpoint
			continue
		}
		if err := flatten(value, out); err != nil {
			return err
		}
	}
	return nil
}
