// Package fs provides file-based corpus storage: a writer for dumping a
// built corpus to disk and a loader for serving from such a dump
// instead of rebuilding from the network.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/threedocs/threedocs"
)

// WriteCorpus writes the corpus as indented JSON.
func WriteCorpus(w io.Writer, c *threedocs.Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding corpus: %w", err)
	}
	return nil
}

// SaveCorpus writes the corpus to path with atomic update semantics:
// the dump lands in a temporary file first and replaces any existing
// file in a single rename.
func SaveCorpus(path string, c *threedocs.Corpus) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := WriteCorpus(f, c); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// Ensure Loader implements threedocs.CorpusLoader at compile time.
var _ threedocs.CorpusLoader = (*Loader)(nil)

// Loader serves a corpus from a JSON dump produced by SaveCorpus. Each
// Load re-reads the file, so a refresh cycle picks up a replaced dump.
type Loader struct {
	Path string
}

// NewLoader creates a new Loader reading from path.
func NewLoader(path string) *Loader {
	return &Loader{Path: filepath.Clean(path)}
}

// Load reads and validates the corpus dump.
func (l *Loader) Load(ctx context.Context) (*threedocs.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, threedocs.Errorf(threedocs.ENOTFOUND, "corpus file %q does not exist", l.Path)
		}
		return nil, err
	}

	var corpus threedocs.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, threedocs.Errorf(threedocs.EINVALID, "corpus file %q is not valid JSON: %v", l.Path, err)
	}

	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	return &corpus, nil
}
