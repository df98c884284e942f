package main

import (
	"fmt"

	"github.com/threedocs/threedocs/fs"
)

// Run executes the build command: load the corpus once and write it as
// a JSON dump, for offline inspection or to serve the assistant from
// via "run --corpus".
func (c *BuildCmd) Run(deps *Dependencies) error {
	loader, closeFetcher, err := deps.corpusLoader(c.Locale, c.Browser, c.Rate)
	if err != nil {
		return fmt.Errorf("creating fetcher: %w", err)
	}
	defer closeFetcher()

	corpus, err := loader.Load(deps.Ctx)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := fs.SaveCorpus(c.Out, corpus); err != nil {
			return err
		}
	} else if err := fs.WriteCorpus(deps.Stdout, corpus); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stderr, "Built corpus %s: %d docs, %d examples\n",
		corpus.Revision, len(corpus.Docs), len(corpus.Examples))
	return nil
}
