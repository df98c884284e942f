package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/threedocs/threedocs"
	"github.com/threedocs/threedocs/corpus"
	"github.com/threedocs/threedocs/goquery"
	threehttp "github.com/threedocs/threedocs/http"
	"github.com/threedocs/threedocs/rod"
	threeslog "github.com/threedocs/threedocs/slog"
)

// Dependencies holds the services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Loader overrides the network-backed corpus loader when set.
	// Used by tests.
	Loader threedocs.CorpusLoader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Start the documentation assistant"`
	Sync  SyncCmd  `cmd:"" help:"Register the slash commands with Discord"`
	Build BuildCmd `cmd:"" help:"Build the corpus once and write it as JSON"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Token    string        `env:"THREEDOCS_TOKEN" required:"" help:"Discord bot token"`
	Locale   string        `default:"en" help:"Documentation locale"`
	Interval time.Duration `default:"1h" help:"Corpus refresh interval"`
	Browser  bool          `help:"Render pages with headless Chrome instead of plain HTTP"`
	Rate     float64       `default:"0" help:"Max page fetches per second (0 = unlimited)"`
	Corpus   string        `help:"Serve from a corpus dump built with 'build' instead of the network"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Token   string `env:"THREEDOCS_TOKEN" required:"" help:"Discord bot token"`
	AppID   string `env:"THREEDOCS_APP_ID" required:"" help:"Discord application ID"`
	GuildID string `env:"THREEDOCS_GUILD_ID" help:"Guild to register in (empty = global)"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Locale  string  `default:"en" help:"Documentation locale"`
	Browser bool    `help:"Render pages with headless Chrome instead of plain HTTP"`
	Rate    float64 `default:"0" help:"Max page fetches per second (0 = unlimited)"`
	Out     string  `short:"o" help:"Output file (default stdout)"`
}

// corpusLoader assembles the network-backed loader, or returns the
// injected one. The returned closer releases the fetcher.
func (d *Dependencies) corpusLoader(locale string, browser bool, reqPerSec float64) (threedocs.CorpusLoader, func() error, error) {
	if d.Loader != nil {
		return d.Loader, func() error { return nil }, nil
	}

	var fetcher threedocs.Fetcher
	if browser {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, nil, err
		}
		fetcher = f
	} else {
		fetcher = threehttp.NewFetcher()
	}

	var limiter *rate.Limiter
	if reqPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(reqPerSec), 1)
	}

	loader := &corpus.Loader{
		Manifests: threehttp.NewManifestService(nil, threehttp.ManifestConfig{}),
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Locale:    locale,
		Limiter:   limiter,
		Logger:    d.Logger,
	}
	return threeslog.NewLoggingLoader(loader, d.Logger), fetcher.Close, nil
}
