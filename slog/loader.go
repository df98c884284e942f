// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/threedocs/threedocs"
)

// Ensure LoggingLoader implements threedocs.CorpusLoader.
var _ threedocs.CorpusLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a CorpusLoader with timing and outcome logging.
type LoggingLoader struct {
	next   threedocs.CorpusLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next threedocs.CorpusLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the result.
func (l *LoggingLoader) Load(ctx context.Context) (*threedocs.Corpus, error) {
	begin := time.Now()
	corpus, err := l.next.Load(ctx)
	if err != nil {
		l.logger.Error("corpus load failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	l.logger.Info("corpus loaded",
		"duration", time.Since(begin),
		"revision", corpus.Revision,
		"docs", len(corpus.Docs),
		"examples", len(corpus.Examples),
	)
	return corpus, nil
}
