package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/threedocs/threedocs"
	"github.com/threedocs/threedocs/corpus"
	"github.com/threedocs/threedocs/discord"
	"github.com/threedocs/threedocs/fs"
)

// Run executes the run command: build the corpus, keep it refreshed,
// and serve slash command interactions until interrupted.
func (c *RunCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var loader threedocs.CorpusLoader
	if c.Corpus != "" {
		loader = fs.NewLoader(c.Corpus)
	} else {
		l, closeFetcher, err := deps.corpusLoader(c.Locale, c.Browser, c.Rate)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("creating fetcher: %w", err)
		}
		defer closeFetcher()
		loader = l
	}

	store := corpus.NewStore()
	refresher := &corpus.Refresher{
		Loader:   loader,
		Store:    store,
		Interval: c.Interval,
		Logger:   deps.Logger,
	}

	session, err := discordgo.New("Bot " + c.Token)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	handler := discord.NewHandler(store, discord.NewBinder(), deps.Logger)
	handler.Register(session)

	if err := session.Open(); err != nil {
		return fmt.Errorf("connecting to gateway: %w", err)
	}
	defer session.Close()

	fmt.Fprintln(deps.Stdout, "threedocs is running. Press Ctrl-C to exit.")

	// The refresher's initial load failure takes the whole process
	// down; later failures keep the previous corpus published.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return refresher.Run(gctx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
