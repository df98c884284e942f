package main

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/threedocs/threedocs/discord"
)

// Run executes the sync command: replace the application's registered
// slash commands with the current definitions.
func (c *SyncCmd) Run(deps *Dependencies) error {
	session, err := discordgo.New("Bot " + c.Token)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	if err := discord.Sync(session, c.AppID, c.GuildID); err != nil {
		return err
	}

	scope := "globally"
	if c.GuildID != "" {
		scope = "in guild " + c.GuildID
	}
	fmt.Fprintf(deps.Stdout, "Registered %d commands %s\n", len(discord.Commands()), scope)
	return nil
}
