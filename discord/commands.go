package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/threedocs/threedocs"
)

// commandHandlers is the static command registry. Adding a command means
// adding a definition to Commands and a handler here.
var commandHandlers = map[string]func(h *Handler, query string) (*Message, error){
	CommandDocs:     (*Handler).docs,
	CommandExamples: (*Handler).examples,
	CommandHelp:     (*Handler).help,
	CommandUptime:   (*Handler).uptime,
}

// Commands returns the slash command definitions to register with the
// platform.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandDocs,
			Description: "Search the three.js documentation",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Class, method or property name, e.g. Vector3.set",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandExamples,
			Description: "Search the three.js example gallery",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Example name or tags, e.g. webgl animation",
					Required:    true,
				},
			},
		},
		{
			Name:        CommandHelp,
			Description: "How to use the documentation assistant",
		},
		{
			Name:        CommandUptime,
			Description: "How long the assistant has been running",
		},
	}
}

// Sync registers the slash command definitions with the Discord API,
// replacing any previously registered set. An empty guildID registers
// the commands globally.
func Sync(s *discordgo.Session, applicationID, guildID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(applicationID, guildID, Commands()); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	return nil
}

func (h *Handler) docs(query string) (*Message, error) {
	return h.resolve(CommandDocs, query, 0), nil
}

func (h *Handler) examples(query string) (*Message, error) {
	return h.resolve(CommandExamples, query, 0), nil
}

// resolve runs one command's query against the currently published
// corpus snapshot and renders the requested page.
func (h *Handler) resolve(command, query string, page int) *Message {
	corpus := h.source.Corpus()
	if corpus == nil {
		return &Message{Embed: &discordgo.MessageEmbed{
			Title:       "Not ready yet",
			Description: "The documentation index is still loading. Try again in a moment.",
		}}
	}

	var res threedocs.Resolution
	if command == CommandExamples {
		res = threedocs.ResolveExamples(corpus.Examples, query)
	} else {
		res = threedocs.Resolve(corpus.Docs, query)
	}
	return h.renderer.Render(command, res, page)
}

func (h *Handler) help(string) (*Message, error) {
	return &Message{Embed: ValidateEmbed(&discordgo.MessageEmbed{
		Title: "three.js documentation assistant",
		Description: "`/docs <query>` looks up a class, method or property, " +
			"e.g. `/docs Vector3` or `/docs Vector3.set`.\n" +
			"`/examples <query>` searches the example gallery by name or " +
			"tags, e.g. `/examples webgl animation`.\n" +
			"Ambiguous queries return a paged list; use the buttons under " +
			"the message to navigate.",
	})}, nil
}

func (h *Handler) uptime(string) (*Message, error) {
	return &Message{Embed: ValidateEmbed(&discordgo.MessageEmbed{
		Title:       "Uptime",
		Description: time.Since(h.started).Round(time.Second).String(),
	})}, nil
}
