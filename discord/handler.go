package discord

import (
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/threedocs/threedocs"
)

// responder is the slice of the session API the handler needs; it keeps
// the handler testable without a live gateway connection.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ responder = (*discordgo.Session)(nil)

// Handler dispatches interactions to the command registry and serves
// component activations. Safe for concurrent use.
type Handler struct {
	source   threedocs.CorpusSource
	renderer *Renderer
	logger   *slog.Logger
	started  time.Time
}

// NewHandler creates a new Handler serving queries from source.
func NewHandler(source threedocs.CorpusSource, binder *Binder, logger *slog.Logger) *Handler {
	return &Handler{
		source:   source,
		renderer: NewRenderer(binder),
		logger:   logger,
		started:  time.Now(),
	}
}

// Register attaches the handler to a session.
func (h *Handler) Register(s *discordgo.Session) {
	s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		h.Handle(s, ic)
	})
}

// Handle serves one interaction. A fault in any handler is logged with
// the query and stage and answered with a generic fallback; the user
// always receives a message, never a dropped interaction.
func (h *Handler) Handle(s responder, ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, ic)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, ic)
	}
}

func (h *Handler) handleCommand(s responder, ic *discordgo.InteractionCreate) {
	data := ic.ApplicationCommandData()
	query := commandQuery(data)

	defer h.recoverTo(s, ic, "command", query)

	handler, ok := commandHandlers[data.Name]
	if !ok {
		h.logger.Warn("unknown command", "command", data.Name)
		h.respond(s, ic, fallbackMessage(), false)
		return
	}

	msg, err := handler(h, query)
	if err != nil {
		h.logger.Error("command failed",
			"command", data.Name,
			"query", query,
			"stage", "command",
			"error", err,
		)
		msg = fallbackMessage()
	}
	h.respond(s, ic, msg, false)
}

// handleComponent serves a navigation button. The custom ID carries the
// command, query and target page, so the original match set is
// recomputed and re-sliced without any reference to the first response.
func (h *Handler) handleComponent(s responder, ic *discordgo.InteractionCreate) {
	id := ic.MessageComponentData().CustomID

	defer h.recoverTo(s, ic, "component", id)

	parsed, err := ParseCustomID(id)
	if err != nil {
		h.logger.Error("component failed", "custom_id", id, "stage", "parse", "error", err)
		h.respond(s, ic, fallbackMessage(), true)
		return
	}

	command, query := parsed.Command, parsed.Query
	if parsed.Bound {
		token, ok := h.renderer.Binder.Lookup(parsed.Key)
		if !ok {
			h.respond(s, ic, expiredMessage(), true)
			return
		}
		command, query = token.Command, token.Query
	}

	h.respond(s, ic, h.resolve(command, query, parsed.Page), true)
}

func (h *Handler) respond(s responder, ic *discordgo.InteractionCreate, msg *Message, update bool) {
	kind := discordgo.InteractionResponseChannelMessageWithSource
	if update {
		kind = discordgo.InteractionResponseUpdateMessage
	}

	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{msg.Embed},
			Components: msg.Components,
		},
	})
	if err != nil {
		h.logger.Error("interaction respond failed", "error", err)
	}
}

// recoverTo converts a handler panic into a fallback response so the
// transport layer never sees a fault.
func (h *Handler) recoverTo(s responder, ic *discordgo.InteractionCreate, stage, query string) {
	r := recover()
	if r == nil {
		return
	}
	h.logger.Error("handler fault", "stage", stage, "query", query, "panic", r)
	h.respond(s, ic, fallbackMessage(), stage == "component")
}

func fallbackMessage() *Message {
	return &Message{Embed: &discordgo.MessageEmbed{
		Title:       "Something went wrong",
		Description: "The request could not be completed. Please try again.",
	}}
}

func expiredMessage() *Message {
	return &Message{Embed: &discordgo.MessageEmbed{
		Title:       "Controls expired",
		Description: "These navigation controls are no longer active. Run the command again.",
	}}
}

func commandQuery(data discordgo.ApplicationCommandInteractionData) string {
	for _, opt := range data.Options {
		if opt.Name == "query" {
			return opt.StringValue()
		}
	}
	return ""
}
