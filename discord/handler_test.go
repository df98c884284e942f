package discord_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threedocs/threedocs"
	"github.com/threedocs/threedocs/discord"
	"github.com/threedocs/threedocs/mock"
)

// fakeResponder records the interaction responses the handler sends.
type fakeResponder struct {
	responses []*discordgo.InteractionResponse
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func testHandler() (*discord.Handler, *fakeResponder) {
	source := &mock.CorpusSource{
		CorpusFn: func() *threedocs.Corpus {
			return &threedocs.Corpus{Docs: testDocs(), Examples: testExamples()}
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return discord.NewHandler(source, discord.NewBinder(), logger), &fakeResponder{}
}

func commandInteraction(name, query string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	if query != "" {
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:  "query",
			Type:  discordgo.ApplicationCommandOptionString,
			Value: query,
		}}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: data,
	}}
}

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func TestHandler_DocsCommand(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, commandInteraction("docs", "Vector3"))

	require.Len(t, responder.responses, 1)
	resp := responder.responses[0]
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.Len(t, resp.Data.Embeds, 1)
	assert.Equal(t, "Vector3( x: Float, y: Float, z: Float )", resp.Data.Embeds[0].Title)
}

func TestHandler_ExamplesCommand(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, commandInteraction("examples", "webgl"))

	require.Len(t, responder.responses, 1)
	resp := responder.responses[0]
	require.Len(t, resp.Data.Embeds, 1)
	assert.Contains(t, resp.Data.Embeds[0].Title, "webgl")
	assert.Len(t, resp.Data.Components, 1)
}

func TestHandler_HelpCommand(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, commandInteraction("help", ""))

	require.Len(t, responder.responses, 1)
	require.Len(t, responder.responses[0].Data.Embeds, 1)
	assert.Contains(t, responder.responses[0].Data.Embeds[0].Description, "/docs")
}

func TestHandler_UptimeCommand(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, commandInteraction("uptime", ""))

	require.Len(t, responder.responses, 1)
	assert.Equal(t, "Uptime", responder.responses[0].Data.Embeds[0].Title)
}

func TestHandler_UnknownCommandFallsBack(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, commandInteraction("frobnicate", ""))

	require.Len(t, responder.responses, 1)
	assert.Equal(t, "Something went wrong", responder.responses[0].Data.Embeds[0].Title)
}

func TestHandler_ComponentNavigatesToEncodedPage(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	id, ok := discord.Token{Command: "examples", Query: "webgl", Page: 1}.CustomID(threedocs.ControlNext)
	require.True(t, ok)

	handler.Handle(responder, componentInteraction(id))

	require.Len(t, responder.responses, 1)
	resp := responder.responses[0]
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	require.Len(t, resp.Data.Embeds, 1)
	require.NotNil(t, resp.Data.Embeds[0].Footer)
	assert.Equal(t, "Page 2 of 2", resp.Data.Embeds[0].Footer.Text)
}

func TestHandler_ComponentMalformedIDFallsBack(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, componentInteraction("garbage"))

	require.Len(t, responder.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, responder.responses[0].Type)
	assert.Equal(t, "Something went wrong", responder.responses[0].Data.Embeds[0].Title)
}

func TestHandler_ComponentExpiredBinding(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, componentInteraction(discord.BoundCustomID(threedocs.ControlNext, 1, "gone")))

	require.Len(t, responder.responses, 1)
	assert.Equal(t, "Controls expired", responder.responses[0].Data.Embeds[0].Title)
}

func TestHandler_IgnoresOtherInteractionTypes(t *testing.T) {
	t.Parallel()

	handler, responder := testHandler()

	handler.Handle(responder, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionPing,
	}})

	assert.Empty(t, responder.responses)
}
