package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/threedocs/threedocs"
)

// Command names, shared by the registry, the renderer, and the custom
// ID tokens.
const (
	CommandDocs     = "docs"
	CommandExamples = "examples"
	CommandHelp     = "help"
	CommandUptime   = "uptime"
)

// Message is a render-ready payload for the transport layer. It already
// satisfies the platform size ceilings.
type Message struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// Renderer turns resolutions into messages. The Binder backs controls
// whose query is too long to encode into the component custom ID.
type Renderer struct {
	Binder *Binder
}

// NewRenderer creates a new Renderer.
func NewRenderer(binder *Binder) *Renderer {
	return &Renderer{Binder: binder}
}

// Render produces the message for a resolution. For ambiguous results
// the page index selects which slice of the candidate list is shown.
func (r *Renderer) Render(command string, res threedocs.Resolution, page int) *Message {
	switch res.Kind {
	case threedocs.ResolutionMatch:
		return &Message{Embed: ValidateEmbed(matchEmbed(command, res))}
	case threedocs.ResolutionAmbiguous:
		return r.pagedList(command, res, page)
	case threedocs.ResolutionUnknownProperty:
		return &Message{Embed: ValidateEmbed(unknownPropertyEmbed(res))}
	default:
		return &Message{Embed: ValidateEmbed(noMatchEmbed(command, res.Query))}
	}
}

// matchEmbed renders a direct hit. A property hit composes its title
// under the parent's name, so Vector3's x property reads
// "Vector3.x: Float". An empty description is omitted, not rendered.
func matchEmbed(command string, res threedocs.Resolution) *discordgo.MessageEmbed {
	entry := res.Entry

	title := entry.Title
	if title == "" {
		title = entry.Name
	}
	if res.Parent != nil {
		title = res.Parent.Name + "." + title
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		URL:         entry.URL,
		Description: entry.Description,
	}

	if command == CommandExamples {
		if len(entry.Tags) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Tags",
				Value: strings.Join(entry.Tags, ", "),
			})
		}
		if entry.Thumbnail != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: entry.Thumbnail}
		}
	}

	return embed
}

func noMatchEmbed(command, query string) *discordgo.MessageEmbed {
	subject := "documentation"
	if command == CommandExamples {
		subject = "examples"
	}
	return &discordgo.MessageEmbed{
		Title:       "No results",
		Description: fmt.Sprintf("No %s found for `%s`.", subject, query),
	}
}

func unknownPropertyEmbed(res threedocs.Resolution) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: res.Parent.Name,
		URL:   res.Parent.URL,
		Description: fmt.Sprintf("`%s` has no property or method matching `%s`.",
			res.Parent.Name, res.Property),
	}
}

// pagedList renders an ambiguous result as one page of candidate links
// with navigation controls. Property-level candidates are listed under
// their parent's name.
func (r *Renderer) pagedList(command string, res threedocs.Resolution, page int) *Message {
	lines := make([]string, 0, len(res.Matches))
	for _, m := range res.Matches {
		name := m.Name
		if res.Parent != nil {
			name = res.Parent.Name + "." + name
		}
		lines = append(lines, fmt.Sprintf("**[%s](%s)**", name, m.URL))
	}

	p := threedocs.Paginate(lines, page)
	embed := ValidateEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d results for \"%s\"", len(lines), res.Query),
		Description: strings.Join(p.Lines, "\n"),
		Footer:      &discordgo.MessageEmbedFooter{Text: p.Footer()},
	})

	msg := &Message{Embed: embed}
	if p.Paged() {
		msg.Components = []discordgo.MessageComponent{r.controlRow(command, res.Query, p)}
	}
	return msg
}

var controlLabels = map[threedocs.Control]string{
	threedocs.ControlFirst:    "«",
	threedocs.ControlPrevious: "‹",
	threedocs.ControlNext:     "›",
	threedocs.ControlLast:     "»",
}

// controlRow builds the four navigation buttons. Each button carries the
// token needed to recompute its target page; a boundary no-op renders
// disabled.
func (r *Renderer) controlRow(command, query string, p threedocs.Page) discordgo.ActionsRow {
	row := discordgo.ActionsRow{}
	var key string // one binding serves all four controls
	for _, c := range threedocs.Controls {
		target := p.Target(c)
		id, ok := Token{Command: command, Query: query, Page: target}.CustomID(c)
		if !ok {
			if key == "" {
				key = r.Binder.Bind(Token{Command: command, Query: query})
			}
			id = BoundCustomID(c, target, key)
		}
		row.Components = append(row.Components, discordgo.Button{
			Label:    controlLabels[c],
			Style:    discordgo.SecondaryButton,
			CustomID: id,
			Disabled: p.Disabled(c),
		})
	}
	return row
}
