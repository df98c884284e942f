// Package discord adapts resolved documentation queries to Discord
// slash commands, embeds, and message components.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/threedocs/threedocs"
)

// ValidateEmbed clamps every field of the embed to the platform's size
// ceilings, truncating in place. Returns the embed for chaining.
func ValidateEmbed(e *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	e.Title = threedocs.Truncate(e.Title, threedocs.MaxTitleLength)
	e.Description = threedocs.Truncate(e.Description, threedocs.MaxDescriptionLength)
	if len(e.Fields) > threedocs.MaxFieldCount {
		e.Fields = e.Fields[:threedocs.MaxFieldCount]
	}
	for _, f := range e.Fields {
		f.Name = threedocs.Truncate(f.Name, threedocs.MaxFieldNameLength)
		f.Value = threedocs.Truncate(f.Value, threedocs.MaxFieldValueLength)
	}
	return e
}

// ValidateContent clamps a plain message body to the platform ceiling.
func ValidateContent(content string) string {
	return threedocs.Truncate(content, threedocs.MaxContentLength)
}
