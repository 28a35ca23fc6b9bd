package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

const (
	ColorOK       = 0x57F287
	ColorConflict = 0xED4245
	ColorInfo     = 0x5865F2

	// Discord rejects embeds with more fields.
	maxEmbedFields = 25
)

func eventLabel(locale string, e *entities.ScheduledEvent) string {
	return fmt.Sprintf("%s · %s", e.CourseCode, FormatEventSlot(locale, e))
}

// ConflictsEmbed lists every report against the events it was computed on.
func ConflictsEmbed(t output.T, locale string, events []entities.ScheduledEvent, reports []entities.ConflictReport) *discordgo.MessageEmbed {
	if len(reports) == 0 {
		return &discordgo.MessageEmbed{
			Title:       t.T(locale, "discord.conflicts.title", nil),
			Description: t.T(locale, "discord.conflicts.none", nil),
			Color:       ColorOK,
		}
	}

	byID := make(map[string]*entities.ScheduledEvent, len(events))
	for i := range events {
		byID[events[i].ID] = &events[i]
	}

	embed := &discordgo.MessageEmbed{
		Title:       t.T(locale, "discord.conflicts.title", nil),
		Description: t.T(locale, "discord.conflicts.summary", map[string]any{"Count": len(reports)}),
		Color:       ColorConflict,
	}
	for _, r := range reports {
		if len(embed.Fields) == maxEmbedFields {
			break
		}
		e, ok := byID[r.EventID]
		if !ok {
			continue
		}
		partners := make([]string, 0, len(r.ConflictingWith))
		for _, id := range r.ConflictingWith {
			if p, ok := byID[id]; ok {
				partners = append(partners, "- "+eventLabel(locale, p))
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  eventLabel(locale, e),
			Value: r.Reason + "\n" + strings.Join(partners, "\n"),
		})
	}
	return embed
}

// DayEmbed lists one day's events in start order.
func DayEmbed(t output.T, locale string, day domain.Weekday, events []entities.ScheduledEvent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, "discord.day.title", map[string]any{"Day": DayName(locale, day)}),
		Color: ColorInfo,
	}
	if len(events) == 0 {
		embed.Description = t.T(locale, "discord.day.empty", nil)
		return embed
	}

	var b strings.Builder
	for _, e := range events {
		mark := "✅"
		if e.HasConflict {
			mark = "⚠️"
			embed.Color = ColorConflict
		}
		fmt.Fprintf(&b, "%s `%s-%s` **%s** %s · %s · %s\n",
			mark, e.StartTime, e.EndTime, e.CourseCode, e.CourseName, e.RoomName, e.InstructorName)
	}
	embed.Description = strings.TrimRight(b.String(), "\n")
	return embed
}

// ChangeEmbed announces a schedule change or a conflict digest.
func ChangeEmbed(t output.T, locale string, change entities.ChangeEvent) *discordgo.MessageEmbed {
	titleKey := "discord.changed.title"
	if change.Kind == entities.ChangeDigest {
		titleKey = "discord.digest.title"
	}
	color := ColorOK
	if change.ConflictCount > 0 {
		color = ColorConflict
	}
	embed := &discordgo.MessageEmbed{
		Title: t.T(locale, titleKey, nil),
		Description: t.T(locale, "discord.changed.body", map[string]any{
			"Kind":      change.Kind,
			"Changed":   len(change.ScheduleIDs),
			"Conflicts": change.ConflictCount,
		}),
		Color: color,
	}
	if !change.At.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: FormatChangeTime(change.At)}
	}
	return embed
}
