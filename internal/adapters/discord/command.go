package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	pkgdiscord "jadwal/pkg/discord"
)

const (
	commandName  = "jadwal"
	subConflicts = "bentrok"
	subDay       = "hari"
	optionDay    = "hari"
)

func commands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.AllWeekdays))
	for _, d := range domain.AllWeekdays {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: d.Indonesian(), Value: string(d)})
	}
	return []*discordgo.ApplicationCommand{{
		Name:        commandName,
		Description: "Jadwal perkuliahan",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subConflicts,
				Description: "Tampilkan jadwal yang bentrok",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subDay,
				Description: "Tampilkan jadwal satu hari",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionDay,
					Description: "Hari",
					Required:    true,
					Choices:     choices,
				}},
			},
		},
	}}
}

func (h *Handler) commandResponse(ctx context.Context, locale string, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponseData, error) {
	if data.Name != commandName || len(data.Options) == 0 {
		return nil, fmt.Errorf("commande inconnue: %s", data.Name)
	}
	sub := data.Options[0]
	switch sub.Name {
	case subConflicts:
		return h.conflictsResponse(ctx, locale)
	case subDay:
		raw := ""
		for _, opt := range sub.Options {
			if opt.Name == optionDay {
				raw = opt.StringValue()
			}
		}
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			return nil, err
		}
		return h.dayResponse(ctx, locale, day)
	}
	return nil, fmt.Errorf("sous-commande inconnue: %s", sub.Name)
}

func (h *Handler) conflictsResponse(ctx context.Context, locale string) (*discordgo.InteractionResponseData, error) {
	reports, err := h.schedules.CheckConflicts(ctx, locale)
	if err != nil {
		return nil, err
	}
	var events []entities.ScheduledEvent
	if len(reports) > 0 {
		if events, err = h.schedules.List(ctx); err != nil {
			return nil, err
		}
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.ConflictsEmbed(h.translator, locale, events, reports)},
	}, nil
}

func (h *Handler) dayResponse(ctx context.Context, locale string, day domain.Weekday) (*discordgo.InteractionResponseData, error) {
	events, err := h.schedules.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.DayEmbed(h.translator, locale, day, events)},
	}, nil
}
