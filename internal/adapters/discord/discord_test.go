package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jadwal/internal/application"
	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/infrastructure/i18n"
	"jadwal/internal/infrastructure/memory"
	pkgdiscord "jadwal/pkg/discord"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	courses, rooms, schedules := memory.NewCourseRepository(), memory.NewRoomRepository(), memory.NewScheduleRepository()
	require.NoError(t, memory.Seed(ctx, courses, rooms, schedules, nil, nil, ""))

	translator := i18n.NewTranslator("id", logger)
	svc := application.NewScheduleService(schedules, courses, rooms, nil, translator, domain.DefaultCalendar(), logger)
	return NewHandler(svc, translator, "id", logger)
}

func subcommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) discordgo.ApplicationCommandInteractionData {
	return discordgo.ApplicationCommandInteractionData{
		Name: commandName,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    name,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: opts,
		}},
	}
}

func dayOption(v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  optionDay,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func TestCommands(t *testing.T) {
	cmds := commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "jadwal", cmds[0].Name)
	require.Len(t, cmds[0].Options, 2)
	assert.Equal(t, subConflicts, cmds[0].Options[0].Name)
	day := cmds[0].Options[1]
	assert.Equal(t, subDay, day.Name)
	require.Len(t, day.Options, 1)
	assert.Len(t, day.Options[0].Choices, len(domain.AllWeekdays))
	assert.Equal(t, "Senin", day.Options[0].Choices[0].Name)
}

func TestCommandResponse_Conflicts(t *testing.T) {
	h := newTestHandler(t)

	data, err := h.commandResponse(context.Background(), "id", subcommand(subConflicts))
	require.NoError(t, err)
	require.Len(t, data.Embeds, 1)
	embed := data.Embeds[0]
	assert.Equal(t, pkgdiscord.ColorConflict, embed.Color)
	assert.Equal(t, "4 jadwal bentrok ditemukan.", embed.Description)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "CS101 · Senin 07:00-09:30", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "CS102")
}

func TestCommandResponse_Day(t *testing.T) {
	h := newTestHandler(t)

	data, err := h.commandResponse(context.Background(), "en", subcommand(subDay, dayOption("Monday")))
	require.NoError(t, err)
	embed := data.Embeds[0]
	assert.Equal(t, "📅 Schedule for Monday", embed.Title)
	lines := strings.Split(embed.Description, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CS101")
	assert.Contains(t, lines[2], "CS201")

	data, err = h.commandResponse(context.Background(), "id", subcommand(subDay, dayOption("Saturday")))
	require.NoError(t, err)
	assert.Equal(t, "Tidak ada jadwal pada hari ini.", data.Embeds[0].Description)

	_, err = h.commandResponse(context.Background(), "id", subcommand(subDay, dayOption("Sunday")))
	assert.ErrorIs(t, err, domain.ErrInvalidDay)
	assert.Equal(t, "Hari tidak valid.", errorMessage(h.translator, "id", err))
}

func TestCommandResponse_Unknown(t *testing.T) {
	h := newTestHandler(t)
	_, err := h.commandResponse(context.Background(), "id", subcommand("hapus"))
	assert.Error(t, err)
}

func TestLocaleOf(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, "id", h.localeOf(&discordgo.Interaction{Locale: "id"}))
	assert.Equal(t, "en", h.localeOf(&discordgo.Interaction{Locale: "en-GB"}))
	assert.Equal(t, "id", h.localeOf(&discordgo.Interaction{Locale: "fr"}))
}

type fakeSender struct {
	channel string
	embeds  []*discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channel = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, f.err
}

func TestChannelNotifier(t *testing.T) {
	sender := &fakeSender{}
	n := NewChannelNotifier(sender, "chan-1", i18n.NewTranslator("id", zap.NewNop()), "en")

	err := n.SchedulesChanged(context.Background(), entities.ChangeEvent{
		Kind:          entities.ChangeDigest,
		ScheduleIDs:   []string{"a", "b"},
		ConflictCount: 2,
		At:            time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "chan-1", sender.channel)
	require.Len(t, sender.embeds, 1)
	assert.Equal(t, "📋 Daily conflict digest", sender.embeds[0].Title)
	assert.Equal(t, "02/03/2026 07:00 WIB", sender.embeds[0].Footer.Text)

	sender.err = errors.New("rate limited")
	assert.Error(t, n.SchedulesChanged(context.Background(), entities.ChangeEvent{Kind: entities.ChangeCreated}))
}
