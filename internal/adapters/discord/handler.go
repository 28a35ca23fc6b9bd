package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

// Handler answers /jadwal interactions using the schedule use case.
type Handler struct {
	schedules     input.ScheduleUseCase
	translator    output.T
	defaultLocale string
	logger        *zap.Logger
}

func NewHandler(schedules input.ScheduleUseCase, translator output.T, defaultLocale string, logger *zap.Logger) *Handler {
	return &Handler{
		schedules:     schedules,
		translator:    translator,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// localeOf maps a Discord client locale ("id", "en-US", ...) to one of ours.
func (h *Handler) localeOf(i *discordgo.Interaction) string {
	l := string(i.Locale)
	switch {
	case strings.HasPrefix(l, "id"):
		return "id"
	case strings.HasPrefix(l, "en"):
		return "en"
	}
	return h.defaultLocale
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.localeOf(i.Interaction)
	data, err := h.commandResponse(ctx, locale, i.ApplicationCommandData())
	if err != nil {
		h.logger.Warn("⚠️ Commande /jadwal en échec", zap.Error(err))
		respondEphemeral(s, i.Interaction, errorMessage(h.translator, locale, err))
		return
	}
	respond(s, i.Interaction, data, h.logger)
}
