package discord

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"jadwal/internal/ports/output"
	pkgdiscord "jadwal/pkg/discord"
)

func respond(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData, logger *zap.Logger) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		logger.Warn("⚠️ Réponse à l'interaction impossible", zap.Error(err))
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func errorMessage(t output.T, locale string, err error) string {
	return pkgdiscord.DomainErrorMessage(t, locale, err)
}
