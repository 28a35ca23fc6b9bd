package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot is the Discord adapter: it answers /jadwal and posts change notices.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	guildID string
	logger  *zap.Logger
}

// NewBot creates the session without connecting. An empty guildID registers
// the command globally.
func NewBot(token, guildID string, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}
	return &Bot{session: s, guildID: guildID, logger: logger}, nil
}

// Session is shared with the channel notifier.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == commandName {
		b.handler.HandleCommand(s, i)
	}
}

// Open attaches handler, connects the gateway and registers the slash command.
func (b *Bot) Open(handler *Handler) error {
	b.handler = handler
	b.session.AddHandler(b.handleInteraction)
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	for _, cmd := range commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			b.logger.Warn("⚠️ Erreur lors de l'enregistrement de la commande", zap.String("command", cmd.Name), zap.Error(err))
		}
	}
	b.logger.Info("🤖 Bot Discord en ligne.")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
