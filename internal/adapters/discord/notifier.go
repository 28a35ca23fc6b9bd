package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
	pkgdiscord "jadwal/pkg/discord"
)

var _ output.ChangeNotifier = (*ChannelNotifier)(nil)

// embedSender is the part of *discordgo.Session the notifier needs.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelNotifier posts schedule changes to one text channel.
type ChannelNotifier struct {
	sender     embedSender
	channelID  string
	translator output.T
	locale     string
}

func NewChannelNotifier(sender embedSender, channelID string, translator output.T, locale string) *ChannelNotifier {
	return &ChannelNotifier{sender: sender, channelID: channelID, translator: translator, locale: locale}
}

func (n *ChannelNotifier) SchedulesChanged(_ context.Context, change entities.ChangeEvent) error {
	embed := pkgdiscord.ChangeEmbed(n.translator, n.locale, change)
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		return fmt.Errorf("post change to channel %s: %w", n.channelID, err)
	}
	return nil
}
