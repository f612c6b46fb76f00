package announce

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type DiscordAnnouncer struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordAnnouncer(token, channelID string) (*DiscordAnnouncer, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &DiscordAnnouncer{
		session:   session,
		channelID: channelID,
	}, nil
}

func (a *DiscordAnnouncer) Announce(ctx context.Context, announcement Announcement) error {
	if _, err := a.session.ChannelMessageSend(a.channelID, announcement.Text(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}

	return nil
}
