package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// channelNotifier delivers user-facing betting messages to the configured
// betting channel, mentioning the player. Delivery failures surface as
// errors for the caller to log; nothing retries.
type channelNotifier struct {
	session   *discordgo.Session
	channelID string
}

func newChannelNotifier(session *discordgo.Session, channelID string) *channelNotifier {
	return &channelNotifier{
		session:   session,
		channelID: channelID,
	}
}

// Notify sends a message to the betting channel addressed to the player
func (n *channelNotifier) Notify(ctx context.Context, discordID int64, message string) error {
	content := fmt.Sprintf("<@%d> %s", discordID, message)

	_, err := n.session.ChannelMessageSend(n.channelID, content)
	if err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", n.channelID, err)
	}

	return nil
}
