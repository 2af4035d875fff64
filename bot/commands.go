package bot

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "bet",
			Description: "Place a roulette bet against the current round",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "amount",
					Description: "Amount in dollars, or 'all' to stake your entire balance",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "selector",
					Description: "What to bet on: a number (0-36), red/black, even/odd, high/low, 1st12/2nd12/3rd12",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

// handleCommands dispatches slash command interactions
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "bet":
		b.handleBetCommand(s, i)
	}
}

// handleBetCommand runs the bet placement workflow for a /bet interaction
func (b *Bot) handleBetCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if i.Member == nil || i.Member.User == nil {
		return
	}

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondEphemeral(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	var rawAmount, rawSelector string
	for _, opt := range options {
		switch opt.Name {
		case "amount":
			rawAmount = opt.StringValue()
		case "selector":
			rawSelector = opt.StringValue()
		}
	}

	// Acknowledge immediately; the outcome lands in the betting channel
	b.respondEphemeral(s, i, "Placing your bet...")

	if _, err := b.bettingService.PlaceBet(ctx, discordID, i.Member.User.Username, rawAmount, rawSelector); err != nil {
		// Already reported to the user by the workflow; log for operators
		log.WithFields(log.Fields{
			"discordID": discordID,
			"amount":    rawAmount,
			"selector":  rawSelector,
			"error":     err,
		}).Info("Bet was not placed")
	}
}

// respondEphemeral sends a short ephemeral acknowledgement
func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}
