package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"croupier/config"
	"croupier/events"
	"croupier/service"
	"croupier/utils"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token            string
	GuildID          string
	BettingChannelID string
}

// Deps carries the collaborators the bot wires into the betting workflow.
// The notifier is built here because it needs the Discord session.
type Deps struct {
	PlayerRepo      service.PlayerRepository
	BetRepo         service.BetRepository
	Roster          *service.Roster
	Rounds          *service.RoundState
	Options         config.BettingOptions
	StartingBalance int64
}

type Bot struct {
	config         Config
	session        *discordgo.Session
	bettingService service.BettingService
	eventBus       *events.Bus
}

func New(config Config, deps Deps, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	notifier := newChannelNotifier(dg, config.BettingChannelID)

	bot := &Bot{
		config:  config,
		session: dg,
		bettingService: service.NewBettingService(
			deps.PlayerRepo,
			deps.BetRepo,
			deps.Roster,
			deps.Rounds,
			notifier,
			eventBus,
			deps.Options,
			deps.StartingBalance,
		),
		eventBus: eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Log accepted bets and round joins as they happen
	eventBus.Subscribe(events.EventTypeBetPlaced, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BetPlacedEvent); ok {
			log.Infof("Bet placed: player %d wagered %s on '%s'. New balance: %s",
				e.DiscordID,
				utils.FormatMoney(e.Amount),
				e.Selector,
				utils.FormatMoney(e.NewBalance))
		}
	})
	eventBus.Subscribe(events.EventTypePlayerJoined, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.PlayerJoinedEvent); ok {
			log.Infof("Player %s (%d) joined the round with %s (new registration: %t)",
				e.Username,
				e.DiscordID,
				utils.FormatMoney(e.Balance),
				e.NewRegistration)
		}
	})

	return bot, nil
}

// Close shuts down the Discord session
func (b *Bot) Close() error {
	return b.session.Close()
}
