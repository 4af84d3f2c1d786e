package bot

import (
	"context"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"go.uber.org/zap"

	"github.com/reputo/reputo/internal/bot/core/cooldown"
	botEvents "github.com/reputo/reputo/internal/bot/events"
	"github.com/reputo/reputo/internal/bot/handlers/reputation"
	"github.com/reputo/reputo/internal/database"
	"github.com/reputo/reputo/internal/setup/config"
)

// Bot wires the Discord client to the reputation command handlers.
type Bot struct {
	db     database.Client
	client bot.Client
	logger *zap.Logger
}

// New initializes a Bot instance by creating the command handlers and
// configuring the Discord client with the required gateway intents and
// event listeners.
func New(cfg *config.Config, db database.Client, logger *zap.Logger) (*Bot, error) {
	repHandler := reputation.New(
		db.Model().Reputation(),
		cooldown.NewTracker(time.Duration(cfg.Reputation.CooldownSeconds)*time.Second),
		&cfg.Reputation,
		logger,
	)
	memberEvents := botEvents.NewMemberEventHandler(logger)

	// Guild and role caches back the administrator permission checks;
	// message content is needed to parse text commands.
	client, err := disgo.New(cfg.Discord.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMembers,
				gateway.IntentGuildMessages,
				gateway.IntentMessageContent,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds|cache.FlagRoles|cache.FlagMembers),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnGuildMessageCreate: repHandler.OnGuildMessageCreate,
			OnGuildMemberJoin:    memberEvents.OnGuildMemberJoin,
		}),
	)
	if err != nil {
		return nil, err
	}

	return &Bot{
		db:     db,
		client: client,
		logger: logger,
	}, nil
}

// Start opens the gateway connection to begin receiving events.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")
	return b.client.OpenGateway(ctx)
}

// Close gracefully shuts down the Discord gateway connection.
func (b *Bot) Close(ctx context.Context) {
	b.logger.Info("Closing bot")
	b.client.Close(ctx)
}
