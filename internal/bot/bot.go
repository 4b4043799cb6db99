package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/label-flow/internal/repository/sqlite"
	"github.com/Houeta/label-flow/internal/services/checker"
	"github.com/Houeta/label-flow/internal/session"
	"gopkg.in/telebot.v4"
)

// requestTimeout bounds storage and network calls made by one update.
const requestTimeout = 30 * time.Second

// Services are the dependencies used by command handlers.
type Services struct {
	Checker  checker.Interface
	Settings sqlite.SettingsRepository
	Fetcher  ProductFetcher // Fetcher is nil when no remote price list is configured.
}

// Bot contains the bot API instance and other information.
type Bot struct {
	bot      API
	log      *slog.Logger
	sessions *session.Store
	checker  checker.Interface
	settings sqlite.SettingsRepository
	fetcher  ProductFetcher
}

func NewBot(log *slog.Logger, token string, poller time.Duration, svc Services) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
		OnError: func(err error, c telebot.Context) {
			if c == nil {
				log.Error("Telegram poller error", "error", err)
				return
			}
			log.Error("Failed to handle update", "error", err, "update_id", c.Update().ID)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on acount", "account", bot.Me.Username)

	botInstance := newBot(bot, log, svc)
	botInstance.registerRoutes()

	return botInstance, nil
}

func newBot(api API, log *slog.Logger, svc Services) *Bot {
	return &Bot{
		bot:      api,
		log:      log,
		sessions: session.NewStore(),
		checker:  svc.Checker,
		settings: svc.Settings,
		fetcher:  svc.Fetcher,
	}
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/help", b.helpHandler)
	b.bot.Handle("/list", b.listHandler)
	b.bot.Handle("/search", b.searchHandler)
	b.bot.Handle("/select", b.selectHandler)
	b.bot.Handle("/selectall", b.selectAllHandler)
	b.bot.Handle("/deselect", b.deselectHandler)
	b.bot.Handle("/discount", b.discountHandler)
	b.bot.Handle("/cleardiscounts", b.clearDiscountsHandler)
	b.bot.Handle("/stats", b.statsHandler)
	b.bot.Handle("/export", b.exportHandler)
	b.bot.Handle("/compare", b.compareHandler)
	b.bot.Handle("/color", b.colorHandler)
	b.bot.Handle("/fetch", b.fetchHandler)
	b.bot.Handle("/reset", b.resetHandler)
	b.bot.Handle(telebot.OnText, b.textHandler)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
