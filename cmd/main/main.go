package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Houeta/label-flow/internal/bot"
	"github.com/Houeta/label-flow/internal/config"
	"github.com/Houeta/label-flow/internal/parser"
	"github.com/Houeta/label-flow/internal/repository/sqlite"
	"github.com/Houeta/label-flow/internal/services/checker"
	"github.com/spf13/cobra"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

var rootCmd = &cobra.Command{
	Use:   "label-flow",
	Short: "Price list parser, discount and comparison tool",
	Long: `label-flow turns pasted price lists into products for price labels.

Without a subcommand it runs the Telegram bot configured through LF_*
environment variables. The subcommands work on local files or stdin.`,
	SilenceUsage: true,
	RunE:         runBot,
}

func main() {
	rootCmd.AddCommand(newParseCmd(), newDiffCmd(), newDiscountCmd(), newExportCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// runBot starts the bot and blocks until an interrupt signal is received.
func runBot(cmd *cobra.Command, _ []string) error {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer repo.Close()

	svc := bot.Services{
		Checker:  checker.NewChecker(logger, repo),
		Settings: repo,
	}
	if cfg.URL != "" {
		svc.Fetcher = parser.NewParser(logger, cfg.URL)
	}

	labelBot, err := bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout, svc)
	if err != nil {
		return fmt.Errorf("failed to init bot: %w", err)
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the bot in a goroutine to allow main to listen for signals.
	go labelBot.Start()

	<-ctx.Done()

	logger.InfoContext(context.Background(), "Shutdown signal received. Stopping application...")

	labelBot.Stop()

	logger.InfoContext(context.Background(), "Application stopped gracefully.")

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelWarn,
			ReplaceAttr: dropTime,
		}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelError,
			ReplaceAttr: dropTime,
		}))

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
