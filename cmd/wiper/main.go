package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/qepting91/reddit-wiper/internal/collector"
	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/logging"
	"github.com/qepting91/reddit-wiper/internal/pace"
	"github.com/qepting91/reddit-wiper/internal/storage"
	"github.com/qepting91/reddit-wiper/internal/wipe"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("Wipe failed", logging.TagKey, logging.Error, "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "reddit-wiper",
		Short:         "Delete every comment on a Reddit account using its browser session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFile)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	return cmd
}

func run(ctx context.Context, envFile string) error {
	// 1. Setup
	godotenv.Load(envFile)
	logger := logging.New(os.Getenv("LOG_FORMAT"), os.Stdout)
	slog.SetDefault(logger)

	logging.Log(ctx, logger, logging.Start, "Starting Reddit comment wipe")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Session and deleter
	rnd := pace.NewRandom(cfg.Seed)
	session := collector.NewSession(cfg, rnd, logger)
	deleter, err := collector.NewDeleter(cfg, session, logger)
	if err != nil {
		return err
	}
	feed := collector.NewFeed(session, cfg, pace.Sleep, logger)

	var opts []wipe.Option
	if cfg.JournalPath != "" {
		journal, err := storage.OpenJournal(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer journal.Close()
		opts = append(opts, wipe.WithJournal(journal))
	}

	// 3. Wipe
	res, err := wipe.New(feed, deleter, cfg, rnd, logger, opts...).Run(ctx)
	if err != nil {
		return err
	}
	logging.Log(ctx, logger, logging.Summary, "TOTAL COMMENTS DELETED",
		"deleted", res.Deleted, "errors", res.Errors, "rounds", res.Rounds, "state", res.State)
	return nil
}
