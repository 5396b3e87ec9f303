package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ftkrshna/channelpost/internal/config"
	"github.com/ftkrshna/channelpost/internal/directory"
	"github.com/ftkrshna/channelpost/internal/dispatch"
	"github.com/ftkrshna/channelpost/internal/engine"
	"github.com/ftkrshna/channelpost/internal/markup"
	"github.com/ftkrshna/channelpost/internal/store"
	"github.com/ftkrshna/channelpost/internal/telegram"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}
			if token != "" {
				cfg.Telegram.Token = token
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			if err := paths.EnsureDirs(); err != nil {
				return fmt.Errorf("creating data directories: %w", err)
			}

			dbPath := cfg.Store.Path
			if dbPath == "" {
				dbPath = filepath.Join(paths.Data, "channelpost.db")
			}
			db, err := store.Open(dbPath, log)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			api, err := telegram.Connect(cfg.Telegram.Token)
			if err != nil {
				return err
			}
			transport := telegram.NewTransport(api, log)

			channels := store.NewChannelStore(db)
			buttons := store.NewButtonStore(db)
			dir := directory.New(channels, transport, cfg.Telegram.Channels, log)
			dispatcher := dispatch.New(transport, log)

			eng := engine.New(
				engine.NewSessions(),
				transport,
				dispatcher,
				dir,
				channels,
				buttons,
				markup.NewParser(log),
				cfg.Telegram.Admins,
				log,
			)

			log.Info().
				Str("db", dbPath).
				Int("admins", len(cfg.Telegram.Admins)).
				Int("static_channels", len(cfg.Telegram.Channels)).
				Msg("channelpost configured")

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return telegram.NewBot(api, eng, log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "override the bot token from config")

	return cmd
}
