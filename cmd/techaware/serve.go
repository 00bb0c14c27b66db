// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/techaware/internal/bot"
	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/internal/scheduler"
	"github.com/pdiddy/techaware/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server, Telegram bot, and digest scheduler",
	Long: `Serve starts the HTTP API over the paper collection. When a Telegram
bot token is configured it also starts the bot and schedules the daily digest
(09:00 UTC by default). When an Anthropic API key is configured the ingestion
endpoint can trigger pipeline runs; otherwise the server is read-only.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "bind address (default 0.0.0.0)")
	serveCmd.Flags().Int("port", 0, "listen port (default 8000)")
	serveCmd.Flags().Bool("no-bot", false, "disable the Telegram bot even when a token is configured")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ingestion is optional: without an API key the server is read-only.
	var (
		store  *papers.Store
		runner server.IngestRunner
	)
	if r, s, err := buildRunner(cmd); err == nil {
		runner = r
		store = s
	} else {
		log.Warn().Err(err).Msg("ingestion disabled")
		store = papers.NewStore(storeConfig())
	}
	store.Load(os.Stderr)

	subs := bot.NewSubscribers(storeConfig().DataDir)
	if err := subs.Load(); err != nil {
		return err
	}

	botCfg := botConfig()
	noBot, _ := cmd.Flags().GetBool("no-bot")
	botReady := false
	if botCfg.Token != "" && !noBot {
		b, err := bot.New(botCfg, subs)
		if err != nil {
			return err
		}
		botReady = true

		go func() {
			if err := b.Run(ctx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("telegram bot stopped")
			}
		}()

		sched, err := scheduler.New(store, b, botCfg)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
	} else {
		log.Info().Msg("telegram bot disabled")
	}

	srvCfg := serverConfig()
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		srvCfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		srvCfg.Port = port
	}

	srv := server.New(srvCfg, store, runner, subs, botReady, version)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
