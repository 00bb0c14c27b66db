// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the read API and operational endpoints over
// HTTP for the frontend and the ingestion tooling.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phuslu/log"

	"github.com/pdiddy/techaware/internal/ingest"
	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

// IngestRunner triggers an ingestion pass. *ingest.Runner is the
// production implementation; tests supply a stub.
type IngestRunner interface {
	Run(ctx context.Context, opts ingest.Options, w io.Writer) (ingest.Result, error)
}

// SubscriberCounter reports the digest audience size. *bot.Subscribers
// is the production implementation.
type SubscriberCounter interface {
	Count() int
}

// Server wires the paper store and pipeline into an HTTP API.
type Server struct {
	cfg      types.ServerConfig
	store    *papers.Store
	runner   IngestRunner
	subs     SubscriberCounter
	botReady bool
	version  string
	validate *validator.Validate

	server *http.Server
}

// New builds the server. runner may be nil when the process runs
// read-only; the ingestion endpoint then reports 503. subs may be nil
// when the bot is not configured.
func New(cfg types.ServerConfig, store *papers.Store, runner IngestRunner, subs SubscriberCounter, botReady bool, version string) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		runner:   runner,
		subs:     subs,
		botReady: botReady,
		version:  version,
		validate: validator.New(),
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.withMiddleware(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("address", s.server.Addr).Msg("HTTP server starting")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
