// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import "net/http"

// routes registers every API endpoint. Method and wildcard matching is
// left to the ServeMux; handlers only parse and respond.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Papers (read API)
	mux.HandleFunc("GET /api/papers", s.handleListPapers)
	mux.HandleFunc("GET /api/papers/daily/top", s.handleDailyTop)
	mux.HandleFunc("GET /api/papers/{id}", s.handleGetPaper)
	mux.HandleFunc("GET /api/tags", s.handleListTags)

	// Ingestion
	mux.HandleFunc("POST /api/ingest/run", s.handleIngestRun)
	mux.HandleFunc("GET /api/ingest/status", s.handleIngestStatus)

	// Telegram
	mux.HandleFunc("GET /api/telegram/subscribers/count", s.handleSubscriberCount)
	mux.HandleFunc("GET /api/telegram/health", s.handleTelegramHealth)

	// System
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/version", s.handleVersion)

	// Unknown API paths get a JSON 404 instead of the default plain text.
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}
