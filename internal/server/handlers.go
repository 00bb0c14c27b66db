// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/phuslu/log"

	"github.com/pdiddy/techaware/internal/ingest"
	"github.com/pdiddy/techaware/internal/papers"
)

// listParams are the query parameters of the paper list endpoint.
type listParams struct {
	Search   string
	Tags     string
	Category string
	Since    string `validate:"omitempty,datetime=2006-01-02"`
	Sort     string `validate:"omitempty,oneof=recent relevant score"`
	Page     int    `validate:"gte=1"`
	Limit    int    `validate:"gte=1,lte=100"`
}

func (s *Server) handleListPapers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := listParams{
		Search:   q.Get("search"),
		Tags:     q.Get("tags"),
		Category: q.Get("category"),
		Since:    q.Get("since"),
		Sort:     q.Get("sort"),
	}

	var err error
	if params.Page, err = intParam(q.Get("page"), 1); err != nil {
		writeError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	if params.Limit, err = intParam(q.Get("limit"), papers.DefaultLimit); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := s.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	// Trailing commas and stray spaces ("tags=LLM,") would otherwise
	// turn into empty tag filters that match nothing.
	var tags []string
	for _, tag := range strings.Split(params.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	result := s.store.Retrieve(papers.QueryOptions{
		Search:   params.Search,
		Tags:     tags,
		Category: params.Category,
		Since:    params.Since,
		Sort:     params.Sort,
		Page:     params.Page,
		Limit:    params.Limit,
	})
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPaper(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	paper, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, papers.ErrNotFound) {
			writeError(w, http.StatusNotFound, "paper not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, paper)
}

func (s *Server) handleDailyTop(w http.ResponseWriter, r *http.Request) {
	n := 3
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 10 {
			writeError(w, http.StatusBadRequest, "n must be an integer between 1 and 10")
			return
		}
		n = parsed
	}
	writeJSON(w, http.StatusOK, s.store.Top(n))
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.AllTags())
}

func (s *Server) handleIngestRun(w http.ResponseWriter, r *http.Request) {
	if s.runner == nil {
		writeError(w, http.StatusServiceUnavailable, "ingestion is not configured on this server")
		return
	}

	q := r.URL.Query()
	opts := ingest.Options{}
	if raw := q.Get("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "max_results must be an integer between 1 and 100")
			return
		}
		opts.MaxResults = parsed
	}
	if raw := q.Get("days_back"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 30 {
			writeError(w, http.StatusBadRequest, "days_back must be an integer between 1 and 30")
			return
		}
		opts.DaysBack = parsed
	}
	if raw := q.Get("categories"); raw != "" {
		opts.Categories = strings.Split(raw, ",")
	}

	result, err := s.runner.Run(r.Context(), opts, io.Discard)
	if err != nil {
		log.Error().Err(err).Msg("ingestion run failed")
		writeError(w, http.StatusInternalServerError, "ingestion failed: "+err.Error())
		return
	}

	log.Info().Int("new", result.New).Int("total", result.Total).Msg("ingestion run finished")
	writeJSON(w, http.StatusOK, ingestResponse{Message: "Papers ingested successfully", Result: result})
}

// ingestResponse adds the API-level message to the pipeline result.
type ingestResponse struct {
	Message string `json:"message"`
	ingest.Result
}

func (s *Server) handleIngestStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Status())
}

func (s *Server) handleSubscriberCount(w http.ResponseWriter, r *http.Request) {
	count := 0
	if s.subs != nil {
		count = s.subs.Count()
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) handleTelegramHealth(w http.ResponseWriter, r *http.Request) {
	status := "not_configured"
	if s.botReady {
		status = "ready"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"configured": s.botReady,
		"status":     status,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "unknown endpoint: "+r.URL.Path)
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
