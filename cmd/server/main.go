package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"stemcheck/internal/config"
	"stemcheck/internal/corrector"
	"stemcheck/internal/customdict"
	"stemcheck/internal/engine"
	"stemcheck/internal/report"
)

func main() {
	path := flag.String("config", os.Getenv("STEMCHECK_CONFIG"), "config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("logger")
	}
	log.Logger = logger

	e, err := engine.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init error")
	}
	defer e.Close()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := http.ListenAndServe(cfg.HTTP.Addr, newMux(e)); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}

type checkResponse struct {
	Records []corrector.Record `json:"records"`
	report.Report
}

func newMux(e *engine.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/check", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text  string `json:"text"`
			Limit int    `json:"limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		recs, err := e.Check(req.Text, req.Limit)
		if err != nil {
			log.Error().Err(err).Msg("check")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		agg := report.NewAggregator()
		for _, rec := range recs {
			agg.Add(rec)
		}
		if recs == nil {
			recs = []corrector.Record{}
		}
		writeJSON(w, http.StatusOK, checkResponse{Records: recs, Report: agg.Report()})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		word, err := e.AddWord(r.Context(), req.Word)
		if err != nil {
			writeWordError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok", "word": word})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
			return
		}
		word, err := e.RemoveWord(r.Context(), word)
		if err != nil {
			writeWordError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "word": word})
	})

	return mux
}

func writeWordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customdict.ErrInvalidWord):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, engine.ErrNoCustomDict):
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("custom word")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
