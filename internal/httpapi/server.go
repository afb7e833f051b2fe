// Package httpapi exposes the spelling engine over HTTP.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"speller/internal/checker"
	"speller/internal/spell"
	"speller/internal/userdict"
)

// userWordCount pins user-added words above any corpus count so they
// win frequency ranking.
const userWordCount int64 = 1_000_000_000

// Server routes spelling queries to the engine and keeps the Redis
// user dictionary and the in-memory vocabulary in step. A single
// RWMutex serializes vocabulary mutations against in-flight queries.
type Server struct {
	log       zerolog.Logger
	corrector *spell.Corrector
	checker   *checker.Checker
	users     *userdict.Store
	languages []string

	mu   sync.RWMutex
	http *http.Server
}

// New assembles a Server around corrector. users may be nil; the
// custom-word endpoints then mutate the in-memory vocabulary only.
func New(log zerolog.Logger, corrector *spell.Corrector, users *userdict.Store, languages []string) *Server {
	return &Server{
		log:       log,
		corrector: corrector,
		checker:   checker.New(corrector),
		users:     users,
		languages: languages,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/correct", s.handleCorrect).Methods(http.MethodPost)
	api.HandleFunc("/check/{word}", s.handleCheckWord).Methods(http.MethodGet)
	api.HandleFunc("/custom-word", s.handleAddCustomWord).Methods(http.MethodPost)
	api.HandleFunc("/custom-word/{word}", s.handleRemoveCustomWord).Methods(http.MethodDelete)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	return r
}

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("listening")
	return s.http.ListenAndServe()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// LoadUserWords merges the Redis user dictionary into the vocabulary,
// pinning each word so user words outrank corpus words.
func (s *Server) LoadUserWords(ctx context.Context) error {
	if s.users == nil {
		return nil
	}
	words, err := s.users.Words(ctx)
	if err != nil {
		return fmt.Errorf("load user words: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	wf := s.corrector.WordFrequency()
	for _, word := range words {
		if err := wf.Add(word, userWordCount); err != nil {
			return fmt.Errorf("load user word %q: %w", word, err)
		}
	}
	s.log.Info().Int("words", len(words)).Msg("user dictionary loaded")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
