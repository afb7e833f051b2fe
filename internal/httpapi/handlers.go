package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"speller/internal/spell"
)

type checkResponse struct {
	Word        string             `json:"word"`
	Known       bool               `json:"known"`
	Correction  string             `json:"correction,omitempty"`
	Suggestions []spell.Suggestion `json:"suggestions,omitempty"`
}

type statsResponse struct {
	UniqueWords       int      `json:"unique_words"`
	TotalWords        int64    `json:"total_words"`
	LongestWordLength int      `json:"longest_word_length"`
	EditDistance      int      `json:"edit_distance"`
	Languages         []string `json:"languages,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	s.mu.RLock()
	result := s.checker.Check(req.Text)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	resp := checkResponse{Word: word}
	resp.Known = !s.corrector.Known([]string{word}).IsEmpty()
	if !resp.Known {
		if best, ok := s.corrector.Correction(word); ok && best != word {
			resp.Correction = best
			resp.Suggestions = s.corrector.Suggestions(word)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddCustomWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	word := strings.TrimSpace(req.Word)

	if s.users != nil {
		if err := s.users.Add(r.Context(), word); err != nil {
			s.log.Error().Err(err).Str("word", word).Msg("user dictionary add failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	s.mu.Lock()
	err := s.corrector.WordFrequency().Add(word, userWordCount)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveCustomWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	if s.users != nil {
		if err := s.users.Remove(r.Context(), word); err != nil {
			s.log.Error().Err(err).Str("word", word).Msg("user dictionary remove failed")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	s.mu.Lock()
	s.corrector.WordFrequency().Remove(word)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	wf := s.corrector.WordFrequency()
	resp := statsResponse{
		UniqueWords:       wf.UniqueWords(),
		TotalWords:        wf.Total(),
		LongestWordLength: wf.LongestWordLength(),
		EditDistance:      s.corrector.Distance(),
		Languages:         s.languages,
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
