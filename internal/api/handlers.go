package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/game"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

// Stable error codes. Internal faults never leak details past these.
const (
	codeBadRequest       = "bad_request"
	codeNotFound         = "not_found"
	codeSessionCompleted = "session_completed"
	codeInternal         = "internal_error"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// advanceRequest is one turn. A nil state starts a fresh session for
// the given mastery; question_id and answer report the previous turn.
type advanceRequest struct {
	State      *game.State `json:"state,omitempty"`
	Mastery    string      `json:"mastery,omitempty"`
	Mode       game.Mode   `json:"mode,omitempty"`
	QuestionID string      `json:"question_id,omitempty"`
	Answer     string      `json:"answer,omitempty"`
}

type hintRequest struct {
	QuestionID string `json:"question_id"`
	Persona    string `json:"persona,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMasteries(w http.ResponseWriter, r *http.Request) {
	masteries, err := s.repo.Masteries(r.Context())
	if err != nil {
		log.Printf("api: list masteries: %v", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "an unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"masteries": masteries})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed request body")
		return
	}

	var state game.State
	switch {
	case req.State != nil:
		state = *req.State
	case req.Mastery != "":
		mode := req.Mode
		if mode == "" {
			mode = game.ModeStory
		}
		state = game.NewState(req.Mastery, mode)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "either state or mastery is required")
		return
	}

	result, err := s.engine.Advance(r.Context(), state, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrSessionCompleted):
			writeError(w, http.StatusConflict, codeSessionCompleted, "session already completed")
		case errors.Is(err, question.ErrNotFound):
			writeError(w, http.StatusNotFound, codeNotFound, "question not found")
		default:
			log.Printf("api: advance: %v", err)
			writeError(w, http.StatusInternalServerError, codeInternal, "an unexpected error occurred")
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "question_id is required")
		return
	}
	if req.Persona == "" {
		req.Persona = "Alex Chen"
	}

	hint, err := s.engine.Hint(r.Context(), req.QuestionID, req.Persona)
	if err != nil {
		if errors.Is(err, question.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, "question not found")
			return
		}
		log.Printf("api: hint: %v", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "an unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"hint": hint})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	writeJSON(w, status, body)
}
