// Package server exposes the brain over a thin WebSocket chat endpoint
// plus health routes. It is a caller of the core, not part of it:
// authentication and session storage belong to the surrounding backend.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ReminisceHackathon/Reminisce/brain"
	"github.com/ReminisceHackathon/Reminisce/core"
)

// Config configures the server.
type Config struct {
	// Brain handles all chat requests.
	Brain *brain.Brain
}

// Server serves chat over WebSocket at /ws and health probes at /health
// and /health/full.
type Server struct {
	brain    *brain.Brain
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// New creates a server.
func New(cfg Config) (*Server, error) {
	if cfg.Brain == nil {
		return nil, fmt.Errorf("Brain is required")
	}

	s := &Server{
		brain: cfg.Brain,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/health/full", s.handleHealthFull)
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("[SERVER] Listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// chatRequest is one inbound chat message. IncludeMemories and
// ExtractFacts default to true when omitted.
type chatRequest struct {
	UserID          string      `json:"user_id"`
	Message         string      `json:"message"`
	History         []core.Turn `json:"history,omitempty"`
	IncludeMemories *bool       `json:"include_memories,omitempty"`
	ExtractFacts    *bool       `json:"extract_facts,omitempty"`
}

type chatResponse struct {
	Response string `json:"response,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleWS runs the chat loop: one JSON request in, one JSON response
// out, until the client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SERVER] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[SERVER] Read failed: %v", err)
			}
			return
		}

		resp := s.chat(r, &req)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("[SERVER] Write failed: %v", err)
			return
		}
	}
}

func (s *Server) chat(r *http.Request, req *chatRequest) chatResponse {
	if req.UserID == "" {
		return chatResponse{Error: "user_id is required"}
	}
	if req.Message == "" {
		return chatResponse{Error: "message cannot be empty"}
	}

	brainReq := brain.NewRequest(req.UserID, req.Message, req.History)
	if req.IncludeMemories != nil {
		brainReq.IncludeMemories = *req.IncludeMemories
	}
	if req.ExtractFacts != nil {
		brainReq.ExtractFacts = *req.ExtractFacts
	}

	reply, err := s.brain.GenerateResponse(r.Context(), brainReq)
	if err != nil {
		log.Printf("[SERVER] Chat failed for user %s: %v", req.UserID, err)
		return chatResponse{Error: "failed to generate response"}
	}

	return chatResponse{Response: reply, UserID: req.UserID}
}

// handleHealth is the cheap liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHealthFull probes every dependency through the brain.
func (s *Server) handleHealthFull(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"services": s.brain.HealthCheck(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[SERVER] Encode failed: %v", err)
	}
}
