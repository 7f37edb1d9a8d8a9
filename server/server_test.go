package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ReminisceHackathon/Reminisce/brain"
	"github.com/ReminisceHackathon/Reminisce/llm"
	"github.com/ReminisceHackathon/Reminisce/memory"
	"github.com/ReminisceHackathon/Reminisce/memory/embedder/mock"
	"github.com/ReminisceHackathon/Reminisce/memory/store/chromem"
	"github.com/ReminisceHackathon/Reminisce/server"
)

const testDims = 384

type stubGenerator struct {
	reply string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.reply, nil
}

func newTestServer(t *testing.T, reply string) *server.Server {
	t.Helper()

	backend, err := chromem.New()
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}
	store, err := memory.New(backend, mock.New(testDims), &memory.Config{
		RelevanceThreshold: 0.7,
		TopK:               5,
		VectorDimension:    testDims,
	})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	s, err := server.New(server.Config{
		Brain: brain.New(&stubGenerator{reply: reply}, store, nil),
	})
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return s
}

func TestNew_RequiresBrain(t *testing.T) {
	if _, err := server.New(server.Config{}); err == nil {
		t.Fatal("Expected error for missing brain")
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "ok")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHealthFull(t *testing.T) {
	s := newTestServer(t, "ok")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/full", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Services["brain"] != "ok" {
		t.Errorf("Expected brain ok, got %q", body.Services["brain"])
	}
	if body.Services["llm"] != "ok" {
		t.Errorf("Expected llm ok, got %q", body.Services["llm"])
	}
	if !strings.HasPrefix(body.Services["memory"], "ok") {
		t.Errorf("Expected memory ok, got %q", body.Services["memory"])
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	return conn
}

func TestWebSocketChat(t *testing.T) {
	s := newTestServer(t, "Jazz sounds wonderful!")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	err := conn.WriteJSON(map[string]any{
		"user_id":       "u1",
		"message":       "I love jazz music",
		"extract_facts": false,
	})
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}

	var resp struct {
		Response string `json:"response"`
		UserID   string `json:"user_id"`
		Error    string `json:"error"`
	}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("Unexpected error: %q", resp.Error)
	}
	if resp.Response != "Jazz sounds wonderful!" {
		t.Errorf("Unexpected response: %q", resp.Response)
	}
	if resp.UserID != "u1" {
		t.Errorf("Expected user_id echoed back, got %q", resp.UserID)
	}
}

func TestWebSocketChat_Validation(t *testing.T) {
	s := newTestServer(t, "hello")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	cases := []map[string]any{
		{"message": "no user"},
		{"user_id": "u1"},
	}
	for _, payload := range cases {
		if err := conn.WriteJSON(payload); err != nil {
			t.Fatalf("Failed to send request: %v", err)
		}

		var resp struct {
			Error string `json:"error"`
		}
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("Failed to read response: %v", err)
		}
		if resp.Error == "" {
			t.Errorf("Expected validation error for %v", payload)
		}
	}
}
