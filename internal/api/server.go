// Package api serves the observer surface: the embedded dashboard, a
// small read-only JSON API, and an SSE stream of simulation events.
// Observers only ever see published snapshots and events; the live game
// state belongs to the simulation goroutine.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/vendsim/internal/sim"
)

const (
	maxSSEConns    = 8
	sseCatchupSize = 50
)

// Server serves the dashboard and run state over HTTP.
type Server struct {
	Events  *sim.Broadcaster
	RunID   uuid.UUID
	Company string
	MaxDays int
	Port    int

	// Active SSE connection count (atomic).
	sseConns int32
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/emails", s.handleEmails)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/stream", s.handleStream)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, dashboardHTML)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"run_id":   s.RunID.String(),
		"company":  s.Company,
		"max_days": s.MaxDays,
	}
	if snap := s.Events.LatestState(); snap != nil {
		status["day"] = snap.Day
		status["balance"] = snap.Balance
	}
	writeJSON(w, status)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap := s.Events.LatestState()
	if snap == nil {
		http.Error(w, "no state published yet", http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleEmails(w http.ResponseWriter, r *http.Request) {
	snap := s.Events.LatestState()
	if snap == nil {
		writeJSON(w, []sim.EmailRecord{})
		return
	}
	writeJSON(w, snap.Emails)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Events.Recent(sseCatchupSize))
}

// handleStream provides an SSE endpoint for real-time event streaming
// with a bounded connection count.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	current := atomic.AddInt32(&s.sseConns, 1)
	if current > maxSSEConns {
		atomic.AddInt32(&s.sseConns, -1)
		http.Error(w, "too many SSE connections", http.StatusServiceUnavailable)
		return
	}
	defer atomic.AddInt32(&s.sseConns, -1)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	// Subscribe before replaying so no event falls in the gap.
	subID, ch := s.Events.Subscribe()
	defer s.Events.Unsubscribe(subID)

	for _, e := range s.Events.Recent(sseCatchupSize) {
		writeSSEEvent(w, e)
	}
	flusher.Flush()

	slog.Info("SSE client connected", "sub_id", subID)

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return
			}
			writeSSEEvent(w, e)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprintf(w, ": heartbeat\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			slog.Info("SSE client disconnected", "sub_id", subID)
			return
		}
	}
}

// writeSSEEvent writes a single event in SSE format. Events use the
// default message type so the dashboard handles them with one listener.
func writeSSEEvent(w http.ResponseWriter, e sim.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
