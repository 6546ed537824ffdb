package httpapi

import (
	"net/http"

	applog "github.com/prabhatravib/infflow-calendar-sub000/internal/log"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/input"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

// Server is the HTTP adapter over the event and echo use cases. It owns
// routing and request/response translation only; all behavior lives behind
// the input ports.
type Server struct {
	events input.EventUseCase
	echo   input.EchoUseCase
	t      output.T

	defaultCalendarID string
	defaultUserID     string

	mux *http.ServeMux
}

func NewServer(events input.EventUseCase, echo input.EchoUseCase, t output.T, defaultCalendarID, defaultUserID string) *Server {
	s := &Server{
		events:            events,
		echo:              echo,
		t:                 t,
		defaultCalendarID: defaultCalendarID,
		defaultUserID:     defaultUserID,
		mux:               http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler, wrapped with CORS.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/events", s.handleListEvents)
	s.mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	s.mux.HandleFunc("DELETE /api/events", s.handleClearEvents)
	s.mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("PATCH /api/events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)

	s.mux.HandleFunc("POST /api/events/{id}/echo", s.handleGenerateEcho)
	s.mux.HandleFunc("POST /api/events/{id}/echo/reset", s.handleResetEcho)

	s.mux.HandleFunc("GET /api/ics/{user}", s.handleICSExport)
	s.mux.HandleFunc("GET /api/seed", s.handleSeed)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	applog.Info("starting HTTP server", "listen", "http://"+addr)
	return http.ListenAndServe(addr, s.Handler())
}
