package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	bulletinservice "agora/contexts/civic-communication/bulletin-service"
	agendaservice "agora/contexts/meeting-governance/agenda-service"
	meetingservice "agora/contexts/meeting-governance/meeting-service"
	votingservice "agora/contexts/meeting-governance/voting-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "agora/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	agenda   agendaservice.Module
	voting   votingservice.Module
	meetings meetingservice.Module
	bulletin bulletinservice.Module
}

func New(
	agenda agendaservice.Module,
	voting votingservice.Module,
	meetings meetingservice.Module,
	bulletin bulletinservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		agenda:   agenda,
		voting:   voting,
		meetings: meetings,
		bulletin: bulletin,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /committees", s.handleCreateCommittee)
	s.mux.HandleFunc("GET /committees", s.handleListCommittees)
	s.mux.HandleFunc("GET /committees/{committee_id}", s.handleGetCommittee)
	s.mux.HandleFunc("GET /committees/{committee_id}/meetings", s.handleListCommitteeMeetings)

	s.mux.HandleFunc("POST /meetings", s.handleCreateMeeting)
	s.mux.HandleFunc("GET /meetings", s.handleListMeetings)
	s.mux.HandleFunc("GET /meetings/{meeting_id}", s.handleGetMeeting)
	s.mux.HandleFunc("PUT /meetings/{meeting_id}/status", s.handleUpdateMeetingStatus)

	s.mux.HandleFunc("POST /meetings/{meeting_id}/agenda", s.handleCreateAgendaItem)
	s.mux.HandleFunc("GET /meetings/{meeting_id}/agenda", s.handleListMeetingAgenda)
	s.mux.HandleFunc("PUT /meetings/{meeting_id}/agenda/order", s.handleReorderAgenda)
	s.mux.HandleFunc("PUT /agenda-items/{item_id}/status", s.handleUpdateAgendaItemStatus)
	s.mux.HandleFunc("POST /agenda-items/{item_id}/comments", s.handleAddAgendaComment)
	s.mux.HandleFunc("GET /agenda-items/{item_id}/comments", s.handleListAgendaComments)

	s.mux.HandleFunc("POST /meetings/{meeting_id}/vote", s.handleCastBallot)
	s.mux.HandleFunc("GET /meetings/{meeting_id}/votes", s.handleListMeetingBallots)
	s.mux.HandleFunc("GET /meetings/{meeting_id}/votes/tally", s.handleMeetingTally)
	s.mux.HandleFunc("POST /agenda-items/{item_id}/result", s.handleRecordVoteResult)
	s.mux.HandleFunc("GET /agenda-items/{item_id}/result", s.handleGetVoteResult)

	s.mux.HandleFunc("POST /announcements", s.handlePublishAnnouncement)
	s.mux.HandleFunc("GET /announcements", s.handleListAnnouncements)
	s.mux.HandleFunc("POST /tasks", s.handleCreateTask)
	s.mux.HandleFunc("GET /tasks", s.handleListTasks)
	s.mux.HandleFunc("PUT /tasks/{task_id}/status", s.handleUpdateTaskStatus)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// pathID parses the named path segment as a positive integer id. A zero
// return means the response has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string, write func(http.ResponseWriter, int, string, string)) int64 {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		write(w, http.StatusBadRequest, "invalid_id", name+" must be a positive integer")
		return 0
	}
	return id
}

// callerID resolves the acting user from the X-User-Id header. Every mutating
// endpoint threads this value down explicitly instead of assuming a fixed
// identity.
func callerID(w http.ResponseWriter, r *http.Request, write func(http.ResponseWriter, int, string, string)) (int64, bool) {
	raw := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if raw == "" {
		write(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		write(w, http.StatusBadRequest, "invalid_user", "X-User-Id must be a positive integer")
		return 0, false
	}
	return id, true
}
