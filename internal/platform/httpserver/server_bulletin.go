package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	bulletinerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
	bulletinhttp "agora/contexts/civic-communication/bulletin-service/transport/http"
)

func writeBulletinError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bulletinhttp.ErrorResponse{Code: code, Message: message})
}

func writeBulletinDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bulletinerrors.ErrTaskNotFound):
		writeBulletinError(w, http.StatusNotFound, "task_not_found", err.Error())
	case errors.Is(err, bulletinerrors.ErrAssigneeNotFound):
		writeBulletinError(w, http.StatusNotFound, "assignee_not_found", err.Error())
	case errors.Is(err, bulletinerrors.ErrInvalidStatusTransition):
		writeBulletinError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, bulletinerrors.ErrInvalidAnnouncementInput),
		errors.Is(err, bulletinerrors.ErrInvalidTaskInput):
		writeBulletinError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBulletinError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handlePublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeBulletinError)
	if !ok {
		return
	}
	var req bulletinhttp.PublishAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBulletinError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.bulletin.Handler.PublishAnnouncementHandler(r.Context(), actorID, req)
	if err != nil {
		writeBulletinDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	resp, err := s.bulletin.Handler.ListAnnouncementsHandler(r.Context())
	if err != nil {
		writeBulletinDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeBulletinError)
	if !ok {
		return
	}
	var req bulletinhttp.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBulletinError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.bulletin.Handler.CreateTaskHandler(r.Context(), actorID, req)
	if err != nil {
		writeBulletinDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.bulletin.Handler.ListTasksHandler(r.Context())
	if err != nil {
		writeBulletinDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeBulletinError)
	if !ok {
		return
	}
	taskID := pathID(w, r, "task_id", writeBulletinError)
	if taskID == 0 {
		return
	}
	var req bulletinhttp.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBulletinError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.bulletin.Handler.UpdateTaskStatusHandler(r.Context(), actorID, taskID, req)
	if err != nil {
		writeBulletinDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
