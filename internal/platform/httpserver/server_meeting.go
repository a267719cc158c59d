package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	meetingerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
	meetinghttp "agora/contexts/meeting-governance/meeting-service/transport/http"
)

func writeMeetingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, meetinghttp.ErrorResponse{Code: code, Message: message})
}

func writeMeetingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, meetingerrors.ErrCommitteeNotFound):
		writeMeetingError(w, http.StatusNotFound, "committee_not_found", err.Error())
	case errors.Is(err, meetingerrors.ErrMeetingNotFound):
		writeMeetingError(w, http.StatusNotFound, "meeting_not_found", err.Error())
	case errors.Is(err, meetingerrors.ErrInvalidStatusTransition):
		writeMeetingError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, meetingerrors.ErrConflict):
		writeMeetingError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, meetingerrors.ErrInvalidCommitteeInput),
		errors.Is(err, meetingerrors.ErrInvalidMeetingInput):
		writeMeetingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeMeetingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateCommittee(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeMeetingError)
	if !ok {
		return
	}
	var req meetinghttp.CreateCommitteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMeetingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.meetings.Handler.CreateCommitteeHandler(r.Context(), actorID, req)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCommittees(w http.ResponseWriter, r *http.Request) {
	resp, err := s.meetings.Handler.ListCommitteesHandler(r.Context())
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCommittee(w http.ResponseWriter, r *http.Request) {
	committeeID := pathID(w, r, "committee_id", writeMeetingError)
	if committeeID == 0 {
		return
	}
	resp, err := s.meetings.Handler.GetCommitteeHandler(r.Context(), committeeID)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCommitteeMeetings(w http.ResponseWriter, r *http.Request) {
	committeeID := pathID(w, r, "committee_id", writeMeetingError)
	if committeeID == 0 {
		return
	}
	resp, err := s.meetings.Handler.ListCommitteeMeetingsHandler(r.Context(), committeeID)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateMeeting(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeMeetingError)
	if !ok {
		return
	}
	var req meetinghttp.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMeetingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.meetings.Handler.CreateMeetingHandler(r.Context(), actorID, req)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.meetings.Handler.ListMeetingsHandler(r.Context())
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMeeting(w http.ResponseWriter, r *http.Request) {
	meetingID := pathID(w, r, "meeting_id", writeMeetingError)
	if meetingID == 0 {
		return
	}
	resp, err := s.meetings.Handler.GetMeetingHandler(r.Context(), meetingID)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateMeetingStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeMeetingError)
	if !ok {
		return
	}
	meetingID := pathID(w, r, "meeting_id", writeMeetingError)
	if meetingID == 0 {
		return
	}
	var req meetinghttp.UpdateMeetingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMeetingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.meetings.Handler.UpdateMeetingStatusHandler(r.Context(), actorID, meetingID, req)
	if err != nil {
		writeMeetingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
