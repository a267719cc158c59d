package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	agendaerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	agendahttp "agora/contexts/meeting-governance/agenda-service/transport/http"
)

func writeAgendaError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, agendahttp.ErrorResponse{Code: code, Message: message})
}

func writeAgendaDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, agendaerrors.ErrMeetingNotFound):
		writeAgendaError(w, http.StatusNotFound, "meeting_not_found", err.Error())
	case errors.Is(err, agendaerrors.ErrAgendaItemNotFound):
		writeAgendaError(w, http.StatusNotFound, "agenda_item_not_found", err.Error())
	case errors.Is(err, agendaerrors.ErrAuthorNotFound):
		writeAgendaError(w, http.StatusNotFound, "author_not_found", err.Error())
	case errors.Is(err, agendaerrors.ErrInvalidStatusTransition):
		writeAgendaError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, agendaerrors.ErrConflict):
		writeAgendaError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, agendaerrors.ErrInvalidAgendaItemInput),
		errors.Is(err, agendaerrors.ErrInvalidCommentInput),
		errors.Is(err, agendaerrors.ErrInvalidReorder):
		writeAgendaError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAgendaError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateAgendaItem(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeAgendaError)
	if !ok {
		return
	}
	meetingID := pathID(w, r, "meeting_id", writeAgendaError)
	if meetingID == 0 {
		return
	}
	var req agendahttp.CreateAgendaItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAgendaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	req.MeetingID = meetingID
	resp, err := s.agenda.Handler.CreateItemHandler(r.Context(), actorID, req)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListMeetingAgenda(w http.ResponseWriter, r *http.Request) {
	meetingID := pathID(w, r, "meeting_id", writeAgendaError)
	if meetingID == 0 {
		return
	}
	resp, err := s.agenda.Handler.ListMeetingAgendaHandler(r.Context(), meetingID)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReorderAgenda(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeAgendaError)
	if !ok {
		return
	}
	meetingID := pathID(w, r, "meeting_id", writeAgendaError)
	if meetingID == 0 {
		return
	}
	var req agendahttp.ReorderAgendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAgendaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.agenda.Handler.ReorderAgendaHandler(r.Context(), actorID, meetingID, req)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAgendaItemStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeAgendaError)
	if !ok {
		return
	}
	itemID := pathID(w, r, "item_id", writeAgendaError)
	if itemID == 0 {
		return
	}
	var req agendahttp.UpdateItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAgendaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.agenda.Handler.UpdateItemStatusHandler(r.Context(), actorID, itemID, req)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddAgendaComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := callerID(w, r, writeAgendaError)
	if !ok {
		return
	}
	itemID := pathID(w, r, "item_id", writeAgendaError)
	if itemID == 0 {
		return
	}
	var req agendahttp.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAgendaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.agenda.Handler.AddCommentHandler(r.Context(), authorID, itemID, req)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAgendaComments(w http.ResponseWriter, r *http.Request) {
	itemID := pathID(w, r, "item_id", writeAgendaError)
	if itemID == 0 {
		return
	}
	resp, err := s.agenda.Handler.ListCommentsHandler(r.Context(), itemID)
	if err != nil {
		writeAgendaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
