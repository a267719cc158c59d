package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	votingerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	votinghttp "agora/contexts/meeting-governance/voting-service/transport/http"
)

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{Code: code, Message: message})
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votingerrors.ErrMeetingNotFound):
		writeVotingError(w, http.StatusNotFound, "meeting_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrAgendaItemNotFound):
		writeVotingError(w, http.StatusNotFound, "agenda_item_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrVoterNotFound):
		writeVotingError(w, http.StatusNotFound, "voter_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrResultNotFound):
		writeVotingError(w, http.StatusNotFound, "result_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrConflict):
		writeVotingError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, votingerrors.ErrInvalidBallotInput),
		errors.Is(err, votingerrors.ErrInvalidResultInput):
		writeVotingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCastBallot(w http.ResponseWriter, r *http.Request) {
	voterID, ok := callerID(w, r, writeVotingError)
	if !ok {
		return
	}
	meetingID := pathID(w, r, "meeting_id", writeVotingError)
	if meetingID == 0 {
		return
	}
	var req votinghttp.CastBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.voting.Handler.CastBallotHandler(r.Context(), voterID, meetingID, req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMeetingBallots(w http.ResponseWriter, r *http.Request) {
	meetingID := pathID(w, r, "meeting_id", writeVotingError)
	if meetingID == 0 {
		return
	}
	resp, err := s.voting.Handler.ListMeetingBallotsHandler(r.Context(), meetingID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMeetingTally(w http.ResponseWriter, r *http.Request) {
	meetingID := pathID(w, r, "meeting_id", writeVotingError)
	if meetingID == 0 {
		return
	}
	resp, err := s.voting.Handler.MeetingTallyHandler(r.Context(), meetingID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordVoteResult(w http.ResponseWriter, r *http.Request) {
	actorID, ok := callerID(w, r, writeVotingError)
	if !ok {
		return
	}
	itemID := pathID(w, r, "item_id", writeVotingError)
	if itemID == 0 {
		return
	}
	var req votinghttp.RecordVoteResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.voting.Handler.RecordVoteResultHandler(r.Context(), actorID, itemID, req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVoteResult(w http.ResponseWriter, r *http.Request) {
	itemID := pathID(w, r, "item_id", writeVotingError)
	if itemID == 0 {
		return
	}
	resp, err := s.voting.Handler.GetVoteResultHandler(r.Context(), itemID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
