package errors

import "errors"

var (
	ErrInvalidBallotInput = errors.New("ballot requires meeting, voter and a non-empty option")
	ErrInvalidResultInput = errors.New("vote result requires an agenda item, non-negative counts and a known outcome")
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrAgendaItemNotFound = errors.New("agenda item not found")
	ErrVoterNotFound      = errors.New("voter not found")
	ErrResultNotFound     = errors.New("vote result not found")
	ErrConflict           = errors.New("vote write conflicted with a concurrent update")
)
