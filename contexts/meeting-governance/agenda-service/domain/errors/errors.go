package errors

import "errors"

var (
	ErrInvalidAgendaItemInput  = errors.New("invalid agenda item input")
	ErrInvalidCommentInput     = errors.New("invalid agenda comment input")
	ErrInvalidReorder          = errors.New("invalid agenda reorder request")
	ErrInvalidStatusTransition = errors.New("invalid agenda item status transition")
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrAgendaItemNotFound      = errors.New("agenda item not found")
	ErrAuthorNotFound          = errors.New("comment author not found")
	ErrConflict                = errors.New("agenda item conflict")
)
