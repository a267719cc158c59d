package errors

import "errors"

var (
	ErrInvalidCommitteeInput   = errors.New("committee requires a non-empty name")
	ErrInvalidMeetingInput     = errors.New("meeting requires a committee and a non-empty title")
	ErrInvalidStatusTransition = errors.New("meeting status transition not allowed")
	ErrCommitteeNotFound       = errors.New("committee not found")
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrConflict                = errors.New("meeting write conflicted with a concurrent update")
)
