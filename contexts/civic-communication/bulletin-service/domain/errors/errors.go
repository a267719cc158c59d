package errors

import "errors"

var (
	ErrInvalidAnnouncementInput = errors.New("announcement requires a non-empty title and content")
	ErrInvalidTaskInput         = errors.New("task requires a non-empty title and a known status")
	ErrInvalidStatusTransition  = errors.New("task status transition not allowed")
	ErrTaskNotFound             = errors.New("task not found")
	ErrAssigneeNotFound         = errors.New("assignee not found")
)
