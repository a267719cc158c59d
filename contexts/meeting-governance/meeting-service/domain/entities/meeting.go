package entities

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "scheduled"
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusCancelled  MeetingStatus = "cancelled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition reports whether the lifecycle permits moving to next.
// Completed and cancelled are terminal.
func (s MeetingStatus) CanTransition(next MeetingStatus) bool {
	switch s {
	case MeetingStatusScheduled:
		return next == MeetingStatusInProgress || next == MeetingStatusCancelled
	case MeetingStatusInProgress:
		return next == MeetingStatusCompleted || next == MeetingStatusCancelled
	default:
		return false
	}
}

type Committee struct {
	CommitteeID int64
	Name        string
	Description string
	CreatedAt   time.Time
}

type Meeting struct {
	MeetingID   int64
	CommitteeID int64
	Title       string
	Description string
	Location    string
	ScheduledAt *time.Time
	Status      MeetingStatus
	CreatedBy   int64
	CreatedAt   time.Time
}
