package entities

import "time"

type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusDeferred   ItemStatus = "deferred"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted, ItemStatusDeferred:
		return true
	default:
		return false
	}
}

// CanTransition encodes the agenda item lifecycle: pending -> in_progress ->
// completed, with deferred as an alternate terminal reachable from pending or
// in_progress. Terminal states accept no further transitions.
func (s ItemStatus) CanTransition(to ItemStatus) bool {
	switch s {
	case ItemStatusPending:
		return to == ItemStatusInProgress || to == ItemStatusDeferred
	case ItemStatusInProgress:
		return to == ItemStatusCompleted || to == ItemStatusDeferred
	default:
		return false
	}
}

type AgendaItem struct {
	ItemID            int64
	MeetingID         int64
	OrderIndex        int
	Title             string
	Description       string
	Category          string
	Presenter         string
	EstimatedDuration int
	Status            ItemStatus
	IntroductionFile  string
	DecisionFile      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AgendaComment struct {
	CommentID int64
	ItemID    int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
