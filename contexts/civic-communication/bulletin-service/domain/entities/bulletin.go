package entities

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

type Announcement struct {
	AnnouncementID int64
	Title          string
	Content        string
	Priority       Priority
	CreatedBy      int64
	CreatedAt      time.Time
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

func (s TaskStatus) CanTransition(next TaskStatus) bool {
	switch s {
	case TaskStatusPending:
		return next == TaskStatusInProgress || next == TaskStatusCompleted
	case TaskStatusInProgress:
		return next == TaskStatusCompleted
	default:
		return false
	}
}

type Task struct {
	TaskID      int64
	Title       string
	Description string
	AssignedTo  int64
	DueDate     *time.Time
	Status      TaskStatus
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
