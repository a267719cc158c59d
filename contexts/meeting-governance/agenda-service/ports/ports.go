package ports

import (
	"context"
	"time"

	"agora/contexts/meeting-governance/agenda-service/domain/entities"
)

// MeetingProjection is the read-only slice of meeting state this service
// needs for referential checks; meeting-service owns the full record.
type MeetingProjection struct {
	MeetingID   int64
	CommitteeID int64
	Status      string
}

type AgendaRepository interface {
	InsertItem(ctx context.Context, item entities.AgendaItem) (entities.AgendaItem, error)
	GetItem(ctx context.Context, itemID int64) (entities.AgendaItem, error)
	ListItemsByMeeting(ctx context.Context, meetingID int64) ([]entities.AgendaItem, error)
	UpdateItemStatus(ctx context.Context, itemID int64, status entities.ItemStatus, updatedAt time.Time) (entities.AgendaItem, error)
	ReassignOrder(ctx context.Context, meetingID int64, orderedItemIDs []int64, updatedAt time.Time) ([]entities.AgendaItem, error)
	GetMeeting(ctx context.Context, meetingID int64) (MeetingProjection, error)
}

type CommentRepository interface {
	InsertComment(ctx context.Context, comment entities.AgendaComment) (entities.AgendaComment, error)
	ListCommentsByItem(ctx context.Context, itemID int64) ([]entities.AgendaComment, error)
}

type Clock interface {
	Now() time.Time
}
