package ports

import (
	"context"
	"time"

	"agora/contexts/meeting-governance/voting-service/domain/entities"
	"agora/internal/shared/events"
	"agora/internal/shared/outbox"
)

// MeetingProjection is the minimal meeting view the voting side needs.
type MeetingProjection struct {
	MeetingID int64
	Status    string
}

// AgendaItemProjection is the minimal agenda item view used to validate
// result writes.
type AgendaItemProjection struct {
	ItemID    int64
	MeetingID int64
}

type BallotRepository interface {
	// UpsertBallot inserts the ballot or, when the voter already cast one for
	// the meeting, overwrites the stored option and refreshes updated_at.
	UpsertBallot(ctx context.Context, ballot entities.Ballot) (entities.Ballot, error)
	ListBallotsByMeeting(ctx context.Context, meetingID int64) ([]entities.Ballot, error)
	GetMeeting(ctx context.Context, meetingID int64) (MeetingProjection, error)
}

type ResultRepository interface {
	// UpsertResult writes the single authoritative row for the agenda item,
	// replacing any prior result and resetting voted_at.
	UpsertResult(ctx context.Context, result entities.VoteResult) (entities.VoteResult, error)
	GetResultByItem(ctx context.Context, agendaItemID int64) (entities.VoteResult, error)
	GetAgendaItem(ctx context.Context, agendaItemID int64) (AgendaItemProjection, error)
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, message outbox.Message) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID int64, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelope events.Envelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}
