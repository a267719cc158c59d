package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "agora/contexts/meeting-governance/agenda-service/application"
	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

// CreateItemCommand is the write-model input for agenda item creation.
// ActorID is the authenticated caller; identity is always supplied by the
// boundary, never defaulted.
type CreateItemCommand struct {
	ActorID           int64
	MeetingID         int64
	OrderIndex        int
	Title             string
	Description       string
	Category          string
	Presenter         string
	EstimatedDuration int
	Status            entities.ItemStatus
	IntroductionFile  string
	DecisionFile      string
}

type UpdateItemStatusCommand struct {
	ActorID int64
	ItemID  int64
	Status  entities.ItemStatus
}

type ReorderCommand struct {
	ActorID   int64
	MeetingID int64
	ItemIDs   []int64
}

type AddCommentCommand struct {
	ItemID   int64
	AuthorID int64
	Body     string
}

// AgendaUseCase orchestrates agenda item writes: creation under an existing
// meeting, the status state machine, and atomic reordering.
type AgendaUseCase struct {
	Agenda   ports.AgendaRepository
	Comments ports.CommentRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// CreateItem inserts an agenda item under an existing meeting. A duplicate
// order_index within the meeting is accepted; Reorder is the operation that
// restores a strict ordering.
func (uc AgendaUseCase) CreateItem(ctx context.Context, cmd CreateItemCommand) (entities.AgendaItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.Title) == "" || cmd.MeetingID <= 0 || cmd.OrderIndex < 0 || cmd.ActorID <= 0 {
		logger.Warn("agenda item create validation failed",
			"event", "agenda_item_create_validation_failed",
			"module", "meeting-governance/agenda-service",
			"layer", "application",
			"meeting_id", cmd.MeetingID,
			"order_index", cmd.OrderIndex,
		)
		return entities.AgendaItem{}, domainerrors.ErrInvalidAgendaItemInput
	}
	status := cmd.Status
	if status == "" {
		status = entities.ItemStatusPending
	}
	if !status.Valid() {
		return entities.AgendaItem{}, domainerrors.ErrInvalidAgendaItemInput
	}

	if _, err := uc.Agenda.GetMeeting(ctx, cmd.MeetingID); err != nil {
		return entities.AgendaItem{}, err
	}

	now := uc.now()
	item, err := uc.Agenda.InsertItem(ctx, entities.AgendaItem{
		MeetingID:         cmd.MeetingID,
		OrderIndex:        cmd.OrderIndex,
		Title:             strings.TrimSpace(cmd.Title),
		Description:       strings.TrimSpace(cmd.Description),
		Category:          strings.TrimSpace(cmd.Category),
		Presenter:         strings.TrimSpace(cmd.Presenter),
		EstimatedDuration: cmd.EstimatedDuration,
		Status:            status,
		IntroductionFile:  strings.TrimSpace(cmd.IntroductionFile),
		DecisionFile:      strings.TrimSpace(cmd.DecisionFile),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return entities.AgendaItem{}, err
	}
	logger.Info("agenda item created",
		"event", "agenda_item_created",
		"module", "meeting-governance/agenda-service",
		"layer", "application",
		"item_id", item.ItemID,
		"meeting_id", item.MeetingID,
		"order_index", item.OrderIndex,
		"actor_id", cmd.ActorID,
	)
	return item, nil
}

// UpdateItemStatus applies the status state machine; illegal transitions are
// rejected rather than written through.
func (uc AgendaUseCase) UpdateItemStatus(ctx context.Context, cmd UpdateItemStatusCommand) (entities.AgendaItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.ItemID <= 0 || !cmd.Status.Valid() {
		return entities.AgendaItem{}, domainerrors.ErrInvalidAgendaItemInput
	}

	current, err := uc.Agenda.GetItem(ctx, cmd.ItemID)
	if err != nil {
		return entities.AgendaItem{}, err
	}
	if current.Status == cmd.Status {
		return current, nil
	}
	if !current.Status.CanTransition(cmd.Status) {
		logger.Warn("agenda item status transition rejected",
			"event", "agenda_item_status_rejected",
			"module", "meeting-governance/agenda-service",
			"layer", "application",
			"item_id", cmd.ItemID,
			"from", string(current.Status),
			"to", string(cmd.Status),
		)
		return entities.AgendaItem{}, domainerrors.ErrInvalidStatusTransition
	}

	item, err := uc.Agenda.UpdateItemStatus(ctx, cmd.ItemID, cmd.Status, uc.now())
	if err != nil {
		return entities.AgendaItem{}, err
	}
	logger.Info("agenda item status updated",
		"event", "agenda_item_status_updated",
		"module", "meeting-governance/agenda-service",
		"layer", "application",
		"item_id", item.ItemID,
		"status", string(item.Status),
	)
	return item, nil
}

// Reorder atomically reassigns contiguous order_index values 0..n-1 following
// the submitted id order. The submitted ids must be exactly the meeting's
// current item set.
func (uc AgendaUseCase) Reorder(ctx context.Context, cmd ReorderCommand) ([]entities.AgendaItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.MeetingID <= 0 || len(cmd.ItemIDs) == 0 {
		return nil, domainerrors.ErrInvalidReorder
	}

	current, err := uc.Agenda.ListItemsByMeeting(ctx, cmd.MeetingID)
	if err != nil {
		return nil, err
	}
	if len(current) != len(cmd.ItemIDs) {
		return nil, domainerrors.ErrInvalidReorder
	}
	known := make(map[int64]bool, len(current))
	for _, item := range current {
		known[item.ItemID] = true
	}
	seen := make(map[int64]bool, len(cmd.ItemIDs))
	for _, id := range cmd.ItemIDs {
		if !known[id] || seen[id] {
			return nil, domainerrors.ErrInvalidReorder
		}
		seen[id] = true
	}

	items, err := uc.Agenda.ReassignOrder(ctx, cmd.MeetingID, cmd.ItemIDs, uc.now())
	if err != nil {
		return nil, err
	}
	logger.Info("agenda reordered",
		"event", "agenda_reordered",
		"module", "meeting-governance/agenda-service",
		"layer", "application",
		"meeting_id", cmd.MeetingID,
		"item_count", len(items),
		"actor_id", cmd.ActorID,
	)
	return items, nil
}

// AddComment records a discussion comment under an agenda item.
func (uc AgendaUseCase) AddComment(ctx context.Context, cmd AddCommentCommand) (entities.AgendaComment, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.ItemID <= 0 || cmd.AuthorID <= 0 || strings.TrimSpace(cmd.Body) == "" {
		return entities.AgendaComment{}, domainerrors.ErrInvalidCommentInput
	}

	if _, err := uc.Agenda.GetItem(ctx, cmd.ItemID); err != nil {
		return entities.AgendaComment{}, err
	}

	now := uc.now()
	comment, err := uc.Comments.InsertComment(ctx, entities.AgendaComment{
		ItemID:    cmd.ItemID,
		AuthorID:  cmd.AuthorID,
		Body:      strings.TrimSpace(cmd.Body),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.AgendaComment{}, err
	}
	logger.Info("agenda comment added",
		"event", "agenda_comment_added",
		"module", "meeting-governance/agenda-service",
		"layer", "application",
		"comment_id", comment.CommentID,
		"item_id", comment.ItemID,
		"author_id", comment.AuthorID,
	)
	return comment, nil
}

func (uc AgendaUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
