package queries

import (
	"context"

	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

type AgendaUseCase struct {
	Agenda   ports.AgendaRepository
	Comments ports.CommentRepository
}

// ListMeetingAgenda returns the meeting's items ascending by order_index.
// An empty agenda is a valid empty slice, not an error.
func (uc AgendaUseCase) ListMeetingAgenda(ctx context.Context, meetingID int64) ([]entities.AgendaItem, error) {
	if meetingID <= 0 {
		return nil, domainerrors.ErrInvalidAgendaItemInput
	}
	return uc.Agenda.ListItemsByMeeting(ctx, meetingID)
}

func (uc AgendaUseCase) GetItem(ctx context.Context, itemID int64) (entities.AgendaItem, error) {
	if itemID <= 0 {
		return entities.AgendaItem{}, domainerrors.ErrInvalidAgendaItemInput
	}
	return uc.Agenda.GetItem(ctx, itemID)
}

// ListItemComments returns comments ascending by created_at.
func (uc AgendaUseCase) ListItemComments(ctx context.Context, itemID int64) ([]entities.AgendaComment, error) {
	if itemID <= 0 {
		return nil, domainerrors.ErrInvalidCommentInput
	}
	if _, err := uc.Agenda.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	return uc.Comments.ListCommentsByItem(ctx, itemID)
}
