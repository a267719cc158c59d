package commands

import (
	"context"
	"errors"
	"testing"

	"agora/contexts/meeting-governance/agenda-service/adapters/memory"
	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

func newUseCase(t *testing.T) (AgendaUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nil)
	return AgendaUseCase{
		Agenda:   store,
		Comments: store,
		Clock:    store,
	}, store
}

func TestCreateItemRequiresExistingMeeting(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateItem(context.Background(), CreateItemCommand{
		ActorID:    1,
		MeetingID:  42,
		OrderIndex: 0,
		Title:      "Budget review",
	})
	if !errors.Is(err, domainerrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestCreateItemDefaultsToPending(t *testing.T) {
	uc, store := newUseCase(t)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, CommitteeID: 1, Status: "scheduled"})

	item, err := uc.CreateItem(context.Background(), CreateItemCommand{
		ActorID:    1,
		MeetingID:  1,
		OrderIndex: 0,
		Title:      "Budget review",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Status != entities.ItemStatusPending {
		t.Fatalf("expected pending status, got %s", item.Status)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestCreateItemRejectsNegativeOrderIndex(t *testing.T) {
	uc, store := newUseCase(t)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, CommitteeID: 1, Status: "scheduled"})

	_, err := uc.CreateItem(context.Background(), CreateItemCommand{
		ActorID:    1,
		MeetingID:  1,
		OrderIndex: -1,
		Title:      "Budget review",
	})
	if !errors.Is(err, domainerrors.ErrInvalidAgendaItemInput) {
		t.Fatalf("expected ErrInvalidAgendaItemInput, got %v", err)
	}
}

func TestStatusStateMachine(t *testing.T) {
	uc, store := newUseCase(t)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, CommitteeID: 1, Status: "scheduled"})

	item, err := uc.CreateItem(context.Background(), CreateItemCommand{
		ActorID:    1,
		MeetingID:  1,
		OrderIndex: 0,
		Title:      "Zoning variance",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// pending -> completed skips in_progress and must be rejected.
	if _, err := uc.UpdateItemStatus(context.Background(), UpdateItemStatusCommand{
		ActorID: 1,
		ItemID:  item.ItemID,
		Status:  entities.ItemStatusCompleted,
	}); !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}

	for _, status := range []entities.ItemStatus{entities.ItemStatusInProgress, entities.ItemStatusCompleted} {
		if _, err := uc.UpdateItemStatus(context.Background(), UpdateItemStatusCommand{
			ActorID: 1,
			ItemID:  item.ItemID,
			Status:  status,
		}); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}

	// completed is terminal.
	if _, err := uc.UpdateItemStatus(context.Background(), UpdateItemStatusCommand{
		ActorID: 1,
		ItemID:  item.ItemID,
		Status:  entities.ItemStatusDeferred,
	}); !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected terminal status to reject transitions, got %v", err)
	}
}

func TestReorderRejectsForeignAndPartialSets(t *testing.T) {
	uc, store := newUseCase(t)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, CommitteeID: 1, Status: "scheduled"})
	store.SetMeeting(ports.MeetingProjection{MeetingID: 2, CommitteeID: 1, Status: "scheduled"})

	var ids []int64
	for i := 0; i < 2; i++ {
		item, err := uc.CreateItem(context.Background(), CreateItemCommand{
			ActorID:    1,
			MeetingID:  1,
			OrderIndex: i,
			Title:      "item",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, item.ItemID)
	}
	other, err := uc.CreateItem(context.Background(), CreateItemCommand{
		ActorID:    1,
		MeetingID:  2,
		OrderIndex: 0,
		Title:      "other meeting item",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.Reorder(context.Background(), ReorderCommand{
		ActorID:   1,
		MeetingID: 1,
		ItemIDs:   []int64{ids[0]},
	}); !errors.Is(err, domainerrors.ErrInvalidReorder) {
		t.Fatalf("expected partial set to be rejected, got %v", err)
	}

	if _, err := uc.Reorder(context.Background(), ReorderCommand{
		ActorID:   1,
		MeetingID: 1,
		ItemIDs:   []int64{ids[0], other.ItemID},
	}); !errors.Is(err, domainerrors.ErrInvalidReorder) {
		t.Fatalf("expected foreign item to be rejected, got %v", err)
	}

	items, err := uc.Reorder(context.Background(), ReorderCommand{
		ActorID:   1,
		MeetingID: 1,
		ItemIDs:   []int64{ids[1], ids[0]},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if items[0].ItemID != ids[1] || items[0].OrderIndex != 0 {
		t.Fatalf("expected %d first with index 0, got %+v", ids[1], items[0])
	}
}

func TestAddCommentRequiresExistingItem(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddComment(context.Background(), AddCommentCommand{
		ItemID:   5,
		AuthorID: 1,
		Body:     "remarks",
	})
	if !errors.Is(err, domainerrors.ErrAgendaItemNotFound) {
		t.Fatalf("expected ErrAgendaItemNotFound, got %v", err)
	}
}
