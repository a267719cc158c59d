package memory

import (
	"context"
	"testing"
	"time"

	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

func TestListItemsByMeetingSortsByOrderIndex(t *testing.T) {
	store := NewStore(nil)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, CommitteeID: 1, Status: "scheduled"})
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	// Insert out of order; retrieval order must not depend on insert order.
	for _, index := range []int{4, 0, 2} {
		if _, err := store.InsertItem(context.Background(), entities.AgendaItem{
			MeetingID:  1,
			OrderIndex: index,
			Title:      "item",
			Status:     entities.ItemStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	items, err := store.ListItemsByMeeting(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].OrderIndex > items[i].OrderIndex {
			t.Fatalf("items not sorted ascending by order_index: %d before %d",
				items[i-1].OrderIndex, items[i].OrderIndex)
		}
	}
}

func TestInsertItemUnknownMeetingFails(t *testing.T) {
	store := NewStore(nil)

	_, err := store.InsertItem(context.Background(), entities.AgendaItem{
		MeetingID:  99,
		OrderIndex: 0,
		Title:      "orphan",
		Status:     entities.ItemStatusPending,
	})
	if err != domainerrors.ErrMeetingNotFound {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}

	items, err := store.ListItemsByMeeting(context.Background(), 99)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no persisted rows after failed insert, got %d", len(items))
	}
}

func TestReassignOrderRewritesContiguousIndices(t *testing.T) {
	store := NewStore(nil)
	store.SetMeeting(ports.MeetingProjection{MeetingID: 7, CommitteeID: 2, Status: "scheduled"})

	var ids []int64
	for i := 0; i < 3; i++ {
		item, err := store.InsertItem(context.Background(), entities.AgendaItem{
			MeetingID:  7,
			OrderIndex: i * 10,
			Title:      "item",
			Status:     entities.ItemStatusPending,
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		ids = append(ids, item.ItemID)
	}

	reversed := []int64{ids[2], ids[1], ids[0]}
	updated, err := store.ReassignOrder(context.Background(), 7, reversed, time.Now().UTC())
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	for i, item := range updated {
		if item.OrderIndex != i {
			t.Fatalf("expected contiguous index %d, got %d", i, item.OrderIndex)
		}
		if item.ItemID != reversed[i] {
			t.Fatalf("expected item %d at position %d, got %d", reversed[i], i, item.ItemID)
		}
	}
}
