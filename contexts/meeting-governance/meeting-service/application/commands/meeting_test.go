package commands

import (
	"context"
	"errors"
	"testing"

	"agora/contexts/meeting-governance/meeting-service/adapters/memory"
	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	meetingerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
)

func newUseCase(t *testing.T) (MeetingUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return MeetingUseCase{
		Committees: store,
		Meetings:   store,
		Clock:      store,
	}, store
}

func TestCreateMeetingRequiresExistingCommittee(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateMeeting(context.Background(), CreateMeetingCommand{
		ActorID:     1,
		CommitteeID: 42,
		Title:       "Budget session",
	})
	if !errors.Is(err, meetingerrors.ErrCommitteeNotFound) {
		t.Fatalf("expected ErrCommitteeNotFound, got %v", err)
	}
}

func TestCreateMeetingDefaultsToScheduled(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	committee, err := uc.CreateCommittee(ctx, CreateCommitteeCommand{ActorID: 1, Name: "Finance"})
	if err != nil {
		t.Fatalf("create committee: %v", err)
	}

	meeting, err := uc.CreateMeeting(ctx, CreateMeetingCommand{
		ActorID:     1,
		CommitteeID: committee.CommitteeID,
		Title:       "Budget session",
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}
	if meeting.Status != entities.MeetingStatusScheduled {
		t.Fatalf("expected scheduled status, got %q", meeting.Status)
	}
	if meeting.CreatedBy != 1 {
		t.Fatalf("expected creator recorded, got %d", meeting.CreatedBy)
	}
}

func TestCreateCommitteeRejectsEmptyName(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateCommittee(context.Background(), CreateCommitteeCommand{ActorID: 1, Name: "  "})
	if !errors.Is(err, meetingerrors.ErrInvalidCommitteeInput) {
		t.Fatalf("expected ErrInvalidCommitteeInput, got %v", err)
	}
}

func TestMeetingStatusLifecycle(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	committee, err := uc.CreateCommittee(ctx, CreateCommitteeCommand{ActorID: 1, Name: "Finance"})
	if err != nil {
		t.Fatalf("create committee: %v", err)
	}
	meeting, err := uc.CreateMeeting(ctx, CreateMeetingCommand{
		ActorID:     1,
		CommitteeID: committee.CommitteeID,
		Title:       "Budget session",
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}

	_, err = uc.UpdateMeetingStatus(ctx, UpdateMeetingStatusCommand{
		ActorID:   1,
		MeetingID: meeting.MeetingID,
		Status:    entities.MeetingStatusCompleted,
	})
	if !errors.Is(err, meetingerrors.ErrInvalidStatusTransition) {
		t.Fatalf("scheduled to completed: expected ErrInvalidStatusTransition, got %v", err)
	}

	for _, status := range []entities.MeetingStatus{
		entities.MeetingStatusInProgress,
		entities.MeetingStatusCompleted,
	} {
		if _, err := uc.UpdateMeetingStatus(ctx, UpdateMeetingStatusCommand{
			ActorID:   1,
			MeetingID: meeting.MeetingID,
			Status:    status,
		}); err != nil {
			t.Fatalf("transition to %q: %v", status, err)
		}
	}

	_, err = uc.UpdateMeetingStatus(ctx, UpdateMeetingStatusCommand{
		ActorID:   1,
		MeetingID: meeting.MeetingID,
		Status:    entities.MeetingStatusCancelled,
	})
	if !errors.Is(err, meetingerrors.ErrInvalidStatusTransition) {
		t.Fatalf("completed is terminal: expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestCancelFromScheduled(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	committee, err := uc.CreateCommittee(ctx, CreateCommitteeCommand{ActorID: 1, Name: "Finance"})
	if err != nil {
		t.Fatalf("create committee: %v", err)
	}
	meeting, err := uc.CreateMeeting(ctx, CreateMeetingCommand{
		ActorID:     1,
		CommitteeID: committee.CommitteeID,
		Title:       "Budget session",
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}

	updated, err := uc.UpdateMeetingStatus(ctx, UpdateMeetingStatusCommand{
		ActorID:   1,
		MeetingID: meeting.MeetingID,
		Status:    entities.MeetingStatusCancelled,
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if updated.Status != entities.MeetingStatusCancelled {
		t.Fatalf("expected cancelled, got %q", updated.Status)
	}
}
