package commands

import (
	"context"
	"errors"
	"testing"

	"agora/contexts/civic-communication/bulletin-service/adapters/memory"
	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	bulletinerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
)

func newUseCase(t *testing.T) (BulletinUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return BulletinUseCase{
		Announcements: store,
		Tasks:         store,
		Clock:         store,
	}, store
}

func TestPublishAnnouncementDefaultsPriority(t *testing.T) {
	uc, _ := newUseCase(t)

	announcement, err := uc.PublishAnnouncement(context.Background(), PublishAnnouncementCommand{
		ActorID: 1,
		Title:   "Road closure",
		Content: "Main street closed Friday.",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if announcement.Priority != entities.PriorityNormal {
		t.Fatalf("expected normal priority, got %q", announcement.Priority)
	}
}

func TestPublishAnnouncementRejectsEmptyContent(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.PublishAnnouncement(context.Background(), PublishAnnouncementCommand{
		ActorID: 1,
		Title:   "Road closure",
		Content: "  ",
	})
	if !errors.Is(err, bulletinerrors.ErrInvalidAnnouncementInput) {
		t.Fatalf("expected ErrInvalidAnnouncementInput, got %v", err)
	}
}

func TestTaskStatusLifecycle(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	task, err := uc.CreateTask(ctx, CreateTaskCommand{ActorID: 1, Title: "Publish minutes"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != entities.TaskStatusPending {
		t.Fatalf("expected pending, got %q", task.Status)
	}

	updated, err := uc.UpdateTaskStatus(ctx, UpdateTaskStatusCommand{
		ActorID: 1,
		TaskID:  task.TaskID,
		Status:  entities.TaskStatusInProgress,
	})
	if err != nil {
		t.Fatalf("to in_progress: %v", err)
	}
	if updated.Status != entities.TaskStatusInProgress {
		t.Fatalf("expected in_progress, got %q", updated.Status)
	}

	if _, err := uc.UpdateTaskStatus(ctx, UpdateTaskStatusCommand{
		ActorID: 1,
		TaskID:  task.TaskID,
		Status:  entities.TaskStatusCompleted,
	}); err != nil {
		t.Fatalf("to completed: %v", err)
	}

	_, err = uc.UpdateTaskStatus(ctx, UpdateTaskStatusCommand{
		ActorID: 1,
		TaskID:  task.TaskID,
		Status:  entities.TaskStatusPending,
	})
	if !errors.Is(err, bulletinerrors.ErrInvalidStatusTransition) {
		t.Fatalf("completed is terminal: expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestUpdateUnknownTaskFails(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.UpdateTaskStatus(context.Background(), UpdateTaskStatusCommand{
		ActorID: 1,
		TaskID:  99,
		Status:  entities.TaskStatusCompleted,
	})
	if !errors.Is(err, bulletinerrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
