package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/civic-communication/bulletin-service/application"
	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	bulletinerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
	"agora/contexts/civic-communication/bulletin-service/ports"
)

type PublishAnnouncementCommand struct {
	ActorID  int64
	Title    string
	Content  string
	Priority entities.Priority
}

type CreateTaskCommand struct {
	ActorID     int64
	Title       string
	Description string
	AssignedTo  int64
	DueDate     *time.Time
}

type UpdateTaskStatusCommand struct {
	ActorID int64
	TaskID  int64
	Status  entities.TaskStatus
}

type BulletinUseCase struct {
	Announcements ports.AnnouncementRepository
	Tasks         ports.TaskRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (uc BulletinUseCase) PublishAnnouncement(ctx context.Context, cmd PublishAnnouncementCommand) (entities.Announcement, error) {
	logger := application.ResolveLogger(uc.Logger)

	title := strings.TrimSpace(cmd.Title)
	content := strings.TrimSpace(cmd.Content)
	if title == "" || content == "" {
		return entities.Announcement{}, bulletinerrors.ErrInvalidAnnouncementInput
	}
	priority := cmd.Priority
	if priority == "" {
		priority = entities.PriorityNormal
	}
	if !priority.Valid() {
		return entities.Announcement{}, bulletinerrors.ErrInvalidAnnouncementInput
	}

	announcement, err := uc.Announcements.InsertAnnouncement(ctx, entities.Announcement{
		Title:     title,
		Content:   content,
		Priority:  priority,
		CreatedBy: cmd.ActorID,
		CreatedAt: uc.now(),
	})
	if err != nil {
		return entities.Announcement{}, err
	}

	logger.Info("announcement published",
		slog.String("event", "announcement_published"),
		slog.Int64("announcement_id", announcement.AnnouncementID),
		slog.String("priority", string(announcement.Priority)),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return announcement, nil
}

func (uc BulletinUseCase) CreateTask(ctx context.Context, cmd CreateTaskCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.Task{}, bulletinerrors.ErrInvalidTaskInput
	}

	now := uc.now()
	task, err := uc.Tasks.InsertTask(ctx, entities.Task{
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		AssignedTo:  cmd.AssignedTo,
		DueDate:     cmd.DueDate,
		Status:      entities.TaskStatusPending,
		CreatedBy:   cmd.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return entities.Task{}, err
	}

	logger.Info("task created",
		slog.String("event", "task_created"),
		slog.Int64("task_id", task.TaskID),
		slog.Int64("assigned_to", task.AssignedTo),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return task, nil
}

func (uc BulletinUseCase) UpdateTaskStatus(ctx context.Context, cmd UpdateTaskStatusCommand) (entities.Task, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !cmd.Status.Valid() {
		return entities.Task{}, bulletinerrors.ErrInvalidTaskInput
	}

	task, err := uc.Tasks.GetTask(ctx, cmd.TaskID)
	if err != nil {
		return entities.Task{}, err
	}
	if task.Status == cmd.Status {
		return task, nil
	}
	if !task.Status.CanTransition(cmd.Status) {
		return entities.Task{}, bulletinerrors.ErrInvalidStatusTransition
	}

	now := uc.now()
	if err := uc.Tasks.UpdateTaskStatus(ctx, cmd.TaskID, cmd.Status, now); err != nil {
		return entities.Task{}, err
	}
	task.Status = cmd.Status
	task.UpdatedAt = now

	logger.Info("task status updated",
		slog.String("event", "task_status_updated"),
		slog.Int64("task_id", task.TaskID),
		slog.String("status", string(task.Status)),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return task, nil
}

func (uc BulletinUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now()
	}
	return time.Now()
}
