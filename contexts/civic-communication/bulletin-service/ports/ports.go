package ports

import (
	"context"
	"time"

	"agora/contexts/civic-communication/bulletin-service/domain/entities"
)

type AnnouncementRepository interface {
	InsertAnnouncement(ctx context.Context, announcement entities.Announcement) (entities.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]entities.Announcement, error)
}

type TaskRepository interface {
	InsertTask(ctx context.Context, task entities.Task) (entities.Task, error)
	GetTask(ctx context.Context, taskID int64) (entities.Task, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int64, status entities.TaskStatus, updatedAt time.Time) error
}

type Clock interface {
	Now() time.Time
}
