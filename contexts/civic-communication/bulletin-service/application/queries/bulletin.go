package queries

import (
	"context"

	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	"agora/contexts/civic-communication/bulletin-service/ports"
)

type BulletinUseCase struct {
	Announcements ports.AnnouncementRepository
	Tasks         ports.TaskRepository
}

func (uc BulletinUseCase) ListAnnouncements(ctx context.Context) ([]entities.Announcement, error) {
	return uc.Announcements.ListAnnouncements(ctx)
}

func (uc BulletinUseCase) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return uc.Tasks.ListTasks(ctx)
}

func (uc BulletinUseCase) GetTask(ctx context.Context, taskID int64) (entities.Task, error) {
	return uc.Tasks.GetTask(ctx, taskID)
}
