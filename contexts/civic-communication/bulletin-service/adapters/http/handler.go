package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/civic-communication/bulletin-service/application/commands"
	"agora/contexts/civic-communication/bulletin-service/application/queries"
	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	bulletinerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
	httptransport "agora/contexts/civic-communication/bulletin-service/transport/http"
)

type Handler struct {
	Commands commands.BulletinUseCase
	Queries  queries.BulletinUseCase
	Logger   *slog.Logger
}

func (h Handler) PublishAnnouncementHandler(
	ctx context.Context,
	actorID int64,
	req httptransport.PublishAnnouncementRequest,
) (httptransport.AnnouncementResponse, error) {
	announcement, err := h.Commands.PublishAnnouncement(ctx, commands.PublishAnnouncementCommand{
		ActorID:  actorID,
		Title:    req.Title,
		Content:  req.Content,
		Priority: entities.Priority(req.Priority),
	})
	if err != nil {
		return httptransport.AnnouncementResponse{}, err
	}
	return mapAnnouncement(announcement), nil
}

func (h Handler) ListAnnouncementsHandler(ctx context.Context) (httptransport.AnnouncementListResponse, error) {
	announcements, err := h.Queries.ListAnnouncements(ctx)
	if err != nil {
		return httptransport.AnnouncementListResponse{}, err
	}
	mapped := make([]httptransport.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		mapped = append(mapped, mapAnnouncement(announcement))
	}
	return httptransport.AnnouncementListResponse{Announcements: mapped}, nil
}

func (h Handler) CreateTaskHandler(
	ctx context.Context,
	actorID int64,
	req httptransport.CreateTaskRequest,
) (httptransport.TaskResponse, error) {
	var dueDate *time.Time
	if strings.TrimSpace(req.DueDate) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(req.DueDate))
		if err != nil {
			return httptransport.TaskResponse{}, bulletinerrors.ErrInvalidTaskInput
		}
		dueDate = &parsed
	}

	task, err := h.Commands.CreateTask(ctx, commands.CreateTaskCommand{
		ActorID:     actorID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return mapTask(task), nil
}

func (h Handler) ListTasksHandler(ctx context.Context) (httptransport.TaskListResponse, error) {
	tasks, err := h.Queries.ListTasks(ctx)
	if err != nil {
		return httptransport.TaskListResponse{}, err
	}
	mapped := make([]httptransport.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		mapped = append(mapped, mapTask(task))
	}
	return httptransport.TaskListResponse{Tasks: mapped}, nil
}

func (h Handler) UpdateTaskStatusHandler(
	ctx context.Context,
	actorID int64,
	taskID int64,
	req httptransport.UpdateTaskStatusRequest,
) (httptransport.TaskResponse, error) {
	task, err := h.Commands.UpdateTaskStatus(ctx, commands.UpdateTaskStatusCommand{
		ActorID: actorID,
		TaskID:  taskID,
		Status:  entities.TaskStatus(req.Status),
	})
	if err != nil {
		return httptransport.TaskResponse{}, err
	}
	return mapTask(task), nil
}

func mapAnnouncement(announcement entities.Announcement) httptransport.AnnouncementResponse {
	return httptransport.AnnouncementResponse{
		ID:        announcement.AnnouncementID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		Priority:  string(announcement.Priority),
		CreatedBy: announcement.CreatedBy,
		CreatedAt: announcement.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapTask(task entities.Task) httptransport.TaskResponse {
	response := httptransport.TaskResponse{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		Status:      string(task.Status),
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if task.DueDate != nil {
		response.DueDate = task.DueDate.UTC().Format(time.RFC3339)
	}
	return response
}
