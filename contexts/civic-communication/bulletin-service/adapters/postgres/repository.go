package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	domainerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
	"agora/contexts/civic-communication/bulletin-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) InsertAnnouncement(ctx context.Context, announcement entities.Announcement) (entities.Announcement, error) {
	row := announcementModelFromEntity(announcement)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Announcement{}, r.logError("bulletin_repo_insert_announcement_failed", err,
			"title", announcement.Title,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAnnouncements(ctx context.Context) ([]entities.Announcement, error) {
	var rows []announcementModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("bulletin_repo_list_announcements_failed", err)
	}
	items := make([]entities.Announcement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) InsertTask(ctx context.Context, task entities.Task) (entities.Task, error) {
	row := taskModelFromEntity(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.Task{}, domainerrors.ErrAssigneeNotFound
		}
		return entities.Task{}, r.logError("bulletin_repo_insert_task_failed", err, "title", task.Title)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetTask(ctx context.Context, taskID int64) (entities.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).
		Where("id = ?", taskID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Task{}, domainerrors.ErrTaskNotFound
		}
		return entities.Task{}, r.logError("bulletin_repo_get_task_failed", err, "task_id", taskID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTasks(ctx context.Context) ([]entities.Task, error) {
	var rows []taskModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("bulletin_repo_list_tasks_failed", err)
	}
	items := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, taskID int64, status entities.TaskStatus, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ?", taskID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("bulletin_repo_update_task_status_failed", result.Error,
			"task_id", taskID,
			"status", string(status),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "civic-communication/bulletin-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("bulletin repository operation failed", fields...)
	return err
}

type announcementModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	Priority  string    `gorm:"column:priority"`
	CreatedBy int64     `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (announcementModel) TableName() string {
	return "announcements"
}

func announcementModelFromEntity(announcement entities.Announcement) announcementModel {
	row := announcementModel{
		Title:     announcement.Title,
		Content:   announcement.Content,
		Priority:  string(announcement.Priority),
		CreatedBy: announcement.CreatedBy,
		CreatedAt: announcement.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m announcementModel) toEntity() entities.Announcement {
	return entities.Announcement{
		AnnouncementID: m.ID,
		Title:          m.Title,
		Content:        m.Content,
		Priority:       entities.Priority(m.Priority),
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type taskModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	AssignedTo  int64      `gorm:"column:assigned_to"`
	DueDate     *time.Time `gorm:"column:due_date"`
	Status      string     `gorm:"column:status"`
	CreatedBy   int64      `gorm:"column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (taskModel) TableName() string {
	return "tasks"
}

func taskModelFromEntity(task entities.Task) taskModel {
	row := taskModel{
		Title:       task.Title,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		DueDate:     normalizeOptionalTime(task.DueDate),
		Status:      string(task.Status),
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m taskModel) toEntity() entities.Task {
	return entities.Task{
		TaskID:      m.ID,
		Title:       m.Title,
		Description: m.Description,
		AssignedTo:  m.AssignedTo,
		DueDate:     normalizeOptionalTime(m.DueDate),
		Status:      entities.TaskStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

var _ ports.AnnouncementRepository = (*Repository)(nil)
var _ ports.TaskRepository = (*Repository)(nil)
