package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"

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

func (r *Repository) InsertItem(ctx context.Context, item entities.AgendaItem) (entities.AgendaItem, error) {
	row := itemModelFromEntity(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.AgendaItem{}, domainerrors.ErrMeetingNotFound
		}
		return entities.AgendaItem{}, r.logError("agenda_repo_insert_item_failed", err,
			"meeting_id", item.MeetingID,
			"order_index", item.OrderIndex,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetItem(ctx context.Context, itemID int64) (entities.AgendaItem, error) {
	var row agendaItemModel
	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AgendaItem{}, domainerrors.ErrAgendaItemNotFound
		}
		return entities.AgendaItem{}, r.logError("agenda_repo_get_item_failed", err, "item_id", itemID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListItemsByMeeting(ctx context.Context, meetingID int64) ([]entities.AgendaItem, error) {
	var rows []agendaItemModel
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("agenda_repo_list_items_failed", err, "meeting_id", meetingID)
	}
	items := make([]entities.AgendaItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateItemStatus(
	ctx context.Context,
	itemID int64,
	status entities.ItemStatus,
	updatedAt time.Time,
) (entities.AgendaItem, error) {
	result := r.db.WithContext(ctx).
		Model(&agendaItemModel{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.AgendaItem{}, r.logError("agenda_repo_update_status_failed", result.Error,
			"item_id", itemID,
			"status", string(status),
		)
	}
	if result.RowsAffected == 0 {
		return entities.AgendaItem{}, domainerrors.ErrAgendaItemNotFound
	}
	return r.GetItem(ctx, itemID)
}

// ReassignOrder rewrites order_index 0..n-1 following orderedItemIDs inside a
// single transaction so a failed reorder leaves the prior ordering intact.
func (r *Repository) ReassignOrder(
	ctx context.Context,
	meetingID int64,
	orderedItemIDs []int64,
	updatedAt time.Time,
) ([]entities.AgendaItem, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, itemID := range orderedItemIDs {
			result := tx.Model(&agendaItemModel{}).
				Where("id = ? AND meeting_id = ?", itemID, meetingID).
				Updates(map[string]any{
					"order_index": position,
					"updated_at":  updatedAt.UTC(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrInvalidReorder
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidReorder) {
			return nil, err
		}
		return nil, r.logError("agenda_repo_reassign_order_failed", err, "meeting_id", meetingID)
	}
	return r.ListItemsByMeeting(ctx, meetingID)
}

func (r *Repository) GetMeeting(ctx context.Context, meetingID int64) (ports.MeetingProjection, error) {
	var row meetingProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", meetingID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MeetingProjection{}, domainerrors.ErrMeetingNotFound
		}
		return ports.MeetingProjection{}, r.logError("agenda_repo_get_meeting_failed", err, "meeting_id", meetingID)
	}
	return ports.MeetingProjection{
		MeetingID:   row.ID,
		CommitteeID: row.CommitteeID,
		Status:      row.Status,
	}, nil
}

func (r *Repository) InsertComment(ctx context.Context, comment entities.AgendaComment) (entities.AgendaComment, error) {
	row := commentModelFromEntity(comment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.AgendaComment{}, domainerrors.ErrAuthorNotFound
		}
		return entities.AgendaComment{}, r.logError("agenda_repo_insert_comment_failed", err,
			"item_id", comment.ItemID,
			"author_id", comment.AuthorID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCommentsByItem(ctx context.Context, itemID int64) ([]entities.AgendaComment, error) {
	var rows []agendaCommentModel
	if err := r.db.WithContext(ctx).
		Where("agenda_item_id = ?", itemID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("agenda_repo_list_comments_failed", err, "item_id", itemID)
	}
	comments := make([]entities.AgendaComment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toEntity())
	}
	return comments, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "meeting-governance/agenda-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("agenda repository operation failed", fields...)
	return err
}

type agendaItemModel struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MeetingID         int64     `gorm:"column:meeting_id"`
	OrderIndex        int       `gorm:"column:order_index"`
	Title             string    `gorm:"column:title"`
	Description       string    `gorm:"column:description"`
	Category          string    `gorm:"column:category"`
	Presenter         string    `gorm:"column:presenter"`
	EstimatedDuration int       `gorm:"column:estimated_duration"`
	Status            string    `gorm:"column:status"`
	IntroductionFile  string    `gorm:"column:introduction_file"`
	DecisionFile      string    `gorm:"column:decision_file"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (agendaItemModel) TableName() string {
	return "agenda_items"
}

func itemModelFromEntity(item entities.AgendaItem) agendaItemModel {
	row := agendaItemModel{
		ID:                item.ItemID,
		MeetingID:         item.MeetingID,
		OrderIndex:        item.OrderIndex,
		Title:             item.Title,
		Description:       item.Description,
		Category:          item.Category,
		Presenter:         item.Presenter,
		EstimatedDuration: item.EstimatedDuration,
		Status:            string(item.Status),
		IntroductionFile:  item.IntroductionFile,
		DecisionFile:      item.DecisionFile,
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m agendaItemModel) toEntity() entities.AgendaItem {
	return entities.AgendaItem{
		ItemID:            m.ID,
		MeetingID:         m.MeetingID,
		OrderIndex:        m.OrderIndex,
		Title:             m.Title,
		Description:       m.Description,
		Category:          m.Category,
		Presenter:         m.Presenter,
		EstimatedDuration: m.EstimatedDuration,
		Status:            entities.ItemStatus(m.Status),
		IntroductionFile:  m.IntroductionFile,
		DecisionFile:      m.DecisionFile,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

type agendaCommentModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AgendaItemID int64     `gorm:"column:agenda_item_id"`
	AuthorID     int64     `gorm:"column:user_id"`
	Body         string    `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (agendaCommentModel) TableName() string {
	return "agenda_comments"
}

func commentModelFromEntity(comment entities.AgendaComment) agendaCommentModel {
	row := agendaCommentModel{
		ID:           comment.CommentID,
		AgendaItemID: comment.ItemID,
		AuthorID:     comment.AuthorID,
		Body:         comment.Body,
		CreatedAt:    comment.CreatedAt.UTC(),
		UpdatedAt:    comment.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m agendaCommentModel) toEntity() entities.AgendaComment {
	return entities.AgendaComment{
		CommentID: m.ID,
		ItemID:    m.AgendaItemID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type meetingProjectionModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	CommitteeID int64  `gorm:"column:committee_id"`
	Status      string `gorm:"column:status"`
}

func (meetingProjectionModel) TableName() string {
	return "meetings"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

var _ ports.AgendaRepository = (*Repository)(nil)
var _ ports.CommentRepository = (*Repository)(nil)
