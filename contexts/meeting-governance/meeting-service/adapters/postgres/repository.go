package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
	"agora/contexts/meeting-governance/meeting-service/ports"

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

func (r *Repository) InsertCommittee(ctx context.Context, committee entities.Committee) (entities.Committee, error) {
	row := committeeModelFromEntity(committee)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Committee{}, r.logError("meeting_repo_insert_committee_failed", err,
			"name", committee.Name,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCommittee(ctx context.Context, committeeID int64) (entities.Committee, error) {
	var row committeeModel
	err := r.db.WithContext(ctx).
		Where("id = ?", committeeID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Committee{}, domainerrors.ErrCommitteeNotFound
		}
		return entities.Committee{}, r.logError("meeting_repo_get_committee_failed", err, "committee_id", committeeID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCommittees(ctx context.Context) ([]entities.Committee, error) {
	var rows []committeeModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("meeting_repo_list_committees_failed", err)
	}
	items := make([]entities.Committee, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) InsertMeeting(ctx context.Context, meeting entities.Meeting) (entities.Meeting, error) {
	row := meetingModelFromEntity(meeting)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.Meeting{}, domainerrors.ErrCommitteeNotFound
		}
		return entities.Meeting{}, r.logError("meeting_repo_insert_meeting_failed", err,
			"committee_id", meeting.CommitteeID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetMeeting(ctx context.Context, meetingID int64) (entities.Meeting, error) {
	var row meetingModel
	err := r.db.WithContext(ctx).
		Where("id = ?", meetingID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Meeting{}, domainerrors.ErrMeetingNotFound
		}
		return entities.Meeting{}, r.logError("meeting_repo_get_meeting_failed", err, "meeting_id", meetingID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListMeetings(ctx context.Context) ([]entities.Meeting, error) {
	var rows []meetingModel
	if err := r.db.WithContext(ctx).
		Order("scheduled_at DESC NULLS LAST, id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("meeting_repo_list_meetings_failed", err)
	}
	return toMeetingEntities(rows), nil
}

func (r *Repository) ListMeetingsByCommittee(ctx context.Context, committeeID int64) ([]entities.Meeting, error) {
	var rows []meetingModel
	if err := r.db.WithContext(ctx).
		Where("committee_id = ?", committeeID).
		Order("scheduled_at DESC NULLS LAST, id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("meeting_repo_list_committee_meetings_failed", err, "committee_id", committeeID)
	}
	return toMeetingEntities(rows), nil
}

func (r *Repository) UpdateMeetingStatus(ctx context.Context, meetingID int64, status entities.MeetingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&meetingModel{}).
		Where("id = ?", meetingID).
		Updates(map[string]any{
			"status": string(status),
		})
	if result.Error != nil {
		return r.logError("meeting_repo_update_status_failed", result.Error,
			"meeting_id", meetingID,
			"status", string(status),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMeetingNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "meeting-governance/meeting-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("meeting repository operation failed", fields...)
	return err
}

type committeeModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (committeeModel) TableName() string {
	return "committees"
}

func committeeModelFromEntity(committee entities.Committee) committeeModel {
	row := committeeModel{
		Name:        committee.Name,
		Description: committee.Description,
		CreatedAt:   committee.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m committeeModel) toEntity() entities.Committee {
	return entities.Committee{
		CommitteeID: m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type meetingModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	CommitteeID int64      `gorm:"column:committee_id"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	Location    string     `gorm:"column:location"`
	ScheduledAt *time.Time `gorm:"column:scheduled_at"`
	Status      string     `gorm:"column:status"`
	CreatedBy   int64      `gorm:"column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (meetingModel) TableName() string {
	return "meetings"
}

func meetingModelFromEntity(meeting entities.Meeting) meetingModel {
	row := meetingModel{
		CommitteeID: meeting.CommitteeID,
		Title:       meeting.Title,
		Description: meeting.Description,
		Location:    meeting.Location,
		ScheduledAt: normalizeOptionalTime(meeting.ScheduledAt),
		Status:      string(meeting.Status),
		CreatedBy:   meeting.CreatedBy,
		CreatedAt:   meeting.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m meetingModel) toEntity() entities.Meeting {
	return entities.Meeting{
		MeetingID:   m.ID,
		CommitteeID: m.CommitteeID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		ScheduledAt: normalizeOptionalTime(m.ScheduledAt),
		Status:      entities.MeetingStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func toMeetingEntities(rows []meetingModel) []entities.Meeting {
	items := make([]entities.Meeting, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
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

var _ ports.CommitteeRepository = (*Repository)(nil)
var _ ports.MeetingRepository = (*Repository)(nil)
