package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/meeting-governance/voting-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
	"agora/internal/shared/outbox"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

// UpsertBallot relies on the UNIQUE (meeting_id, user_id) constraint so two
// concurrent casts by the same voter collapse into one row without a
// check-then-insert race.
func (r *Repository) UpsertBallot(ctx context.Context, ballot entities.Ballot) (entities.Ballot, error) {
	row := ballotModelFromEntity(ballot)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meeting_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"vote":       row.Vote,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isForeignKeyViolation(create.Error) {
			return entities.Ballot{}, classifyBallotReference(create.Error)
		}
		return entities.Ballot{}, r.logError("voting_repo_upsert_ballot_failed", create.Error,
			"meeting_id", ballot.MeetingID,
			"voter_id", ballot.VoterID,
		)
	}

	var stored ballotModel
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", ballot.MeetingID).
		Where("user_id = ?", ballot.VoterID).
		First(&stored).
		Error
	if err != nil {
		return entities.Ballot{}, r.logError("voting_repo_load_ballot_failed", err,
			"meeting_id", ballot.MeetingID,
			"voter_id", ballot.VoterID,
		)
	}
	return stored.toEntity(), nil
}

func (r *Repository) ListBallotsByMeeting(ctx context.Context, meetingID int64) ([]entities.Ballot, error) {
	var rows []ballotModel
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_ballots_failed", err, "meeting_id", meetingID)
	}
	items := make([]entities.Ballot, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
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
		return ports.MeetingProjection{}, r.logError("voting_repo_get_meeting_failed", err, "meeting_id", meetingID)
	}
	return ports.MeetingProjection{
		MeetingID: row.ID,
		Status:    row.Status,
	}, nil
}

// UpsertResult keeps a single authoritative row per agenda item. A conflicting
// write replaces the counts and resets voted_at to the new write's timestamp.
func (r *Repository) UpsertResult(ctx context.Context, result entities.VoteResult) (entities.VoteResult, error) {
	row := resultModelFromEntity(result)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "agenda_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"votes_for":     row.VotesFor,
			"votes_against": row.VotesAgainst,
			"votes_abstain": row.VotesAbstain,
			"total_votes":   row.TotalVotes,
			"result":        row.Result,
			"voted_at":      row.VotedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isForeignKeyViolation(create.Error) {
			return entities.VoteResult{}, domainerrors.ErrAgendaItemNotFound
		}
		return entities.VoteResult{}, r.logError("voting_repo_upsert_result_failed", create.Error,
			"agenda_item_id", result.AgendaItemID,
		)
	}

	var stored voteResultModel
	err := r.db.WithContext(ctx).
		Where("agenda_item_id = ?", result.AgendaItemID).
		First(&stored).
		Error
	if err != nil {
		return entities.VoteResult{}, r.logError("voting_repo_load_result_failed", err,
			"agenda_item_id", result.AgendaItemID,
		)
	}
	return stored.toEntity(), nil
}

func (r *Repository) GetResultByItem(ctx context.Context, agendaItemID int64) (entities.VoteResult, error) {
	var row voteResultModel
	err := r.db.WithContext(ctx).
		Where("agenda_item_id = ?", agendaItemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VoteResult{}, domainerrors.ErrResultNotFound
		}
		return entities.VoteResult{}, r.logError("voting_repo_get_result_failed", err,
			"agenda_item_id", agendaItemID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetAgendaItem(ctx context.Context, agendaItemID int64) (ports.AgendaItemProjection, error) {
	var row agendaItemProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", agendaItemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AgendaItemProjection{}, domainerrors.ErrAgendaItemNotFound
		}
		return ports.AgendaItemProjection{}, r.logError("voting_repo_get_agenda_item_failed", err,
			"agenda_item_id", agendaItemID,
		)
	}
	return ports.AgendaItemProjection{
		ItemID:    row.ID,
		MeetingID: row.MeetingID,
	}, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, message outbox.Message) error {
	row := outboxModel{
		EventType:    strings.TrimSpace(message.EventType),
		PartitionKey: strings.TrimSpace(message.PartitionKey),
		Payload:      message.Payload,
		Status:       outboxStatusPending,
		CreatedAt:    message.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("voting_repo_append_outbox_failed", err, "event_type", row.EventType)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, outbox.Message{
			OutboxID:     row.ID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID int64, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("voting_repo_mark_outbox_published_failed", result.Error, "outbox_id", outboxID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "meeting-governance/voting-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("voting repository operation failed", fields...)
	return err
}

type ballotModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MeetingID int64     `gorm:"column:meeting_id"`
	UserID    int64     `gorm:"column:user_id"`
	Vote      string    `gorm:"column:vote"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ballotModel) TableName() string {
	return "votes"
}

func ballotModelFromEntity(ballot entities.Ballot) ballotModel {
	row := ballotModel{
		MeetingID: ballot.MeetingID,
		UserID:    ballot.VoterID,
		Vote:      strings.TrimSpace(ballot.Option),
		CreatedAt: ballot.CreatedAt.UTC(),
		UpdatedAt: ballot.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m ballotModel) toEntity() entities.Ballot {
	return entities.Ballot{
		BallotID:  m.ID,
		MeetingID: m.MeetingID,
		VoterID:   m.UserID,
		Option:    m.Vote,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type voteResultModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	AgendaItemID int64     `gorm:"column:agenda_item_id"`
	VotesFor     int       `gorm:"column:votes_for"`
	VotesAgainst int       `gorm:"column:votes_against"`
	VotesAbstain int       `gorm:"column:votes_abstain"`
	TotalVotes   int       `gorm:"column:total_votes"`
	Result       string    `gorm:"column:result"`
	VotedAt      time.Time `gorm:"column:voted_at"`
}

func (voteResultModel) TableName() string {
	return "vote_results"
}

func resultModelFromEntity(result entities.VoteResult) voteResultModel {
	row := voteResultModel{
		AgendaItemID: result.AgendaItemID,
		VotesFor:     result.VotesFor,
		VotesAgainst: result.VotesAgainst,
		VotesAbstain: result.VotesAbstain,
		TotalVotes:   result.TotalVotes,
		Result:       string(result.Result),
		VotedAt:      result.VotedAt.UTC(),
	}
	if row.VotedAt.IsZero() {
		row.VotedAt = time.Now().UTC()
	}
	return row
}

func (m voteResultModel) toEntity() entities.VoteResult {
	return entities.VoteResult{
		ResultID:     m.ID,
		AgendaItemID: m.AgendaItemID,
		VotesFor:     m.VotesFor,
		VotesAgainst: m.VotesAgainst,
		VotesAbstain: m.VotesAbstain,
		TotalVotes:   m.TotalVotes,
		Result:       entities.Outcome(m.Result),
		VotedAt:      m.VotedAt.UTC(),
	}
}

type outboxModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "voting_outbox"
}

type meetingProjectionModel struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Status string `gorm:"column:status"`
}

func (meetingProjectionModel) TableName() string {
	return "meetings"
}

type agendaItemProjectionModel struct {
	ID        int64 `gorm:"column:id;primaryKey"`
	MeetingID int64 `gorm:"column:meeting_id"`
}

func (agendaItemProjectionModel) TableName() string {
	return "agenda_items"
}

func classifyBallotReference(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "user") {
		return domainerrors.ErrVoterNotFound
	}
	return domainerrors.ErrMeetingNotFound
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

var _ ports.BallotRepository = (*Repository)(nil)
var _ ports.ResultRepository = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
