package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"agora/contexts/meeting-governance/voting-service/application"
	"agora/contexts/meeting-governance/voting-service/domain/entities"
	votingerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
	"agora/internal/shared/events"
	"agora/internal/shared/outbox"

	"github.com/google/uuid"
)

const (
	sourceService           = "voting-service"
	eventVoteResultRecorded = "vote_result.recorded"
)

type CastBallotCommand struct {
	MeetingID int64
	VoterID   int64
	Option    string
}

type RecordVoteResultCommand struct {
	ActorID      int64
	AgendaItemID int64
	VotesFor     int
	VotesAgainst int
	VotesAbstain int
	TotalVotes   int
	Result       entities.Outcome
}

type VoteUseCase struct {
	Ballots ports.BallotRepository
	Results ports.ResultRepository
	Outbox  ports.OutboxWriter
	Clock   ports.Clock
	IDs     ports.IDGenerator
	Logger  *slog.Logger
}

// CastBallot records the voter's choice for a meeting. A voter who already
// cast a ballot for the meeting has it overwritten rather than duplicated.
func (uc VoteUseCase) CastBallot(ctx context.Context, cmd CastBallotCommand) (entities.Ballot, error) {
	logger := application.ResolveLogger(uc.Logger)

	option := strings.TrimSpace(cmd.Option)
	if cmd.MeetingID <= 0 || cmd.VoterID <= 0 || option == "" {
		return entities.Ballot{}, votingerrors.ErrInvalidBallotInput
	}

	if _, err := uc.Ballots.GetMeeting(ctx, cmd.MeetingID); err != nil {
		return entities.Ballot{}, err
	}

	now := uc.now()
	ballot, err := uc.Ballots.UpsertBallot(ctx, entities.Ballot{
		MeetingID: cmd.MeetingID,
		VoterID:   cmd.VoterID,
		Option:    option,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Ballot{}, err
	}

	logger.Info("ballot cast",
		slog.String("event", "ballot_cast"),
		slog.Int64("meeting_id", ballot.MeetingID),
		slog.Int64("voter_id", ballot.VoterID),
		slog.String("option", ballot.Option),
	)
	return ballot, nil
}

// RecordVoteResult writes the authoritative tally row for an agenda item and
// stages a vote_result.recorded event in the same transaction boundary.
// Recording again for the same item replaces the previous row and resets
// voted_at to the time of the new write.
func (uc VoteUseCase) RecordVoteResult(ctx context.Context, cmd RecordVoteResultCommand) (entities.VoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.AgendaItemID <= 0 || cmd.VotesFor < 0 || cmd.VotesAgainst < 0 || cmd.VotesAbstain < 0 || cmd.TotalVotes < 0 {
		return entities.VoteResult{}, votingerrors.ErrInvalidResultInput
	}
	if !cmd.Result.Valid() {
		return entities.VoteResult{}, votingerrors.ErrInvalidResultInput
	}

	item, err := uc.Results.GetAgendaItem(ctx, cmd.AgendaItemID)
	if err != nil {
		return entities.VoteResult{}, err
	}

	result := entities.VoteResult{
		AgendaItemID: cmd.AgendaItemID,
		VotesFor:     cmd.VotesFor,
		VotesAgainst: cmd.VotesAgainst,
		VotesAbstain: cmd.VotesAbstain,
		TotalVotes:   cmd.TotalVotes,
		Result:       cmd.Result,
		VotedAt:      uc.now(),
	}
	if result.TotalVotes == 0 {
		result.TotalVotes = result.CountSum()
	}
	if result.TotalVotes != result.CountSum() {
		// total_votes is caller-supplied truth and may legitimately exceed the
		// counted options, but a mismatch is worth surfacing.
		logger.Warn("vote result totals disagree with option counts",
			slog.String("event", "vote_result_total_mismatch"),
			slog.Int64("agenda_item_id", result.AgendaItemID),
			slog.Int("total_votes", result.TotalVotes),
			slog.Int("count_sum", result.CountSum()),
		)
	}

	stored, err := uc.Results.UpsertResult(ctx, result)
	if err != nil {
		return entities.VoteResult{}, err
	}

	if uc.Outbox != nil {
		if err := uc.appendResultEvent(ctx, stored, item.MeetingID, cmd.ActorID); err != nil {
			return entities.VoteResult{}, err
		}
	}

	logger.Info("vote result recorded",
		slog.String("event", "vote_result_recorded"),
		slog.Int64("agenda_item_id", stored.AgendaItemID),
		slog.String("result", string(stored.Result)),
		slog.Int("total_votes", stored.TotalVotes),
	)
	return stored, nil
}

func (uc VoteUseCase) appendResultEvent(ctx context.Context, result entities.VoteResult, meetingID int64, actorID int64) error {
	envelope := events.Envelope{
		EventID:        uc.newID(),
		EventType:      eventVoteResultRecorded,
		SourceService:  sourceService,
		OccurredAtUTC:  uc.now().UTC(),
		EntityType:     "vote_result",
		EntityID:       strconv.FormatInt(result.AgendaItemID, 10),
		PayloadVersion: 1,
		Payload: map[string]any{
			"agenda_item_id": result.AgendaItemID,
			"meeting_id":     meetingID,
			"recorded_by":    actorID,
			"votes_for":      result.VotesFor,
			"votes_against":  result.VotesAgainst,
			"votes_abstain":  result.VotesAbstain,
			"total_votes":    result.TotalVotes,
			"result":         string(result.Result),
			"voted_at":       result.VotedAt.UTC().Format(time.RFC3339),
		},
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal vote result event: %w", err)
	}

	return uc.Outbox.AppendOutbox(ctx, outbox.Message{
		EventType:    envelope.EventType,
		PartitionKey: strconv.FormatInt(meetingID, 10),
		Payload:      payload,
		CreatedAt:    uc.now(),
	})
}

func (uc VoteUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now()
	}
	return time.Now()
}

func (uc VoteUseCase) newID() string {
	if uc.IDs != nil {
		return uc.IDs.NewID()
	}
	return uuid.NewString()
}
