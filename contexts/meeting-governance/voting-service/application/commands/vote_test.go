package commands

import (
	"context"
	"errors"
	"testing"

	"agora/contexts/meeting-governance/voting-service/adapters/memory"
	"agora/contexts/meeting-governance/voting-service/application/queries"
	"agora/contexts/meeting-governance/voting-service/domain/entities"
	votingerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
)

func newUseCase(t *testing.T) (VoteUseCase, queries.VoteUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, Status: "in_progress"})
	store.SetAgendaItem(ports.AgendaItemProjection{ItemID: 7, MeetingID: 1})
	uc := VoteUseCase{
		Ballots: store,
		Results: store,
		Outbox:  store,
		Clock:   store,
	}
	q := queries.VoteUseCase{Ballots: store, Results: store}
	return uc, q, store
}

func TestCastBallotOverwritesPriorChoice(t *testing.T) {
	uc, q, _ := newUseCase(t)
	ctx := context.Background()

	first, err := uc.CastBallot(ctx, CastBallotCommand{MeetingID: 1, VoterID: 10, Option: "for"})
	if err != nil {
		t.Fatalf("first cast: %v", err)
	}

	second, err := uc.CastBallot(ctx, CastBallotCommand{MeetingID: 1, VoterID: 10, Option: "against"})
	if err != nil {
		t.Fatalf("second cast: %v", err)
	}
	if second.BallotID != first.BallotID {
		t.Fatalf("recast created a new row: first id %d, second id %d", first.BallotID, second.BallotID)
	}
	if second.Option != "against" {
		t.Fatalf("option not overwritten: got %q", second.Option)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updated_at not advanced on overwrite")
	}

	ballots, err := q.ListMeetingBallots(ctx, 1)
	if err != nil {
		t.Fatalf("list ballots: %v", err)
	}
	if len(ballots) != 1 {
		t.Fatalf("expected a single ballot after recast, got %d", len(ballots))
	}
}

func TestCastBallotRequiresExistingMeeting(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.CastBallot(context.Background(), CastBallotCommand{MeetingID: 99, VoterID: 10, Option: "for"})
	if !errors.Is(err, votingerrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestCastBallotRejectsEmptyOption(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.CastBallot(context.Background(), CastBallotCommand{MeetingID: 1, VoterID: 10, Option: "   "})
	if !errors.Is(err, votingerrors.ErrInvalidBallotInput) {
		t.Fatalf("expected ErrInvalidBallotInput, got %v", err)
	}
}

func TestRecordVoteResultReplacesPriorRow(t *testing.T) {
	uc, q, _ := newUseCase(t)
	ctx := context.Background()

	first, err := uc.RecordVoteResult(ctx, RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     5,
		VotesAgainst: 2,
		VotesAbstain: 1,
		TotalVotes:   8,
		Result:       entities.OutcomeApproved,
	})
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	second, err := uc.RecordVoteResult(ctx, RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     6,
		VotesAgainst: 2,
		VotesAbstain: 1,
		TotalVotes:   9,
		Result:       entities.OutcomeApproved,
	})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if second.ResultID != first.ResultID {
		t.Fatalf("re-record created a new row: first id %d, second id %d", first.ResultID, second.ResultID)
	}
	if second.VotesFor != 6 || second.TotalVotes != 9 {
		t.Fatalf("counts not replaced: got for=%d total=%d", second.VotesFor, second.TotalVotes)
	}
	if !second.VotedAt.After(first.VotedAt) {
		t.Fatalf("voted_at not reset on re-record")
	}

	stored, found, err := q.GetVoteResult(ctx, 7)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if !found {
		t.Fatalf("expected a stored result")
	}
	if stored.VotesFor != 6 || stored.VotesAgainst != 2 || stored.VotesAbstain != 1 || stored.TotalVotes != 9 {
		t.Fatalf("stored row does not match second write: %+v", stored)
	}
}

func TestRecordVoteResultRequiresExistingItem(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.RecordVoteResult(context.Background(), RecordVoteResultCommand{
		AgendaItemID: 99,
		VotesFor:     1,
		Result:       entities.OutcomeApproved,
	})
	if !errors.Is(err, votingerrors.ErrAgendaItemNotFound) {
		t.Fatalf("expected ErrAgendaItemNotFound, got %v", err)
	}
}

func TestRecordVoteResultRejectsInvalidInput(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.RecordVoteResult(ctx, RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     -1,
		Result:       entities.OutcomeApproved,
	})
	if !errors.Is(err, votingerrors.ErrInvalidResultInput) {
		t.Fatalf("negative count: expected ErrInvalidResultInput, got %v", err)
	}

	_, err = uc.RecordVoteResult(ctx, RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     1,
		Result:       entities.Outcome("maybe"),
	})
	if !errors.Is(err, votingerrors.ErrInvalidResultInput) {
		t.Fatalf("unknown outcome: expected ErrInvalidResultInput, got %v", err)
	}
}

func TestRecordVoteResultDefaultsTotalToCountSum(t *testing.T) {
	uc, _, _ := newUseCase(t)

	result, err := uc.RecordVoteResult(context.Background(), RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     4,
		VotesAgainst: 3,
		VotesAbstain: 2,
		Result:       entities.OutcomeApproved,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if result.TotalVotes != 9 {
		t.Fatalf("expected total defaulted to 9, got %d", result.TotalVotes)
	}
}

func TestRecordVoteResultStagesOutboxEvent(t *testing.T) {
	uc, _, store := newUseCase(t)
	ctx := context.Background()

	if _, err := uc.RecordVoteResult(ctx, RecordVoteResultCommand{
		ActorID:      3,
		AgendaItemID: 7,
		VotesFor:     5,
		VotesAgainst: 2,
		VotesAbstain: 1,
		TotalVotes:   8,
		Result:       entities.OutcomeApproved,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one pending outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "vote_result.recorded" {
		t.Fatalf("unexpected event type %q", pending[0].EventType)
	}
	if pending[0].PartitionKey != "1" {
		t.Fatalf("expected partition key by meeting, got %q", pending[0].PartitionKey)
	}
}
