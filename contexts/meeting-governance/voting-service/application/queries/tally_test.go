package queries

import (
	"context"
	"errors"
	"testing"

	"agora/contexts/meeting-governance/voting-service/adapters/memory"
	"agora/contexts/meeting-governance/voting-service/application/commands"
	votingerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
)

func newQueryUseCase(t *testing.T) (VoteUseCase, commands.VoteUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, Status: "in_progress"})
	store.SetAgendaItem(ports.AgendaItemProjection{ItemID: 7, MeetingID: 1})
	q := VoteUseCase{Ballots: store, Results: store}
	c := commands.VoteUseCase{Ballots: store, Results: store, Clock: store}
	return q, c, store
}

func TestMeetingTallyCountsDistinctVoters(t *testing.T) {
	q, c, _ := newQueryUseCase(t)
	ctx := context.Background()

	casts := []struct {
		voterID int64
		option  string
	}{
		{voterID: 101, option: "for"},
		{voterID: 102, option: "for"},
		{voterID: 103, option: "against"},
	}
	for _, cast := range casts {
		if _, err := c.CastBallot(ctx, commands.CastBallotCommand{
			MeetingID: 1,
			VoterID:   cast.voterID,
			Option:    cast.option,
		}); err != nil {
			t.Fatalf("cast for voter %d: %v", cast.voterID, err)
		}
	}

	tally, err := q.MeetingTally(ctx, 1)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if tally.Counts["for"] != 2 || tally.Counts["against"] != 1 {
		t.Fatalf("unexpected counts: %v", tally.Counts)
	}
	if tally.TotalVoters != 3 {
		t.Fatalf("expected 3 distinct voters, got %d", tally.TotalVoters)
	}
}

func TestMeetingTallyCountsRecastOnce(t *testing.T) {
	q, c, _ := newQueryUseCase(t)
	ctx := context.Background()

	if _, err := c.CastBallot(ctx, commands.CastBallotCommand{MeetingID: 1, VoterID: 101, Option: "for"}); err != nil {
		t.Fatalf("first cast: %v", err)
	}
	if _, err := c.CastBallot(ctx, commands.CastBallotCommand{MeetingID: 1, VoterID: 101, Option: "against"}); err != nil {
		t.Fatalf("recast: %v", err)
	}

	tally, err := q.MeetingTally(ctx, 1)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if tally.Counts["for"] != 0 || tally.Counts["against"] != 1 {
		t.Fatalf("recast counted twice: %v", tally.Counts)
	}
	if tally.TotalVoters != 1 {
		t.Fatalf("expected 1 distinct voter, got %d", tally.TotalVoters)
	}
}

func TestMeetingTallyUnknownMeetingFails(t *testing.T) {
	q, _, _ := newQueryUseCase(t)

	_, err := q.MeetingTally(context.Background(), 99)
	if !errors.Is(err, votingerrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestGetVoteResultReportsAbsenceWithoutError(t *testing.T) {
	q, _, _ := newQueryUseCase(t)

	result, found, err := q.GetVoteResult(context.Background(), 7)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if found {
		t.Fatalf("expected no result for a never-voted item, got %+v", result)
	}
}

func TestGetVoteResultUnknownItemFails(t *testing.T) {
	q, _, _ := newQueryUseCase(t)

	_, _, err := q.GetVoteResult(context.Background(), 99)
	if !errors.Is(err, votingerrors.ErrAgendaItemNotFound) {
		t.Fatalf("expected ErrAgendaItemNotFound, got %v", err)
	}
}
