package queries

import (
	"context"
	"errors"

	"agora/contexts/meeting-governance/voting-service/domain/entities"
	votingerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
)

type VoteUseCase struct {
	Ballots ports.BallotRepository
	Results ports.ResultRepository
}

// MeetingTally aggregates the meeting's ballots into option counts plus the
// number of distinct voters. Overwritten ballots count once.
func (uc VoteUseCase) MeetingTally(ctx context.Context, meetingID int64) (entities.MeetingTally, error) {
	if _, err := uc.Ballots.GetMeeting(ctx, meetingID); err != nil {
		return entities.MeetingTally{}, err
	}

	ballots, err := uc.Ballots.ListBallotsByMeeting(ctx, meetingID)
	if err != nil {
		return entities.MeetingTally{}, err
	}

	tally := entities.MeetingTally{
		MeetingID: meetingID,
		Counts:    make(map[string]int),
	}
	voters := make(map[int64]struct{})
	for _, ballot := range ballots {
		tally.Counts[ballot.Option]++
		voters[ballot.VoterID] = struct{}{}
	}
	tally.TotalVoters = len(voters)
	return tally, nil
}

func (uc VoteUseCase) ListMeetingBallots(ctx context.Context, meetingID int64) ([]entities.Ballot, error) {
	if _, err := uc.Ballots.GetMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	return uc.Ballots.ListBallotsByMeeting(ctx, meetingID)
}

// GetVoteResult fetches the recorded result for an agenda item. The second
// return reports whether a result exists; an item with no recorded result is
// not an error.
func (uc VoteUseCase) GetVoteResult(ctx context.Context, agendaItemID int64) (entities.VoteResult, bool, error) {
	if _, err := uc.Results.GetAgendaItem(ctx, agendaItemID); err != nil {
		return entities.VoteResult{}, false, err
	}

	result, err := uc.Results.GetResultByItem(ctx, agendaItemID)
	if err != nil {
		if errors.Is(err, votingerrors.ErrResultNotFound) {
			return entities.VoteResult{}, false, nil
		}
		return entities.VoteResult{}, false, err
	}
	return result, true, nil
}
