package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agora/contexts/meeting-governance/voting-service/application/commands"
	"agora/contexts/meeting-governance/voting-service/application/queries"
	"agora/contexts/meeting-governance/voting-service/domain/entities"
	httptransport "agora/contexts/meeting-governance/voting-service/transport/http"
)

type Handler struct {
	Commands commands.VoteUseCase
	Queries  queries.VoteUseCase
	Logger   *slog.Logger
}

func (h Handler) CastBallotHandler(
	ctx context.Context,
	voterID int64,
	meetingID int64,
	req httptransport.CastBallotRequest,
) (httptransport.BallotResponse, error) {
	ballot, err := h.Commands.CastBallot(ctx, commands.CastBallotCommand{
		MeetingID: meetingID,
		VoterID:   voterID,
		Option:    req.Vote,
	})
	if err != nil {
		return httptransport.BallotResponse{}, err
	}
	return mapBallot(ballot), nil
}

func (h Handler) MeetingTallyHandler(ctx context.Context, meetingID int64) (httptransport.MeetingTallyResponse, error) {
	tally, err := h.Queries.MeetingTally(ctx, meetingID)
	if err != nil {
		return httptransport.MeetingTallyResponse{}, err
	}
	return httptransport.MeetingTallyResponse{
		MeetingID:   tally.MeetingID,
		Counts:      tally.Counts,
		TotalVoters: tally.TotalVoters,
	}, nil
}

func (h Handler) ListMeetingBallotsHandler(ctx context.Context, meetingID int64) (httptransport.BallotListResponse, error) {
	ballots, err := h.Queries.ListMeetingBallots(ctx, meetingID)
	if err != nil {
		return httptransport.BallotListResponse{}, err
	}
	mapped := make([]httptransport.BallotResponse, 0, len(ballots))
	for _, ballot := range ballots {
		mapped = append(mapped, mapBallot(ballot))
	}
	return httptransport.BallotListResponse{
		MeetingID: meetingID,
		Ballots:   mapped,
		Count:     len(mapped),
	}, nil
}

func (h Handler) RecordVoteResultHandler(
	ctx context.Context,
	actorID int64,
	agendaItemID int64,
	req httptransport.RecordVoteResultRequest,
) (httptransport.VoteResultResponse, error) {
	result, err := h.Commands.RecordVoteResult(ctx, commands.RecordVoteResultCommand{
		ActorID:      actorID,
		AgendaItemID: agendaItemID,
		VotesFor:     req.VotesFor,
		VotesAgainst: req.VotesAgainst,
		VotesAbstain: req.VotesAbstain,
		TotalVotes:   req.TotalVotes,
		Result:       entities.Outcome(req.Result),
	})
	if err != nil {
		return httptransport.VoteResultResponse{}, err
	}
	return mapResult(result), nil
}

func (h Handler) GetVoteResultHandler(ctx context.Context, agendaItemID int64) (httptransport.OptionalVoteResultResponse, error) {
	result, found, err := h.Queries.GetVoteResult(ctx, agendaItemID)
	if err != nil {
		return httptransport.OptionalVoteResultResponse{}, err
	}
	response := httptransport.OptionalVoteResultResponse{
		AgendaItemID: agendaItemID,
		HasResult:    found,
	}
	if found {
		mapped := mapResult(result)
		response.Result = &mapped
	}
	return response, nil
}

func mapBallot(ballot entities.Ballot) httptransport.BallotResponse {
	return httptransport.BallotResponse{
		ID:        ballot.BallotID,
		MeetingID: ballot.MeetingID,
		UserID:    ballot.VoterID,
		Vote:      ballot.Option,
		CreatedAt: ballot.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: ballot.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapResult(result entities.VoteResult) httptransport.VoteResultResponse {
	return httptransport.VoteResultResponse{
		ID:           result.ResultID,
		AgendaItemID: result.AgendaItemID,
		VotesFor:     result.VotesFor,
		VotesAgainst: result.VotesAgainst,
		VotesAbstain: result.VotesAbstain,
		TotalVotes:   result.TotalVotes,
		Result:       string(result.Result),
		VotedAt:      result.VotedAt.UTC().Format(time.RFC3339),
	}
}
