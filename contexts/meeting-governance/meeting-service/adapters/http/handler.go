package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/meeting-governance/meeting-service/application/commands"
	"agora/contexts/meeting-governance/meeting-service/application/queries"
	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	meetingerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
	httptransport "agora/contexts/meeting-governance/meeting-service/transport/http"
)

type Handler struct {
	Commands commands.MeetingUseCase
	Queries  queries.MeetingUseCase
	Logger   *slog.Logger
}

func (h Handler) CreateCommitteeHandler(
	ctx context.Context,
	actorID int64,
	req httptransport.CreateCommitteeRequest,
) (httptransport.CommitteeResponse, error) {
	committee, err := h.Commands.CreateCommittee(ctx, commands.CreateCommitteeCommand{
		ActorID:     actorID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.CommitteeResponse{}, err
	}
	return mapCommittee(committee), nil
}

func (h Handler) ListCommitteesHandler(ctx context.Context) (httptransport.CommitteeListResponse, error) {
	committees, err := h.Queries.ListCommittees(ctx)
	if err != nil {
		return httptransport.CommitteeListResponse{}, err
	}
	mapped := make([]httptransport.CommitteeResponse, 0, len(committees))
	for _, committee := range committees {
		mapped = append(mapped, mapCommittee(committee))
	}
	return httptransport.CommitteeListResponse{Committees: mapped}, nil
}

func (h Handler) GetCommitteeHandler(ctx context.Context, committeeID int64) (httptransport.CommitteeResponse, error) {
	committee, err := h.Queries.GetCommittee(ctx, committeeID)
	if err != nil {
		return httptransport.CommitteeResponse{}, err
	}
	return mapCommittee(committee), nil
}

func (h Handler) CreateMeetingHandler(
	ctx context.Context,
	actorID int64,
	req httptransport.CreateMeetingRequest,
) (httptransport.MeetingResponse, error) {
	var scheduledAt *time.Time
	if strings.TrimSpace(req.ScheduledAt) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(req.ScheduledAt))
		if err != nil {
			return httptransport.MeetingResponse{}, meetingerrors.ErrInvalidMeetingInput
		}
		scheduledAt = &parsed
	}

	meeting, err := h.Commands.CreateMeeting(ctx, commands.CreateMeetingCommand{
		ActorID:     actorID,
		CommitteeID: req.CommitteeID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		return httptransport.MeetingResponse{}, err
	}
	return mapMeeting(meeting), nil
}

func (h Handler) ListMeetingsHandler(ctx context.Context) (httptransport.MeetingListResponse, error) {
	meetings, err := h.Queries.ListMeetings(ctx)
	if err != nil {
		return httptransport.MeetingListResponse{}, err
	}
	return httptransport.MeetingListResponse{Meetings: mapMeetings(meetings)}, nil
}

func (h Handler) ListCommitteeMeetingsHandler(ctx context.Context, committeeID int64) (httptransport.MeetingListResponse, error) {
	meetings, err := h.Queries.ListCommitteeMeetings(ctx, committeeID)
	if err != nil {
		return httptransport.MeetingListResponse{}, err
	}
	return httptransport.MeetingListResponse{Meetings: mapMeetings(meetings)}, nil
}

func (h Handler) GetMeetingHandler(ctx context.Context, meetingID int64) (httptransport.MeetingResponse, error) {
	meeting, err := h.Queries.GetMeeting(ctx, meetingID)
	if err != nil {
		return httptransport.MeetingResponse{}, err
	}
	return mapMeeting(meeting), nil
}

func (h Handler) UpdateMeetingStatusHandler(
	ctx context.Context,
	actorID int64,
	meetingID int64,
	req httptransport.UpdateMeetingStatusRequest,
) (httptransport.MeetingResponse, error) {
	meeting, err := h.Commands.UpdateMeetingStatus(ctx, commands.UpdateMeetingStatusCommand{
		ActorID:   actorID,
		MeetingID: meetingID,
		Status:    entities.MeetingStatus(req.Status),
	})
	if err != nil {
		return httptransport.MeetingResponse{}, err
	}
	return mapMeeting(meeting), nil
}

func mapCommittee(committee entities.Committee) httptransport.CommitteeResponse {
	return httptransport.CommitteeResponse{
		ID:          committee.CommitteeID,
		Name:        committee.Name,
		Description: committee.Description,
		CreatedAt:   committee.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapMeeting(meeting entities.Meeting) httptransport.MeetingResponse {
	response := httptransport.MeetingResponse{
		ID:          meeting.MeetingID,
		CommitteeID: meeting.CommitteeID,
		Title:       meeting.Title,
		Description: meeting.Description,
		Location:    meeting.Location,
		Status:      string(meeting.Status),
		CreatedBy:   meeting.CreatedBy,
		CreatedAt:   meeting.CreatedAt.UTC().Format(time.RFC3339),
	}
	if meeting.ScheduledAt != nil {
		response.ScheduledAt = meeting.ScheduledAt.UTC().Format(time.RFC3339)
	}
	return response
}

func mapMeetings(meetings []entities.Meeting) []httptransport.MeetingResponse {
	mapped := make([]httptransport.MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		mapped = append(mapped, mapMeeting(meeting))
	}
	return mapped
}
