package queries

import (
	"context"

	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	"agora/contexts/meeting-governance/meeting-service/ports"
)

type MeetingUseCase struct {
	Committees ports.CommitteeRepository
	Meetings   ports.MeetingRepository
}

func (uc MeetingUseCase) ListCommittees(ctx context.Context) ([]entities.Committee, error) {
	return uc.Committees.ListCommittees(ctx)
}

func (uc MeetingUseCase) GetCommittee(ctx context.Context, committeeID int64) (entities.Committee, error) {
	return uc.Committees.GetCommittee(ctx, committeeID)
}

func (uc MeetingUseCase) ListMeetings(ctx context.Context) ([]entities.Meeting, error) {
	return uc.Meetings.ListMeetings(ctx)
}

func (uc MeetingUseCase) ListCommitteeMeetings(ctx context.Context, committeeID int64) ([]entities.Meeting, error) {
	if _, err := uc.Committees.GetCommittee(ctx, committeeID); err != nil {
		return nil, err
	}
	return uc.Meetings.ListMeetingsByCommittee(ctx, committeeID)
}

func (uc MeetingUseCase) GetMeeting(ctx context.Context, meetingID int64) (entities.Meeting, error) {
	return uc.Meetings.GetMeeting(ctx, meetingID)
}
