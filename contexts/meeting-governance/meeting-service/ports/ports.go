package ports

import (
	"context"
	"time"

	"agora/contexts/meeting-governance/meeting-service/domain/entities"
)

type CommitteeRepository interface {
	InsertCommittee(ctx context.Context, committee entities.Committee) (entities.Committee, error)
	GetCommittee(ctx context.Context, committeeID int64) (entities.Committee, error)
	ListCommittees(ctx context.Context) ([]entities.Committee, error)
}

type MeetingRepository interface {
	InsertMeeting(ctx context.Context, meeting entities.Meeting) (entities.Meeting, error)
	GetMeeting(ctx context.Context, meetingID int64) (entities.Meeting, error)
	ListMeetings(ctx context.Context) ([]entities.Meeting, error)
	ListMeetingsByCommittee(ctx context.Context, committeeID int64) ([]entities.Meeting, error)
	UpdateMeetingStatus(ctx context.Context, meetingID int64, status entities.MeetingStatus) error
}

type Clock interface {
	Now() time.Time
}
