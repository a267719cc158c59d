package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/meeting-governance/meeting-service/application"
	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	meetingerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
	"agora/contexts/meeting-governance/meeting-service/ports"
)

type CreateCommitteeCommand struct {
	ActorID     int64
	Name        string
	Description string
}

type CreateMeetingCommand struct {
	ActorID     int64
	CommitteeID int64
	Title       string
	Description string
	Location    string
	ScheduledAt *time.Time
}

type UpdateMeetingStatusCommand struct {
	ActorID   int64
	MeetingID int64
	Status    entities.MeetingStatus
}

type MeetingUseCase struct {
	Committees ports.CommitteeRepository
	Meetings   ports.MeetingRepository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc MeetingUseCase) CreateCommittee(ctx context.Context, cmd CreateCommitteeCommand) (entities.Committee, error) {
	logger := application.ResolveLogger(uc.Logger)

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Committee{}, meetingerrors.ErrInvalidCommitteeInput
	}

	committee, err := uc.Committees.InsertCommittee(ctx, entities.Committee{
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		CreatedAt:   uc.now(),
	})
	if err != nil {
		return entities.Committee{}, err
	}

	logger.Info("committee created",
		slog.String("event", "committee_created"),
		slog.Int64("committee_id", committee.CommitteeID),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return committee, nil
}

func (uc MeetingUseCase) CreateMeeting(ctx context.Context, cmd CreateMeetingCommand) (entities.Meeting, error) {
	logger := application.ResolveLogger(uc.Logger)

	title := strings.TrimSpace(cmd.Title)
	if cmd.CommitteeID <= 0 || title == "" {
		return entities.Meeting{}, meetingerrors.ErrInvalidMeetingInput
	}

	if _, err := uc.Committees.GetCommittee(ctx, cmd.CommitteeID); err != nil {
		return entities.Meeting{}, err
	}

	meeting, err := uc.Meetings.InsertMeeting(ctx, entities.Meeting{
		CommitteeID: cmd.CommitteeID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Location:    strings.TrimSpace(cmd.Location),
		ScheduledAt: cmd.ScheduledAt,
		Status:      entities.MeetingStatusScheduled,
		CreatedBy:   cmd.ActorID,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		return entities.Meeting{}, err
	}

	logger.Info("meeting created",
		slog.String("event", "meeting_created"),
		slog.Int64("meeting_id", meeting.MeetingID),
		slog.Int64("committee_id", meeting.CommitteeID),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return meeting, nil
}

func (uc MeetingUseCase) UpdateMeetingStatus(ctx context.Context, cmd UpdateMeetingStatusCommand) (entities.Meeting, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !cmd.Status.Valid() {
		return entities.Meeting{}, meetingerrors.ErrInvalidMeetingInput
	}

	meeting, err := uc.Meetings.GetMeeting(ctx, cmd.MeetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	if meeting.Status == cmd.Status {
		return meeting, nil
	}
	if !meeting.Status.CanTransition(cmd.Status) {
		return entities.Meeting{}, meetingerrors.ErrInvalidStatusTransition
	}

	if err := uc.Meetings.UpdateMeetingStatus(ctx, cmd.MeetingID, cmd.Status); err != nil {
		return entities.Meeting{}, err
	}
	meeting.Status = cmd.Status

	logger.Info("meeting status updated",
		slog.String("event", "meeting_status_updated"),
		slog.Int64("meeting_id", meeting.MeetingID),
		slog.String("status", string(meeting.Status)),
		slog.Int64("actor_id", cmd.ActorID),
	)
	return meeting, nil
}

func (uc MeetingUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now()
	}
	return time.Now()
}
