package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"agora/contexts/meeting-governance/meeting-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/meeting-service/domain/errors"
	"agora/contexts/meeting-governance/meeting-service/ports"
)

// Store is an in-memory implementation of the meeting ports used by tests and
// local development.
type Store struct {
	mu              sync.Mutex
	nextCommitteeID int64
	nextMeetingID   int64
	nowCounter      int64

	committees map[int64]entities.Committee
	meetings   map[int64]entities.Meeting
}

func NewStore() *Store {
	return &Store{
		committees: make(map[int64]entities.Committee),
		meetings:   make(map[int64]entities.Meeting),
	}
}

func (s *Store) InsertCommittee(_ context.Context, committee entities.Committee) (entities.Committee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCommitteeID++
	committee.CommitteeID = s.nextCommitteeID
	s.committees[committee.CommitteeID] = committee
	return committee, nil
}

func (s *Store) GetCommittee(_ context.Context, committeeID int64) (entities.Committee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	committee, ok := s.committees[committeeID]
	if !ok {
		return entities.Committee{}, domainerrors.ErrCommitteeNotFound
	}
	return committee, nil
}

func (s *Store) ListCommittees(_ context.Context) ([]entities.Committee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.Committee, 0, len(s.committees))
	for _, committee := range s.committees {
		items = append(items, committee)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CommitteeID < items[j].CommitteeID
	})
	return items, nil
}

func (s *Store) InsertMeeting(_ context.Context, meeting entities.Meeting) (entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.committees[meeting.CommitteeID]; !ok {
		return entities.Meeting{}, domainerrors.ErrCommitteeNotFound
	}

	s.nextMeetingID++
	meeting.MeetingID = s.nextMeetingID
	s.meetings[meeting.MeetingID] = meeting
	return meeting, nil
}

func (s *Store) GetMeeting(_ context.Context, meetingID int64) (entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[meetingID]
	if !ok {
		return entities.Meeting{}, domainerrors.ErrMeetingNotFound
	}
	return meeting, nil
}

func (s *Store) ListMeetings(_ context.Context) ([]entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMeetings(func(entities.Meeting) bool { return true }), nil
}

func (s *Store) ListMeetingsByCommittee(_ context.Context, committeeID int64) ([]entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMeetings(func(meeting entities.Meeting) bool {
		return meeting.CommitteeID == committeeID
	}), nil
}

func (s *Store) UpdateMeetingStatus(_ context.Context, meetingID int64, status entities.MeetingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[meetingID]
	if !ok {
		return domainerrors.ErrMeetingNotFound
	}
	meeting.Status = status
	s.meetings[meetingID] = meeting
	return nil
}

// sortedMeetings orders latest-scheduled first with unscheduled meetings last,
// matching the postgres adapter's ordering.
func (s *Store) sortedMeetings(keep func(entities.Meeting) bool) []entities.Meeting {
	items := make([]entities.Meeting, 0)
	for _, meeting := range s.meetings {
		if keep(meeting) {
			items = append(items, meeting)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		left, right := items[i].ScheduledAt, items[j].ScheduledAt
		switch {
		case left == nil && right == nil:
			return items[i].MeetingID > items[j].MeetingID
		case left == nil:
			return false
		case right == nil:
			return true
		case !left.Equal(*right):
			return left.After(*right)
		default:
			return items[i].MeetingID > items[j].MeetingID
		}
	})
	return items
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowCounter++
	return time.Unix(1700000000, 0).UTC().Add(time.Duration(s.nowCounter) * time.Second)
}

var _ ports.CommitteeRepository = (*Store)(nil)
var _ ports.MeetingRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
