package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"agora/contexts/meeting-governance/voting-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/voting-service/domain/errors"
	"agora/contexts/meeting-governance/voting-service/ports"
	"agora/internal/shared/outbox"
)

type ballotKey struct {
	meetingID int64
	voterID   int64
}

// Store is an in-memory implementation of the voting ports used by tests and
// local development.
type Store struct {
	mu           sync.Mutex
	nextBallotID int64
	nextResultID int64
	nextOutboxID int64
	nowCounter   int64

	ballots   map[ballotKey]entities.Ballot
	results   map[int64]entities.VoteResult
	meetings  map[int64]ports.MeetingProjection
	items     map[int64]ports.AgendaItemProjection
	outbox    map[int64]outbox.Message
	published map[int64]time.Time
}

func NewStore() *Store {
	return &Store{
		ballots:   make(map[ballotKey]entities.Ballot),
		results:   make(map[int64]entities.VoteResult),
		meetings:  make(map[int64]ports.MeetingProjection),
		items:     make(map[int64]ports.AgendaItemProjection),
		outbox:    make(map[int64]outbox.Message),
		published: make(map[int64]time.Time),
	}
}

// SetMeeting seeds a meeting projection for reference checks.
func (s *Store) SetMeeting(meeting ports.MeetingProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings[meeting.MeetingID] = meeting
}

// SetAgendaItem seeds an agenda item projection for reference checks.
func (s *Store) SetAgendaItem(item ports.AgendaItemProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ItemID] = item
}

func (s *Store) UpsertBallot(_ context.Context, ballot entities.Ballot) (entities.Ballot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meetings[ballot.MeetingID]; !ok {
		return entities.Ballot{}, domainerrors.ErrMeetingNotFound
	}

	key := ballotKey{meetingID: ballot.MeetingID, voterID: ballot.VoterID}
	if existing, ok := s.ballots[key]; ok {
		existing.Option = ballot.Option
		existing.UpdatedAt = ballot.UpdatedAt
		s.ballots[key] = existing
		return existing, nil
	}

	s.nextBallotID++
	ballot.BallotID = s.nextBallotID
	s.ballots[key] = ballot
	return ballot, nil
}

func (s *Store) ListBallotsByMeeting(_ context.Context, meetingID int64) ([]entities.Ballot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.Ballot, 0)
	for key, ballot := range s.ballots {
		if key.meetingID == meetingID {
			items = append(items, ballot)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].BallotID < items[j].BallotID
	})
	return items, nil
}

func (s *Store) GetMeeting(_ context.Context, meetingID int64) (ports.MeetingProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[meetingID]
	if !ok {
		return ports.MeetingProjection{}, domainerrors.ErrMeetingNotFound
	}
	return meeting, nil
}

func (s *Store) UpsertResult(_ context.Context, result entities.VoteResult) (entities.VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[result.AgendaItemID]; !ok {
		return entities.VoteResult{}, domainerrors.ErrAgendaItemNotFound
	}

	if existing, ok := s.results[result.AgendaItemID]; ok {
		result.ResultID = existing.ResultID
	} else {
		s.nextResultID++
		result.ResultID = s.nextResultID
	}
	s.results[result.AgendaItemID] = result
	return result, nil
}

func (s *Store) GetResultByItem(_ context.Context, agendaItemID int64) (entities.VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[agendaItemID]
	if !ok {
		return entities.VoteResult{}, domainerrors.ErrResultNotFound
	}
	return result, nil
}

func (s *Store) GetAgendaItem(_ context.Context, agendaItemID int64) (ports.AgendaItemProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[agendaItemID]
	if !ok {
		return ports.AgendaItemProjection{}, domainerrors.ErrAgendaItemNotFound
	}
	return item, nil
}

func (s *Store) AppendOutbox(_ context.Context, message outbox.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOutboxID++
	message.OutboxID = s.nextOutboxID
	s.outbox[message.OutboxID] = message
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]outbox.Message, 0)
	for id, message := range s.outbox {
		if _, done := s.published[id]; done {
			continue
		}
		items = append(items, message)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].OutboxID < items[j].OutboxID
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID int64, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrConflict
	}
	s.published[outboxID] = publishedAt
	return nil
}

// Now returns a strictly increasing timestamp so upsert ordering is
// deterministic inside a single test.
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowCounter++
	return time.Unix(1700000000, 0).UTC().Add(time.Duration(s.nowCounter) * time.Second)
}

var _ ports.BallotRepository = (*Store)(nil)
var _ ports.ResultRepository = (*Store)(nil)
var _ ports.OutboxWriter = (*Store)(nil)
var _ ports.OutboxRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
