package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	domainerrors "agora/contexts/meeting-governance/agenda-service/domain/errors"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

type Store struct {
	mu sync.RWMutex

	nextItemID    int64
	nextCommentID int64

	items    map[int64]entities.AgendaItem
	comments map[int64]entities.AgendaComment
	meetings map[int64]ports.MeetingProjection
}

func NewStore(seed []entities.AgendaItem) *Store {
	items := make(map[int64]entities.AgendaItem, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ItemID] = item
		if item.ItemID > maxID {
			maxID = item.ItemID
		}
	}
	return &Store{
		nextItemID: maxID,
		items:      items,
		comments:   make(map[int64]entities.AgendaComment),
		meetings:   make(map[int64]ports.MeetingProjection),
	}
}

func (s *Store) SetMeeting(meeting ports.MeetingProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings[meeting.MeetingID] = meeting
}

func (s *Store) InsertItem(_ context.Context, item entities.AgendaItem) (entities.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meetings[item.MeetingID]; !ok {
		return entities.AgendaItem{}, domainerrors.ErrMeetingNotFound
	}
	s.nextItemID++
	item.ItemID = s.nextItemID
	s.items[item.ItemID] = item
	return item, nil
}

func (s *Store) GetItem(_ context.Context, itemID int64) (entities.AgendaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok {
		return entities.AgendaItem{}, domainerrors.ErrAgendaItemNotFound
	}
	return item, nil
}

func (s *Store) ListItemsByMeeting(_ context.Context, meetingID int64) ([]entities.AgendaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.AgendaItem, 0)
	for _, item := range s.items {
		if item.MeetingID == meetingID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OrderIndex == items[j].OrderIndex {
			return items[i].ItemID < items[j].ItemID
		}
		return items[i].OrderIndex < items[j].OrderIndex
	})
	return items, nil
}

func (s *Store) UpdateItemStatus(
	_ context.Context,
	itemID int64,
	status entities.ItemStatus,
	updatedAt time.Time,
) (entities.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return entities.AgendaItem{}, domainerrors.ErrAgendaItemNotFound
	}
	item.Status = status
	item.UpdatedAt = updatedAt.UTC()
	s.items[itemID] = item
	return item, nil
}

func (s *Store) ReassignOrder(
	_ context.Context,
	meetingID int64,
	orderedItemIDs []int64,
	updatedAt time.Time,
) ([]entities.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range orderedItemIDs {
		item, ok := s.items[id]
		if !ok || item.MeetingID != meetingID {
			return nil, domainerrors.ErrInvalidReorder
		}
	}
	updated := make([]entities.AgendaItem, 0, len(orderedItemIDs))
	for position, id := range orderedItemIDs {
		item := s.items[id]
		item.OrderIndex = position
		item.UpdatedAt = updatedAt.UTC()
		s.items[id] = item
		updated = append(updated, item)
	}
	return updated, nil
}

func (s *Store) GetMeeting(_ context.Context, meetingID int64) (ports.MeetingProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meeting, ok := s.meetings[meetingID]
	if !ok {
		return ports.MeetingProjection{}, domainerrors.ErrMeetingNotFound
	}
	return meeting, nil
}

func (s *Store) InsertComment(_ context.Context, comment entities.AgendaComment) (entities.AgendaComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.CommentID = s.nextCommentID
	s.comments[comment.CommentID] = comment
	return comment, nil
}

func (s *Store) ListCommentsByItem(_ context.Context, itemID int64) ([]entities.AgendaComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comments := make([]entities.AgendaComment, 0)
	for _, comment := range s.comments {
		if comment.ItemID == itemID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CommentID < comments[j].CommentID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// Now satisfies ports.Clock so the in-memory module can run without wiring.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.AgendaRepository = (*Store)(nil)
var _ ports.CommentRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
