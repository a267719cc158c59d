package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"agora/contexts/civic-communication/bulletin-service/domain/entities"
	domainerrors "agora/contexts/civic-communication/bulletin-service/domain/errors"
	"agora/contexts/civic-communication/bulletin-service/ports"
)

type Store struct {
	mu                 sync.Mutex
	nextAnnouncementID int64
	nextTaskID         int64
	nowCounter         int64

	announcements map[int64]entities.Announcement
	tasks         map[int64]entities.Task
}

func NewStore() *Store {
	return &Store{
		announcements: make(map[int64]entities.Announcement),
		tasks:         make(map[int64]entities.Task),
	}
}

func (s *Store) InsertAnnouncement(_ context.Context, announcement entities.Announcement) (entities.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAnnouncementID++
	announcement.AnnouncementID = s.nextAnnouncementID
	s.announcements[announcement.AnnouncementID] = announcement
	return announcement, nil
}

func (s *Store) ListAnnouncements(_ context.Context) ([]entities.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		items = append(items, announcement)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].AnnouncementID > items[j].AnnouncementID
	})
	return items, nil
}

func (s *Store) InsertTask(_ context.Context, task entities.Task) (entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTaskID++
	task.TaskID = s.nextTaskID
	s.tasks[task.TaskID] = task
	return task, nil
}

func (s *Store) GetTask(_ context.Context, taskID int64) (entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return task, nil
}

func (s *Store) ListTasks(_ context.Context) ([]entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		items = append(items, task)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].TaskID > items[j].TaskID
	})
	return items, nil
}

func (s *Store) UpdateTaskStatus(_ context.Context, taskID int64, status entities.TaskStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return domainerrors.ErrTaskNotFound
	}
	task.Status = status
	task.UpdatedAt = updatedAt
	s.tasks[taskID] = task
	return nil
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowCounter++
	return time.Unix(1700000000, 0).UTC().Add(time.Duration(s.nowCounter) * time.Second)
}

var _ ports.AnnouncementRepository = (*Store)(nil)
var _ ports.TaskRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
