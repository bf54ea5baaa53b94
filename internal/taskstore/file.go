package taskstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fileData is the persisted layout of the store: the full task list plus
// the next-id counter, as a single JSON document.
type fileData struct {
	Tasks  []*Task `json:"tasks"`
	NextID int     `json:"next_id"`
}

// FileStore implements the Store interface backed by a single JSON file.
// Every mutation persists the full store before returning; a failed write
// rolls the mutation back so the in-memory state always matches disk.
//
// The store is written for one process at a time. An advisory lock on a
// sidecar file guards against a second instance racing the same data file;
// it does not make the store multi-user.
type FileStore struct {
	path   string
	flk    *flock.Flock
	logger logrus.FieldLogger

	mu     sync.RWMutex
	tasks  []*Task
	nextID int
}

// NewFileStore creates a FileStore persisting to the given file path.
// The parent directory is created if it does not exist. An existing data
// file is loaded; a missing file yields an empty store, and a malformed
// file is logged and discarded in favor of an empty store (counter reset
// to 1) rather than failing.
func NewFileStore(path string, logger logrus.FieldLogger) (*FileStore, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &FileStore{
		path:   path,
		flk:    flock.New(path + ".lock"),
		logger: logger,
		nextID: 1,
	}
	s.load()
	return s, nil
}

// Path returns the data file path backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// load reads the persisted state into memory. It never fails: a missing
// file initializes an empty store, and unreadable or malformed data is
// logged and replaced by an empty store. Losing corrupt data is an
// explicit policy; the running session stays usable.
func (s *FileStore) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.nextID = 1

	if err := s.flk.RLock(); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("could not lock data file, starting empty")
		return
	}
	defer func() { _ = s.flk.Unlock() }()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("path", s.path).Warn("could not read data file, starting empty")
		}
		return
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("data file is malformed, starting empty")
		return
	}

	if data.NextID < 1 {
		s.logger.WithField("path", s.path).WithField("next_id", data.NextID).
			Warn("data file has invalid next_id, starting empty")
		return
	}

	s.tasks = data.Tasks
	s.nextID = data.NextID
}

// save writes the full store to disk atomically: the document is written
// to a uniquely named temp file and renamed over the data file, under the
// advisory lock. Caller must hold the write lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(fileData{Tasks: s.tasks, NextID: s.nextID}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock data file: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	// Unique temp name so a second process never clobbers our write
	tmpFile := s.path + ".tmp-" + uuid.New().String()[:8]
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Get retrieves a task by its ID.
func (s *FileStore) Get(id int) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return nil, &NotFoundError{ID: id}
}

// indexOf returns the position of the task with the given ID, or -1.
// Caller must hold at least a read lock.
func (s *FileStore) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// List retrieves all tasks in insertion order.
func (s *FileStore) List() []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(*Task) bool { return true })
}

// ListByStatus retrieves all tasks with the given status, in store order.
func (s *FileStore) ListByStatus(status Status) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(t *Task) bool { return t.Status == status })
}

// ListByPriority retrieves all tasks with the given priority, in store order.
func (s *FileStore) ListByPriority(priority Priority) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(t *Task) bool { return t.Priority == priority })
}

// ListByCategory retrieves all tasks with the given category, in store order.
func (s *FileStore) ListByCategory(category string) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(t *Task) bool { return t.Category == category })
}

// Overdue retrieves all overdue tasks, in store order.
func (s *FileStore) Overdue() []*Task {
	now := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(t *Task) bool { return t.IsOverdue(now) })
}

// filter returns clones of all tasks matching the predicate, preserving
// insertion order. Caller must hold at least a read lock.
func (s *FileStore) filter(keep func(*Task) bool) []*Task {
	var tasks []*Task
	for _, t := range s.tasks {
		if keep(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	return tasks
}

// Add creates a task with the next free ID, appends it and persists.
// The title is taken as given; non-emptiness is the caller's responsibility.
// An invalid priority falls back to medium and an empty category to
// "General". If the write fails, the append is rolled back and
// PersistenceError returned.
func (s *FileStore) Add(title, description string, priority Priority, dueDate *Date, category string) (*Task, error) {
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	if category == "" {
		category = "General"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		DueDate:     dueDate,
		Category:    category,
		CreatedAt:   time.Now().Truncate(time.Second),
	}

	s.tasks = append(s.tasks, task)
	s.nextID++

	if err := s.save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		s.nextID--
		return nil, &PersistenceError{Op: "add", Err: err}
	}

	return task.Clone(), nil
}

// Update applies a partial change to an existing task and persists.
// Only fields set in the patch are touched. A status change into completed
// stamps CompletedAt; a change away from completed clears it. If the write
// fails, the task is left as it was and PersistenceError returned.
func (s *FileStore) Update(id int, patch Patch) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}

	prev := s.tasks[i]
	task := prev.Clone()
	applyPatch(task, patch)

	s.tasks[i] = task
	if err := s.save(); err != nil {
		s.tasks[i] = prev
		return nil, &PersistenceError{Op: "update", Err: err}
	}

	return task.Clone(), nil
}

// applyPatch applies the set fields of a patch to a task, maintaining the
// completed_at invariant on status transitions.
func applyPatch(task *Task, patch Patch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	} else if patch.ClearDueDate {
		task.DueDate = nil
	}
	if patch.Status != nil && *patch.Status != task.Status {
		if *patch.Status == StatusCompleted {
			now := time.Now().Truncate(time.Second)
			task.CompletedAt = &now
		} else if task.Status == StatusCompleted {
			task.CompletedAt = nil
		}
		task.Status = *patch.Status
	}
}

// Delete removes a task by its ID and persists. If the write fails, the
// task is restored and PersistenceError returned.
func (s *FileStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.save(); err != nil {
		s.tasks = append(s.tasks[:i], append([]*Task{removed}, s.tasks[i:]...)...)
		return &PersistenceError{Op: "delete", Err: err}
	}

	return nil
}
