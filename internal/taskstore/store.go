package taskstore

import (
	"errors"
	"fmt"
)

// Error types for TaskStore operations.
var (
	// ErrNotFound is returned when a task with the given ID does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrPersistence is returned when writing to durable storage failed.
	// The in-memory state is rolled back, so memory and disk never diverge.
	ErrPersistence = errors.New("task persistence failed")
)

// NotFoundError wraps ErrNotFound with the task ID that was not found.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PersistenceError wraps ErrPersistence with the failed operation and cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("task persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}

// Store defines the interface for task persistence and retrieval.
// This interface is defined at the consumer level following Go idioms.
type Store interface {
	// Get retrieves a task by its ID.
	// Returns NotFoundError if the task does not exist.
	Get(id int) (*Task, error)

	// List retrieves all tasks in insertion order.
	List() []*Task

	// ListByStatus retrieves all tasks with the given status, in store order.
	ListByStatus(status Status) []*Task

	// ListByPriority retrieves all tasks with the given priority, in store order.
	ListByPriority(priority Priority) []*Task

	// ListByCategory retrieves all tasks with the given category, in store order.
	ListByCategory(category string) []*Task

	// Overdue retrieves all tasks whose due date has passed and which are
	// not completed, in store order.
	Overdue() []*Task

	// Add creates a task with the next free ID, appends it and persists.
	// Returns PersistenceError if the write fails; the task is then not added.
	Add(title, description string, priority Priority, dueDate *Date, category string) (*Task, error)

	// Update applies a partial change to an existing task and persists.
	// Returns NotFoundError if the task does not exist and PersistenceError
	// if the write fails; the task is then left unchanged.
	Update(id int, patch Patch) (*Task, error)

	// Delete removes a task by its ID and persists.
	// Returns NotFoundError if the task does not exist.
	Delete(id int) error
}
