// Package stats derives aggregate statistics from a task snapshot.
package stats

import (
	"time"

	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// Statistics holds aggregate counts and rates for a task collection.
type Statistics struct {
	// Total is the number of tasks in the snapshot.
	Total int

	// Completed, Pending and InProgress are counts by status.
	Completed  int
	Pending    int
	InProgress int

	// Overdue is the count of tasks past their due date and not completed.
	Overdue int

	// CompletionRate is the percentage of tasks completed, 0 when the
	// snapshot is empty. No rounding is applied; display code rounds.
	CompletionRate float64

	// ByPriority maps every priority level to its task count, zero-filled
	// for levels with no tasks.
	ByPriority map[taskstore.Priority]int
}

// Compute derives statistics from a snapshot of tasks. It is a pure
// function of the snapshot and the given time; it holds no state.
func Compute(tasks []*taskstore.Task, now time.Time) Statistics {
	s := Statistics{
		Total:      len(tasks),
		ByPriority: make(map[taskstore.Priority]int, len(taskstore.Priorities)),
	}

	for _, p := range taskstore.Priorities {
		s.ByPriority[p] = 0
	}

	for _, t := range tasks {
		switch t.Status {
		case taskstore.StatusCompleted:
			s.Completed++
		case taskstore.StatusPending:
			s.Pending++
		case taskstore.StatusInProgress:
			s.InProgress++
		}

		if t.IsOverdue(now) {
			s.Overdue++
		}

		s.ByPriority[t.Priority]++
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}

	return s
}
