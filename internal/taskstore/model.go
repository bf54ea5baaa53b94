// Package taskstore provides task persistence and retrieval for the todo tool.
package taskstore

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status represents the current lifecycle state of a task.
// The values are stable storage tags; display labels live in the reporter.
type Status string

// Valid task status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// validStatuses contains all valid status values for quick lookup.
var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// IsValid returns true if the status is a valid Status value.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// ParseStatus converts a string to a Status.
// Returns an error if the string is not a valid status tag.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %q (valid: pending, in_progress, completed, cancelled)", s)
	}
	return status, nil
}

// Priority represents the importance of a task, ordered from Low to Urgent.
// It serializes as its integer tag (1..4).
type Priority int

// Valid task priority values.
const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

// Priorities lists all priority levels in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// IsValid returns true if the priority is a valid Priority value.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts a priority name to a Priority.
// Returns an error if the name is not a valid priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	default:
		return 0, fmt.Errorf("invalid priority: %q (valid: low, medium, high, urgent)", s)
	}
}

// dateLayout is the wire format for due dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in ISO-8601 form (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// Time returns the date as a time.Time at local midnight.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether the date (at local midnight) is before t.
func (d Date) Before(t time.Time) bool {
	return d.t.Before(t)
}

// Equal reports whether two dates are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String returns the date in ISO-8601 form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dateLayout))
}

// UnmarshalJSON decodes the date from an ISO-8601 string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Task represents a single to-do item.
//
// Optional fields (DueDate, CompletedAt) serialize as explicit null rather
// than being omitted, so the persisted form round-trips unambiguously.
type Task struct {
	// ID is the store-assigned identifier, unique and never reused.
	ID int `json:"id"`

	// Title is the short summary of the task. Non-empty, enforced by the
	// caller before insertion.
	Title string `json:"title"`

	// Description is the free-form detail text, may be empty.
	Description string `json:"description"`

	// Priority is the importance level of the task.
	Priority Priority `json:"priority"`

	// Status is the current lifecycle state of the task.
	Status Status `json:"status"`

	// DueDate is the optional deadline. Nil means no deadline.
	DueDate *Date `json:"due_date"`

	// Category is the free-text label grouping the task.
	Category string `json:"category"`

	// CreatedAt is when the task was created. Set once, immutable.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set the moment Status transitions to completed and
	// cleared when it transitions away. Present iff Status is completed.
	CompletedAt *time.Time `json:"completed_at"`
}

// IsOverdue reports whether the task's due date has passed and the task is
// not completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// Validate checks that the task has all required fields and valid values.
// Returns an error describing the first validation failure, or nil if valid.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("task priority is invalid: %d", t.Priority)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("task status is invalid: %q", t.Status)
	}

	return nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		c.CompletedAt = &completed
	}
	return &c
}

// Patch describes a partial update to a task. Nil fields are left
// untouched. ClearDueDate removes an existing due date; it takes effect
// only when DueDate is nil.
type Patch struct {
	Title        *string
	Description  *string
	Priority     *Priority
	Status       *Status
	DueDate      *Date
	ClearDueDate bool
	Category     *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.DueDate == nil && !p.ClearDueDate && p.Category == nil
}
