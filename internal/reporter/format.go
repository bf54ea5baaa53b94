// Package reporter formats tasks and statistics for terminal display.
package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kpavlenko/go-todo/internal/stats"
	"github.com/kpavlenko/go-todo/internal/taskstore"
)

// statusLabels maps storage tags to display labels. Labels are
// presentation only and never reach the data file.
var statusLabels = map[taskstore.Status]string{
	taskstore.StatusPending:    "⏳ Pending",
	taskstore.StatusInProgress: "🔄 In Progress",
	taskstore.StatusCompleted:  "✅ Completed",
	taskstore.StatusCancelled:  "❌ Cancelled",
}

// StatusLabel returns the display label for a status, falling back to the
// raw tag for unknown values.
func StatusLabel(s taskstore.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// priorityLabels maps priority levels to capitalized display names.
var priorityLabels = map[taskstore.Priority]string{
	taskstore.PriorityLow:    "Low",
	taskstore.PriorityMedium: "Medium",
	taskstore.PriorityHigh:   "High",
	taskstore.PriorityUrgent: "Urgent",
}

// PriorityLabel returns the display name for a priority.
func PriorityLabel(p taskstore.Priority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return p.String()
}

// FormatTask formats a single task in full for CLI display.
func FormatTask(task *taskstore.Task, now time.Time) string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "#%d %s\n", task.ID, task.Title)
	if task.Description != "" {
		_, _ = fmt.Fprintf(&sb, "Description: %s\n", task.Description)
	}
	_, _ = fmt.Fprintf(&sb, "Status: %s\n", StatusLabel(task.Status))
	_, _ = fmt.Fprintf(&sb, "Priority: %s\n", PriorityLabel(task.Priority))
	_, _ = fmt.Fprintf(&sb, "Category: %s\n", task.Category)

	if task.DueDate != nil {
		due := task.DueDate.String()
		if task.IsOverdue(now) {
			due += " (overdue)"
		}
		_, _ = fmt.Fprintf(&sb, "Due: %s\n", due)
	} else {
		sb.WriteString("Due: none\n")
	}

	_, _ = fmt.Fprintf(&sb, "Created: %s\n", task.CreatedAt.Format(time.RFC3339))
	if task.CompletedAt != nil {
		_, _ = fmt.Fprintf(&sb, "Completed: %s\n", task.CompletedAt.Format(time.RFC3339))
	}

	return sb.String()
}

// FormatTaskList formats tasks as one line each for CLI display.
// Returns a placeholder line when the list is empty.
func FormatTaskList(tasks []*taskstore.Task, now time.Time) string {
	if len(tasks) == 0 {
		return "No tasks.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		_, _ = fmt.Fprintf(&sb, "#%-4d %-16s %-8s %s", t.ID, StatusLabel(t.Status), PriorityLabel(t.Priority), t.Title)
		if t.Category != "General" {
			_, _ = fmt.Fprintf(&sb, " [%s]", t.Category)
		}
		if t.DueDate != nil {
			_, _ = fmt.Fprintf(&sb, " (due %s", t.DueDate.String())
			if t.IsOverdue(now) {
				sb.WriteString(", overdue")
			}
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatStatistics formats a statistics snapshot for CLI display.
func FormatStatistics(s stats.Statistics) string {
	var sb strings.Builder

	sb.WriteString("## Statistics\n\n")

	sb.WriteString("### Task Counts\n")
	_, _ = fmt.Fprintf(&sb, "Total: %d\n", s.Total)
	_, _ = fmt.Fprintf(&sb, "Completed: %d\n", s.Completed)
	_, _ = fmt.Fprintf(&sb, "Pending: %d\n", s.Pending)
	_, _ = fmt.Fprintf(&sb, "In Progress: %d\n", s.InProgress)
	_, _ = fmt.Fprintf(&sb, "Overdue: %d\n", s.Overdue)
	sb.WriteString("\n")

	sb.WriteString("### Completion\n")
	_, _ = fmt.Fprintf(&sb, "%s %.1f%%\n", ProgressBar(int(s.CompletionRate), 20), s.CompletionRate)
	sb.WriteString("\n")

	sb.WriteString("### By Priority\n")
	for _, p := range taskstore.Priorities {
		_, _ = fmt.Fprintf(&sb, "%s: %d\n", PriorityLabel(p), s.ByPriority[p])
	}

	return sb.String()
}

// ProgressBar returns an ASCII progress bar string for the given percentage.
// The width parameter specifies the inner width of the bar (excluding brackets).
// Percentage values are clamped to 0-100.
//
// Example: ProgressBar(50, 20) returns "[==========          ]"
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := (percent * width) / 100

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat("=", filled))
	sb.WriteString(strings.Repeat(" ", width-filled))
	sb.WriteString("]")

	return sb.String()
}
