package taskstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFromYAML(t *testing.T) {
	t.Run("imports valid tasks with fresh ids", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "tasks.yaml")

		yamlContent := `tasks:
  - title: "Buy milk"
    priority: low
    category: Shopping
    dueDate: "2026-12-24"
  - title: "Write report"
    description: "quarterly numbers"
    priority: urgent
    status: in_progress
`
		require.NoError(t, os.WriteFile(yamlPath, []byte(yamlContent), 0644))

		result, err := ImportFromYAML(store, yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Empty(t, result.Errors)

		tasks := store.List()
		require.Len(t, tasks, 2)

		assert.Equal(t, 1, tasks[0].ID)
		assert.Equal(t, "Buy milk", tasks[0].Title)
		assert.Equal(t, PriorityLow, tasks[0].Priority)
		assert.Equal(t, "Shopping", tasks[0].Category)
		require.NotNil(t, tasks[0].DueDate)
		assert.Equal(t, "2026-12-24", tasks[0].DueDate.String())

		assert.Equal(t, 2, tasks[1].ID)
		assert.Equal(t, StatusInProgress, tasks[1].Status)
		assert.Equal(t, "quarterly numbers", tasks[1].Description)
	})

	t.Run("defaults priority, status and category", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "tasks.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("tasks:\n  - title: bare\n"), 0644))

		result, err := ImportFromYAML(store, yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)

		task, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, PriorityMedium, task.Priority)
		assert.Equal(t, StatusPending, task.Status)
		assert.Equal(t, "General", task.Category)
	})

	t.Run("skips invalid entries and keeps importing", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "tasks.yaml")

		yamlContent := `tasks:
  - title: ""
  - title: "valid"
  - title: "bad priority"
    priority: critical
`
		require.NoError(t, os.WriteFile(yamlPath, []byte(yamlContent), 0644))

		result, err := ImportFromYAML(store, yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		require.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors[0].Reason, "title is required")
		assert.Contains(t, result.Errors[1].Reason, "invalid priority")
		assert.Len(t, store.List(), 1)
	})

	t.Run("completed imports carry a completion timestamp", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "tasks.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("tasks:\n  - title: shipped\n    status: completed\n"), 0644))

		_, err := ImportFromYAML(store, yamlPath)
		require.NoError(t, err)

		task, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, task.Status)
		assert.NotNil(t, task.CompletedAt)
	})

	t.Run("fails on unreadable file", func(t *testing.T) {
		store := newTestStore(t)

		_, err := ImportFromYAML(store, filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("fails on malformed YAML", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "tasks.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("tasks: [unclosed"), 0644))

		_, err := ImportFromYAML(store, yamlPath)
		assert.Error(t, err)
	})
}

func TestExportToYAML(t *testing.T) {
	t.Run("exported file imports back equivalently", func(t *testing.T) {
		store := newTestStore(t)
		due := NewDate(2026, time.October, 1)
		_, err := store.Add("Pack bags", "passport too", PriorityHigh, &due, "Travel")
		require.NoError(t, err)
		_, err = store.Add("Water plants", "", PriorityLow, nil, "")
		require.NoError(t, err)

		completed := StatusCompleted
		_, err = store.Update(2, Patch{Status: &completed})
		require.NoError(t, err)

		yamlPath := filepath.Join(t.TempDir(), "export.yaml")
		count, err := ExportToYAML(store, yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		other := newTestStore(t)
		result, err := ImportFromYAML(other, yamlPath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)

		tasks := other.List()
		require.Len(t, tasks, 2)
		assert.Equal(t, "Pack bags", tasks[0].Title)
		assert.Equal(t, "passport too", tasks[0].Description)
		assert.Equal(t, PriorityHigh, tasks[0].Priority)
		require.NotNil(t, tasks[0].DueDate)
		assert.Equal(t, "2026-10-01", tasks[0].DueDate.String())
		assert.Equal(t, "Travel", tasks[0].Category)
		assert.Equal(t, StatusCompleted, tasks[1].Status)
	})

	t.Run("exports an empty store", func(t *testing.T) {
		store := newTestStore(t)
		yamlPath := filepath.Join(t.TempDir(), "export.yaml")

		count, err := ExportToYAML(store, yamlPath)
		require.NoError(t, err)
		assert.Zero(t, count)

		_, err = os.Stat(yamlPath)
		assert.NoError(t, err)
	})
}
