package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	t.Run("creates a task and reports its id", func(t *testing.T) {
		dataPath := testDataPath(t)

		out, err := runTodo(t, dataPath, "add", "Buy milk", "-p", "low", "-c", "Shopping")
		require.NoError(t, err)
		assert.Contains(t, out, "Created task #1: Buy milk")

		out, err = runTodo(t, dataPath, "show", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Buy milk")
		assert.Contains(t, out, "⏳ Pending")
		assert.Contains(t, out, "Priority: Low")
		assert.Contains(t, out, "Category: Shopping")
	})

	t.Run("ids keep increasing across adds", func(t *testing.T) {
		dataPath := testDataPath(t)

		out, err := runTodo(t, dataPath, "add", "first")
		require.NoError(t, err)
		assert.Contains(t, out, "#1")

		out, err = runTodo(t, dataPath, "add", "second")
		require.NoError(t, err)
		assert.Contains(t, out, "#2")
	})

	t.Run("defaults to medium priority and General category", func(t *testing.T) {
		dataPath := testDataPath(t)

		_, err := runTodo(t, dataPath, "add", "plain")
		require.NoError(t, err)

		out, err := runTodo(t, dataPath, "show", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Priority: Medium")
		assert.Contains(t, out, "Category: General")
	})

	t.Run("accepts a due date", func(t *testing.T) {
		dataPath := testDataPath(t)

		_, err := runTodo(t, dataPath, "add", "dated", "-D", "2026-12-24")
		require.NoError(t, err)

		out, err := runTodo(t, dataPath, "show", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Due: 2026-12-24")
	})

	t.Run("rejects blank titles", func(t *testing.T) {
		dataPath := testDataPath(t)

		_, err := runTodo(t, dataPath, "add", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		dataPath := testDataPath(t)

		_, err := runTodo(t, dataPath, "add", "x", "-p", "critical")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid priority")
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		dataPath := testDataPath(t)

		_, err := runTodo(t, dataPath, "add", "x", "-D", "24.12.2026")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date")
	})
}
