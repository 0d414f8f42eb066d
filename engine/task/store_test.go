package task

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppend(t *testing.T) {
	t.Run("Should assign sequential ids in insertion order", func(t *testing.T) {
		store := NewStore()
		for i := 1; i <= 5; i++ {
			in := validInput()
			in.Title = fmt.Sprintf("Task %d", i)
			added, err := store.Append(in)
			require.NoError(t, err)
			assert.Equal(t, i, added.ID)
		}
		snapshot := store.Snapshot()
		require.Len(t, snapshot, 5)
		for i, task := range snapshot {
			assert.Equal(t, i+1, task.ID)
			assert.Equal(t, fmt.Sprintf("Task %d", i+1), task.Title)
		}
	})
	t.Run("Should not mutate the collection on invalid input", func(t *testing.T) {
		store := NewStore()
		in := validInput()
		in.Importance = "99"
		_, err := store.Append(in)
		require.Error(t, err)
		assert.Equal(t, 0, store.Len())
	})
}

func TestStoreReset(t *testing.T) {
	t.Run("Should restart id numbering at 1 after a reset", func(t *testing.T) {
		store := NewStore()
		_, err := store.Append(validInput())
		require.NoError(t, err)
		store.Reset()
		assert.Equal(t, 0, store.Len())
		added, err := store.Append(validInput())
		require.NoError(t, err)
		assert.Equal(t, 1, added.ID)
	})
}

func TestStoreAppendBatch(t *testing.T) {
	t.Run("Should continue ids contiguously from the current count", func(t *testing.T) {
		store := NewStore()
		_, err := store.Append(validInput())
		require.NoError(t, err)
		added := store.AppendBatch([]RawTask{
			{Title: "B", DueDate: "2026-01-02", Importance: DefaultImportance},
			{Title: "C", DueDate: "2026-01-03", Importance: 9},
		})
		require.Len(t, added, 2)
		assert.Equal(t, 2, added[0].ID)
		assert.Equal(t, 3, added[1].ID)
		assert.Equal(t, 3, store.Len())
	})
	t.Run("Should normalize nil dependencies to an empty list", func(t *testing.T) {
		store := NewStore()
		added := store.AppendBatch([]RawTask{{Title: "A", DueDate: "2026-01-01", Importance: DefaultImportance}})
		require.Len(t, added, 1)
		assert.Equal(t, []int{}, added[0].Dependencies)
	})
	t.Run("Should keep an empty batch a no-op", func(t *testing.T) {
		store := NewStore()
		assert.Empty(t, store.AppendBatch(nil))
		assert.Equal(t, 0, store.Len())
	})
}

func TestStoreSnapshot(t *testing.T) {
	t.Run("Should return a copy detached from internal state", func(t *testing.T) {
		store := NewStore()
		_, err := store.Append(validInput())
		require.NoError(t, err)
		snapshot := store.Snapshot()
		snapshot[0].Title = "mutated"
		assert.Equal(t, "Write report", store.Snapshot()[0].Title)
	})
}
