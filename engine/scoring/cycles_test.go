package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func byID(tasks ...TaskInput) map[int]TaskInput {
	m := make(map[int]TaskInput, len(tasks))
	for _, t := range tasks {
		m[t.ID] = t
	}
	return m
}

func TestDetectCycles(t *testing.T) {
	t.Run("Should find a two-task cycle", func(t *testing.T) {
		cycles := DetectCycles(byID(
			TaskInput{ID: 1, Dependencies: []int{2}},
			TaskInput{ID: 2, Dependencies: []int{1}},
			TaskInput{ID: 3},
		))
		assert.True(t, cycles[1])
		assert.True(t, cycles[2])
		assert.False(t, cycles[3])
	})
	t.Run("Should find a self-referential cycle", func(t *testing.T) {
		cycles := DetectCycles(byID(TaskInput{ID: 1, Dependencies: []int{1}}))
		assert.True(t, cycles[1])
	})
	t.Run("Should not flag an acyclic chain", func(t *testing.T) {
		cycles := DetectCycles(byID(
			TaskInput{ID: 1},
			TaskInput{ID: 2, Dependencies: []int{1}},
			TaskInput{ID: 3, Dependencies: []int{2}},
		))
		assert.Empty(t, cycles)
	})
	t.Run("Should tolerate dangling references", func(t *testing.T) {
		cycles := DetectCycles(byID(TaskInput{ID: 1, Dependencies: []int{99}}))
		assert.Empty(t, cycles)
	})
	t.Run("Should only mark the cycle members inside a larger graph", func(t *testing.T) {
		cycles := DetectCycles(byID(
			TaskInput{ID: 1, Dependencies: []int{2}},
			TaskInput{ID: 2, Dependencies: []int{3}},
			TaskInput{ID: 3, Dependencies: []int{2}},
		))
		assert.False(t, cycles[1])
		assert.True(t, cycles[2])
		assert.True(t, cycles[3])
	})
}
