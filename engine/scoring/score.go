package scoring

import (
	"math"
	"sort"
	"strings"
	"time"
)

// cyclePenalty is subtracted from every member of a circular dependency.
const cyclePenalty = 0.2

const balancedExplanation = "Balanced priority based on urgency, importance, effort, and dependencies."

// Score computes a priority score and explanation for every task, then
// orders the result so dependencies come before their dependents while
// always emitting the highest-scored available task first. Cycle members
// are penalized and placed last. Returns the strategy actually applied
// alongside the ordered tasks.
func Score(tasks []TaskInput, strategy string, today time.Time) (string, []ScoredTask) {
	weights, applied := StrategyWeights(strategy)

	tasksByID := make(map[int]TaskInput, len(tasks))
	for _, t := range tasks {
		tasksByID[t.ID] = t
	}
	cycles := DetectCycles(tasksByID)
	depBonus := DependencyBonus(tasks)

	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, scoreTask(t, weights, depBonus[t.ID], cycles[t.ID], today))
	}
	return applied, orderTasks(scored, tasksByID, cycles)
}

func scoreTask(t TaskInput, weights Weights, depBonus float64, inCycle bool, today time.Time) ScoredTask {
	urgency := UrgencyScore(t.DueDate, today)
	importance := ImportanceScore(t.Importance)
	effort := EffortScore(t.EstimatedHours)

	score := urgency*weights.Urgency +
		importance*weights.Importance +
		effort*weights.Effort +
		depBonus*weights.Deps
	if inCycle {
		score -= cyclePenalty
	}

	var parts []string
	if urgency >= 0.8 {
		parts = append(parts, "Due very soon")
	} else if urgency >= 0.6 {
		parts = append(parts, "Upcoming deadline")
	}
	if importance >= 0.8 {
		parts = append(parts, "Very important")
	} else if importance >= 0.6 {
		parts = append(parts, "Important")
	}
	if effort >= 0.7 {
		parts = append(parts, "Quick win")
	} else if effort <= 0.3 {
		parts = append(parts, "Large effort task")
	}
	if depBonus > 0 {
		parts = append(parts, "Unblocks other tasks")
	}
	if inCycle {
		parts = append(parts, "Part of circular dependency (penalized)")
	}
	explanation := balancedExplanation
	if len(parts) > 0 {
		explanation = strings.Join(parts, "; ")
	}

	return ScoredTask{
		TaskInput:   t,
		Score:       math.Round(score*1000) / 1000,
		Explanation: explanation,
	}
}

// orderTasks runs a Kahn variant over the non-cycle tasks that always picks
// the highest-scored available task, appends any leftovers (unreachable due
// to dangling ids) by score, and places cycle members at the end, highest
// score first.
func orderTasks(scored []ScoredTask, tasksByID map[int]TaskInput, cycles map[int]bool) []ScoredTask {
	scoredByID := make(map[int]ScoredTask, len(scored))
	idOrder := make([]int, 0, len(scored))
	for _, t := range scored {
		if _, seen := scoredByID[t.ID]; !seen {
			idOrder = append(idOrder, t.ID)
		}
		scoredByID[t.ID] = t
	}

	nonCycleIDs := make([]int, 0, len(idOrder))
	cycleIDs := make([]int, 0)
	for _, id := range idOrder {
		if cycles[id] {
			cycleIDs = append(cycleIDs, id)
		} else {
			nonCycleIDs = append(nonCycleIDs, id)
		}
	}

	// Edges run dep -> dependent; only dependencies inside this set count.
	indegree := make(map[int]int, len(nonCycleIDs))
	adj := make(map[int][]int, len(nonCycleIDs))
	for _, id := range nonCycleIDs {
		indegree[id] = 0
	}
	for _, id := range nonCycleIDs {
		for _, dep := range tasksByID[id].Dependencies {
			if _, ok := indegree[dep]; ok {
				indegree[id]++
				adj[dep] = append(adj[dep], id)
			}
		}
	}

	ordered := make([]int, 0, len(nonCycleIDs))
	emitted := make(map[int]bool, len(nonCycleIDs))
	available := make([]int, 0, len(nonCycleIDs))
	for _, id := range nonCycleIDs {
		if indegree[id] == 0 {
			available = append(available, id)
		}
	}
	for len(available) > 0 {
		best := 0
		for i := 1; i < len(available); i++ {
			if scoredByID[available[i]].Score > scoredByID[available[best]].Score {
				best = i
			}
		}
		id := available[best]
		available = append(available[:best], available[best+1:]...)
		ordered = append(ordered, id)
		emitted[id] = true
		for _, next := range adj[id] {
			indegree[next]--
			if indegree[next] == 0 {
				available = append(available, next)
			}
		}
	}

	remaining := make([]int, 0)
	for _, id := range nonCycleIDs {
		if !emitted[id] {
			remaining = append(remaining, id)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return scoredByID[remaining[i]].Score > scoredByID[remaining[j]].Score
	})
	sort.SliceStable(cycleIDs, func(i, j int) bool {
		return scoredByID[cycleIDs[i]].Score > scoredByID[cycleIDs[j]].Score
	})

	final := make([]ScoredTask, 0, len(scoredByID))
	for _, id := range ordered {
		final = append(final, scoredByID[id])
	}
	for _, id := range remaining {
		final = append(final, scoredByID[id])
	}
	for _, id := range cycleIDs {
		final = append(final, scoredByID[id])
	}
	return final
}
