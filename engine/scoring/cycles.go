package scoring

const (
	colorGray  = 1
	colorBlack = 2
)

// DetectCycles finds every task id that participates in a circular
// dependency chain, via depth-first search with gray/black marking.
// Dangling references are traversed harmlessly: they have no outgoing
// edges, so they can never close a cycle.
func DetectCycles(tasksByID map[int]TaskInput) map[int]bool {
	graph := make(map[int][]int, len(tasksByID))
	for id, t := range tasksByID {
		graph[id] = t.Dependencies
	}
	visited := make(map[int]int)
	inCycle := make(map[int]bool)

	var dfs func(node int, stack []int) []int
	dfs = func(node int, stack []int) []int {
		visited[node] = colorGray
		stack = append(stack, node)
		for _, dep := range graph[node] {
			if _, seen := visited[dep]; !seen {
				stack = dfs(dep, stack)
			} else if visited[dep] == colorGray {
				// Close the cycle: everything from the first occurrence of
				// dep on the stack is a member.
				for i := len(stack) - 1; i >= 0; i-- {
					inCycle[stack[i]] = true
					if stack[i] == dep {
						break
					}
				}
			}
		}
		visited[node] = colorBlack
		return stack[:len(stack)-1]
	}

	for node := range graph {
		if _, seen := visited[node]; !seen {
			dfs(node, nil)
		}
	}
	return inCycle
}
