package scoring

// DefaultStrategy is applied when a request names no strategy or an unknown
// one; the response echoes the strategy actually used.
const DefaultStrategy = "smart_balance"

// Weights blends the four factor scores into a priority score.
type Weights struct {
	Urgency    float64
	Importance float64
	Effort     float64
	Deps       float64
}

// strategyWeights is the closed strategy set offered by the UI selector.
var strategyWeights = map[string]Weights{
	// Focus: small, quick tasks first
	"fastest_wins": {Urgency: 0.20, Importance: 0.20, Effort: 0.50, Deps: 0.10},
	// Focus: high impact / importance
	"high_impact": {Urgency: 0.20, Importance: 0.60, Effort: 0.10, Deps: 0.10},
	// Focus: strict on deadlines
	"deadline_driven": {Urgency: 0.60, Importance: 0.20, Effort: 0.10, Deps: 0.10},
	// Balanced default strategy
	"smart_balance": {Urgency: 0.35, Importance: 0.35, Effort: 0.15, Deps: 0.15},
}

// StrategyWeights resolves a strategy name, falling back to DefaultStrategy
// for unknown names. The second return is the strategy actually applied.
func StrategyWeights(name string) (Weights, string) {
	if weights, ok := strategyWeights[name]; ok {
		return weights, name
	}
	return strategyWeights[DefaultStrategy], DefaultStrategy
}

// Strategies lists the selectable strategy identifiers in presentation
// order, default first.
func Strategies() []string {
	return []string{"smart_balance", "fastest_wins", "high_impact", "deadline_driven"}
}
