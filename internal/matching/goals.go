package matching

// Tier is how closely a recommended role follows the user's current track.
type Tier string

const (
	TierDirect      Tier = "direct"
	TierAdjacent    Tier = "adjacent"
	TierReplacement Tier = "replacement"
)

// Tiers lists the tiers in output order.
var Tiers = []Tier{TierDirect, TierAdjacent, TierReplacement}

// ParseTier returns the tier named s, or false if s is unknown.
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Goal is the user's stated intent for their return to work.
type Goal string

const (
	GoalSameRole   Goal = "same-role"
	GoalPivot      Goal = "pivot"
	GoalFlexible   Goal = "flexible"
	GoalLeadership Goal = "leadership"
	GoalFreelance  Goal = "freelance"
)

// Weights holds the per-tier score multipliers for one goal.
type Weights struct {
	Direct      float64
	Adjacent    float64
	Replacement float64
}

// For returns the multiplier for tier t. Unknown tiers get 1.
func (w Weights) For(t Tier) float64 {
	switch t {
	case TierDirect:
		return w.Direct
	case TierAdjacent:
		return w.Adjacent
	case TierReplacement:
		return w.Replacement
	default:
		return 1
	}
}

var goalWeights = map[Goal]Weights{
	GoalSameRole:   {Direct: 1.15, Adjacent: 0.85, Replacement: 0.70},
	GoalPivot:      {Direct: 0.75, Adjacent: 1.15, Replacement: 1.10},
	GoalFlexible:   {Direct: 1.00, Adjacent: 1.00, Replacement: 1.00},
	GoalLeadership: {Direct: 1.10, Adjacent: 1.00, Replacement: 0.80},
	GoalFreelance:  {Direct: 0.80, Adjacent: 0.95, Replacement: 1.20},
}

// WeightsFor returns the multipliers for goal. Any unrecognized goal,
// including the empty string, gets the flexible weights.
func WeightsFor(goal string) Weights {
	if w, ok := goalWeights[Goal(goal)]; ok {
		return w
	}
	return goalWeights[GoalFlexible]
}
