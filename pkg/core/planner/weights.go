package planner

// Candidate scoring weights. Higher totals are assigned first.
const (
	// WeightAreaExact rewards employees qualified specifically for the
	// group's area over generalists.
	WeightAreaExact = 10.0

	// WeightAreaBoth is the reward for employees qualified for both areas.
	WeightAreaBoth = 5.0

	// WeightLeadRole nudges lead staff ahead so the one-lead-per-group
	// guarantee rarely has to reorder the pool.
	WeightLeadRole = 3.0

	// WeightFairness scales the under-utilization bonus
	// max(0, 1 - hoursSoFar/contractHours).
	WeightFairness = 5.0

	// WeightColleague is the bonus per preferred colleague already
	// placed in the same group that day.
	WeightColleague = 5.0
)
