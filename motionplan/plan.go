package motionplan

import (
	"context"

	"github.com/edaniels/golog"
	"go.viam.com/utils"
)

// Solve builds a complete Plan covering as many of obstacles as possible,
// starting at robotStart, trying the tighter Turn31 profile first and
// falling back to Turn42 if no feasible tour exists under it. If neither
// profile yields a feasible tour with retry poses disallowed, it retries
// once more with retry poses admitted before giving up.
func Solve(ctx context.Context, logger golog.Logger, grid *Grid, robotStart CellState, obstacles []Obstacle) (Plan, error) {
	for _, retry := range []bool{false, true} {
		for _, profile := range []TurnProfile{Turn31, Turn42} {
			plan, err := Select(ctx, logger, grid, robotStart, obstacles, profile, retry)
			if err != nil {
				return Plan{}, err
			}
			if plan.Feasible {
				return plan, nil
			}
			if logger != nil {
				logger.Debugw("no feasible tour under profile", "profile", profile, "retry", retry)
			}
		}
	}
	return Plan{Feasible: false, Dropped: obstacles}, nil
}

// planAttempt names one (profile, retry) combination tried by
// SolveConcurrent; its outcome comes back over the results channel.
type planAttempt struct {
	profile TurnProfile
	retry   bool
}

// SolveConcurrent is the concurrent counterpart to Solve: it fans the four
// (profile, retry) combinations out across goroutines, each owning its own
// path tables (PathTables are not safe to share across goroutines), and
// returns the cheapest feasible plan found. It exists for callers solving
// many independent robot/obstacle configurations who want to overlap their
// A*/TSP work rather than run each combination serially as Solve does.
func SolveConcurrent(ctx context.Context, logger golog.Logger, grid *Grid, robotStart CellState, obstacles []Obstacle) (Plan, error) {
	attempts := []planAttempt{
		{profile: Turn31, retry: false},
		{profile: Turn42, retry: false},
		{profile: Turn31, retry: true},
		{profile: Turn42, retry: true},
	}

	type result struct {
		plan Plan
		err  error
	}

	ctxWithCancel, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan result, len(attempts))
	for _, a := range attempts {
		a := a
		utils.PanicCapturingGo(func() {
			plan, err := Select(ctxWithCancel, logger, grid, robotStart, obstacles, a.profile, a.retry)
			select {
			case results <- result{plan: plan, err: err}:
			case <-ctxWithCancel.Done():
			}
		})
	}

	var (
		best      Plan
		bestFound bool
		firstErr  error
	)
	for i := 0; i < len(attempts); i++ {
		select {
		case <-ctx.Done():
			return Plan{}, ctx.Err()
		case r := <-results:
			if r.err != nil {
				if firstErr == nil {
					firstErr = r.err
				}
				continue
			}
			if r.plan.Feasible && (!bestFound || r.plan.TotalCost < best.TotalCost) {
				best = r.plan
				bestFound = true
			}
		}
	}

	if bestFound {
		return best, nil
	}
	if firstErr != nil {
		return Plan{}, firstErr
	}
	return Plan{Feasible: false, Dropped: obstacles}, nil
}
