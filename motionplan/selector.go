package motionplan

import (
	"context"
	"sort"

	"github.com/edaniels/golog"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/tsp"
	"github.com/pkg/errors"
)

// Iterations bounds the number of viewing-pose combinations tried for any
// single subset of obstacles during selection.
const Iterations = 2000

// Plan is the result of selecting and ordering a set of viewing poses: the
// ordered sequence of poses the robot will visit (interleaved with the
// intermediate path states between them), and whether every requested
// obstacle was included.
type Plan struct {
	States    []CellState
	Visited   []Obstacle
	Dropped   []Obstacle
	Feasible  bool
	TotalCost int
}

// Select finds the cheapest feasible tour of viewing poses covering as many
// of obstacles as possible, starting and ending implicitly at robotStart
// (an open tour: the robot need not return to start).
//
// It tries, in order of decreasing obstacle-subset size, every subset of
// obstacles (largest first), and for each subset every admissible
// combination of per-obstacle viewing poses (one per obstacle in the
// subset), bounded by Iterations combinations. The first subset for which
// any combination yields an open tour whose every leg is reachable is accepted
// as final: subsets smaller than that are never considered, even if they
// might produce a cheaper tour, matching the original planner's
// first-feasible-subset semantics.
func Select(ctx context.Context, logger golog.Logger, grid *Grid, robotStart CellState, obstacles []Obstacle, profile TurnProfile, retry bool) (Plan, error) {
	if len(obstacles) == 0 {
		return Plan{}, ErrNoObstacles
	}

	allPoses := GenerateAllViewPoses(grid, obstacles, retry)

	for _, subset := range subsetsByPopcountDesc(len(obstacles)) {
		if err := ctx.Err(); err != nil {
			return Plan{}, err
		}
		indices := bitsToIndices(subset, len(obstacles))
		if len(indices) == 0 {
			continue
		}

		posesPerObstacle := make([][]ViewPose, len(indices))
		for i, obIdx := range indices {
			posesPerObstacle[i] = allPoses[obIdx]
		}
		if anyEmpty(posesPerObstacle) {
			continue
		}

		best, ok := bestCombination(ctx, logger, grid, robotStart, posesPerObstacle, profile)
		if !ok {
			continue
		}

		visited := make([]Obstacle, len(indices))
		for i, obIdx := range indices {
			visited[i] = obstacles[obIdx]
		}
		dropped := complement(obstacles, indices)

		return Plan{
			States:    best.states,
			Visited:   visited,
			Dropped:   dropped,
			Feasible:  true,
			TotalCost: best.cost,
		}, nil
	}

	return Plan{Feasible: false, Dropped: obstacles}, nil
}

// combinationResult is the outcome of ordering one concrete combination of
// viewing poses (one pose per obstacle in the subset under test).
type combinationResult struct {
	states []CellState
	cost   int
}

// bestCombination tries up to Iterations Cartesian-product combinations of
// poses (one per obstacle in posesPerObstacle), running the open-tour
// Held-Karp TSP over each, and returns the cheapest feasible result.
func bestCombination(ctx context.Context, logger golog.Logger, grid *Grid, robotStart CellState, posesPerObstacle [][]ViewPose, profile TurnProfile) (combinationResult, bool) {
	var (
		best   combinationResult
		found  bool
		tried  int
	)

	forEachCombination(posesPerObstacle, func(combo []ViewPose) bool {
		tried++
		if tried > Iterations {
			return false
		}

		states := make([]CellState, 0, len(combo)+1)
		states = append(states, robotStart)
		penalty := 0
		for _, vp := range combo {
			states = append(states, vp.State)
			penalty += vp.Penalty
		}

		var tables PathTables
		if err := tables.Generate(ctx, logger, grid, profile, states); err != nil {
			return false
		}

		// solveOpenTour may fail to find any Hamiltonian tour if some pairs
		// are unreachable (cost 1e9 in the matrix); that just eliminates
		// this combination, other edges in other combinations may still
		// connect, per the planner's failure semantics.
		order, tourCost, err := solveOpenTour(&tables)
		if err != nil {
			return true
		}
		for k := 0; k+1 < len(order); k++ {
			if !tables.Reachable(order[k], order[k+1]) {
				return true
			}
		}
		cost := tourCost + penalty

		if !found || cost < best.cost {
			best = combinationResult{states: expandOrder(&tables, order), cost: cost}
			found = true
		}
		return true
	})

	return best, found
}

// solveOpenTour runs Held-Karp over t's cost table with the first column
// zeroed, which turns the closed-cycle solver into an open-tour solver: the
// "return to start" leg costs nothing, so the optimal cycle's cost equals
// the optimal open path's cost, and the cycle's vertex order (minus the
// closing edge) is the open path's visiting order.
func solveOpenTour(t *PathTables) ([]int, int, error) {
	n := len(t.States)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, 0, errors.Wrap(err, "building cost matrix")
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == 0 {
				if err := dense.Set(i, j, 0); err != nil {
					return nil, 0, err
				}
				continue
			}
			if err := dense.Set(i, j, float64(t.Cost[i][j])); err != nil {
				return nil, 0, err
			}
		}
	}

	result, err := tsp.TSPExact(dense, tsp.Options{
		StartVertex: 0,
		Algo:        tsp.ExactHeldKarp,
		Symmetric:   false,
	})
	if err != nil {
		return nil, 0, err
	}

	// result.Tour is [0, v1, ..., v(n-1), 0]; the closing edge (v(n-1) -> 0)
	// was zeroed, so its real cost is the sum over the open path only.
	trueCost := 0
	for i := 0; i < len(result.Tour)-2; i++ {
		trueCost += t.Cost[result.Tour[i]][result.Tour[i+1]]
	}
	return result.Tour[:len(result.Tour)-1], trueCost, nil
}

// expandOrder walks order (a sequence of indices into t.States) and
// concatenates the pairwise paths between consecutive stops into one
// continuous state sequence, stamping the terminal state of each segment
// with the ScreenshotID of the stop it reaches.
func expandOrder(t *PathTables, order []int) []CellState {
	var out []CellState
	for i := 0; i < len(order)-1; i++ {
		seg := t.Path[order[i]][order[i+1]]
		if i > 0 {
			seg = seg[1:] // avoid duplicating the shared junction state
		}
		out = append(out, seg...)
		out[len(out)-1].ScreenshotID = t.States[order[i+1]].ScreenshotID
	}
	return out
}

// subsetsByPopcountDesc returns every non-empty bitmask over n items,
// ordered by descending popcount (most obstacles visited first) and, within
// equal popcount, by ascending bit pattern for determinism.
func subsetsByPopcountDesc(n int) []int {
	total := 1 << uint(n)
	all := make([]int, 0, total-1)
	for m := 1; m < total; m++ {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		pi, pj := popcount(all[i]), popcount(all[j])
		if pi != pj {
			return pi > pj
		}
		return all[i] < all[j]
	})
	return all
}

func popcount(m int) int {
	count := 0
	for m > 0 {
		count += m & 1
		m >>= 1
	}
	return count
}

func bitsToIndices(mask, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

func complement(obstacles []Obstacle, indices []int) []Obstacle {
	in := make(map[int]bool, len(indices))
	for _, i := range indices {
		in[i] = true
	}
	var out []Obstacle
	for i, ob := range obstacles {
		if !in[i] {
			out = append(out, ob)
		}
	}
	return out
}

func anyEmpty(poses [][]ViewPose) bool {
	for _, p := range poses {
		if len(p) == 0 {
			return true
		}
	}
	return false
}

// forEachCombination calls fn once per element of the Cartesian product of
// poses[0] x poses[1] x ... x poses[n-1], stopping early if fn returns
// false.
func forEachCombination(poses [][]ViewPose, fn func([]ViewPose) bool) {
	n := len(poses)
	if n == 0 {
		return
	}
	indices := make([]int, n)
	for {
		combo := make([]ViewPose, n)
		for i, idx := range indices {
			combo[i] = poses[i][idx]
		}
		if !fn(combo) {
			return
		}

		pos := n - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(poses[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}
