package motionplan

import (
	"container/heap"
	"context"

	"github.com/edaniels/golog"
)

// heuristic returns an admissible lower bound on the cost from (x, y) to
// the goal: Manhattan distance, which never overestimates the true cost
// since every move primitive advances at least one cell per unit cost.
func heuristic(x, y, goalX, goalY int) int {
	return abs(goalX-x) + abs(goalY-y)
}

// searchNode is one entry in the A* open set: a state, the cost to reach
// it, and its priority (cost + heuristic).
type searchNode struct {
	state    CellState
	gCost    int
	priority int
	index    int
}

// nodeHeap is a min-heap of searchNodes ordered by priority, implementing
// container/heap.Interface.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// astarSearch finds the cheapest path from start to the exact state
// (goalX, goalY, goalHeading), under the given turn profile. It returns the
// total cost and the sequence of states from start to goal inclusive, or
// ok=false if that state is not reachable.
func astarSearch(grid *Grid, start CellState, goalX, goalY int, goalHeading Heading, profile TurnProfile) (cost int, path []CellState, ok bool) {
	gScore := map[stateKey]int{start.key(): 0}
	parent := map[stateKey]CellState{}
	visited := map[stateKey]bool{}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &searchNode{
		state:    start,
		gCost:    0,
		priority: heuristic(start.X, start.Y, goalX, goalY),
	})

	var goalState CellState
	found := false

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		key := cur.state.key()
		if visited[key] {
			continue
		}
		visited[key] = true

		if cur.state.X == goalX && cur.state.Y == goalY && cur.state.Heading == goalHeading {
			goalState = cur.state
			found = true
			break
		}

		for _, nb := range Neighbors(grid, cur.state.X, cur.state.Y, cur.state.Heading, profile) {
			nkey := nb.State.key()
			if visited[nkey] {
				continue
			}
			tentative := cur.gCost + nb.Cost
			if existing, ok := gScore[nkey]; ok && existing <= tentative {
				continue
			}
			gScore[nkey] = tentative
			parent[nkey] = cur.state
			heap.Push(open, &searchNode{
				state:    nb.State,
				gCost:    tentative,
				priority: tentative + heuristic(nb.State.X, nb.State.Y, goalX, goalY),
			})
		}
	}

	if !found {
		return 0, nil, false
	}

	// Reconstruct the path by walking parent pointers back to start.
	var reversed []CellState
	cur := goalState
	for {
		reversed = append(reversed, cur)
		if cur.key() == start.key() {
			break
		}
		cur = parent[cur.key()]
	}
	path = make([]CellState, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return gScore[goalState.key()], path, true
}

// PathTables holds the memoized pairwise shortest-path cost and route
// between every pair of a working set of states, indexed by position in
// that set rather than by the states themselves.
type PathTables struct {
	States []CellState
	Cost   [][]int
	Path   [][][]CellState

	// reachable[i][j] is false when no path exists between States[i] and
	// States[j]; Cost/Path entries for such pairs are meaningless.
	reachable [][]bool
}

// unreachableCost is the sentinel distance recorded for a pair of states
// with no connecting path, matching the cost matrix's "absent edge" value
// fed to the TSP solver.
const unreachableCost = 1_000_000_000

// Generate populates a PathTables for every ordered pair in states, running
// A* between each distinct pair under the given turn profile. The diagonal
// (i == i) is always zero cost, zero-length path.
//
// ctx is checked between pairs so a caller can cancel a table build that is
// taking too long on a large working set; logger receives a debug line per
// unreachable pair.
func (t *PathTables) Generate(ctx context.Context, logger golog.Logger, grid *Grid, profile TurnProfile, states []CellState) error {
	n := len(states)
	t.States = states
	t.Cost = make([][]int, n)
	t.Path = make([][][]CellState, n)
	t.reachable = make([][]bool, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.Cost[i] = make([]int, n)
		t.Path[i] = make([][]CellState, n)
		t.reachable[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j {
				t.Cost[i][j] = 0
				t.Path[i][j] = []CellState{states[i]}
				t.reachable[i][j] = true
				continue
			}
			cost, path, ok := astarSearch(grid, states[i], states[j].X, states[j].Y, states[j].Heading, profile)
			if !ok {
				t.Cost[i][j] = unreachableCost
				t.reachable[i][j] = false
				if logger != nil {
					logger.Debugw("no path between states", "from", i, "to", j)
				}
				continue
			}
			t.Cost[i][j] = cost
			t.Path[i][j] = path
			t.reachable[i][j] = true
		}
	}
	return nil
}

// Reachable reports whether a path exists from States[i] to States[j].
func (t *PathTables) Reachable(i, j int) bool {
	return t.reachable[i][j]
}
