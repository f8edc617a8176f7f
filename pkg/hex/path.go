package hex

import (
	"container/heap"
	"math"
)

// CostFunc returns the cost of entering a hex. Return math.Inf(1) for
// impassable tiles. Costs are assumed to be at least 1 per step, which
// keeps Distance an admissible search heuristic.
type CostFunc func(Hex) float64

// PathOptions configures FindPath.
type PathOptions struct {
	// Cost gives the price of entering each hex. Required.
	Cost CostFunc

	// MaxCost, when positive, limits the total path cost. A path that
	// exists geometrically but exceeds the budget is treated as no path.
	MaxCost float64

	// InBounds, when non-nil, restricts the search: out-of-bounds hexes
	// are never expanded even if otherwise reachable.
	InBounds func(Hex) bool
}

// FindPath returns the minimum-cost path from start to goal inclusive,
// where the cost of a path is the sum of Cost over every hex entered
// (start is free). It returns nil when no valid path exists; callers must
// branch on that rather than expect an error. Identical start and goal
// yield a single-element path.
func FindPath(start, goal Hex, opts PathOptions) []Hex {
	if opts.InBounds != nil && (!opts.InBounds(start) || !opts.InBounds(goal)) {
		return nil
	}
	if start == goal {
		return []Hex{start}
	}
	if math.IsInf(opts.Cost(goal), 1) {
		return nil
	}

	dist := map[Hex]float64{start: 0}
	cameFrom := map[Hex]Hex{}

	pq := &nodeQueue{{coord: start, priority: float64(Distance(start, goal))}}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(node)
		if current.coord == goal {
			return reconstruct(cameFrom, goal)
		}
		if current.cost > dist[current.coord] {
			continue // stale queue entry
		}

		for _, next := range current.coord.Neighbors() {
			if opts.InBounds != nil && !opts.InBounds(next) {
				continue
			}
			stepCost := opts.Cost(next)
			if math.IsInf(stepCost, 1) {
				continue
			}
			nextCost := current.cost + stepCost
			if opts.MaxCost > 0 && nextCost > opts.MaxCost {
				continue
			}
			if best, seen := dist[next]; seen && nextCost >= best {
				continue
			}
			dist[next] = nextCost
			cameFrom[next] = current.coord
			heap.Push(pq, node{
				coord:    next,
				cost:     nextCost,
				priority: nextCost + float64(Distance(next, goal)),
			})
		}
	}

	return nil
}

// ReachOptions configures Reachable.
type ReachOptions struct {
	// Cost gives the price of entering each hex. Required.
	Cost CostFunc

	// InBounds, when non-nil, restricts the fill.
	InBounds func(Hex) bool
}

// Reachable returns every hex reachable from start within the movement
// budget, mapped to the budget remaining after arriving there by the
// cheapest route. The start hex is always present with the full budget.
func Reachable(start Hex, budget float64, opts ReachOptions) map[Hex]float64 {
	reachable := map[Hex]float64{start: budget}
	if budget <= 0 {
		return reachable
	}

	dist := map[Hex]float64{start: 0}
	pq := &nodeQueue{{coord: start}}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(node)
		if current.cost > dist[current.coord] {
			continue
		}

		for _, next := range current.coord.Neighbors() {
			if opts.InBounds != nil && !opts.InBounds(next) {
				continue
			}
			stepCost := opts.Cost(next)
			nextCost := current.cost + stepCost
			if math.IsInf(stepCost, 1) || nextCost > budget {
				continue
			}
			if best, seen := dist[next]; seen && nextCost >= best {
				continue
			}
			dist[next] = nextCost
			reachable[next] = budget - nextCost
			heap.Push(pq, node{coord: next, cost: nextCost, priority: nextCost})
		}
	}

	return reachable
}

func reconstruct(cameFrom map[Hex]Hex, goal Hex) []Hex {
	path := []Hex{goal}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// node is a frontier entry in the search queue. cost is the best known
// path cost to coord at push time; priority adds the goal heuristic.
type node struct {
	coord    Hex
	cost     float64
	priority float64
}

type nodeQueue []node

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(node)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
