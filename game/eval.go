package game

import "math"

// EatBonus is added by the reflex heuristic when the action consumes an item.
const EatBonus = 200.0

// EvaluateScore returns the state's own score. It is the default leaf value of every search engine.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateReflex scores the successor of taking action as Pacman without any lookahead.
// An adjacent active ghost is certain death and dominates every other term, including
// the +Inf of a cleared board.
func EvaluateReflex(b Board, action Action) float64 {
	next, ok := b.Successor(Pacman, action).(Board)
	if !ok {
		panic("unexpected state type")
	}
	pos := next.PacmanPosition()

	for _, ghost := range next.Ghosts() {
		if !ghost.Scared() && Manhattan(pos, ghost.Position) <= 1 {
			return math.Inf(-1)
		}
	}

	food := next.Food()
	if len(food) == 0 {
		return math.Inf(1)
	}

	// food listed under pacman counts as one step away
	score := 10.0 / float64(max(nearest(pos, food), 1))
	if next.FoodCount() < b.FoodCount() {
		score += EatBonus
	}
	return score
}

// Manhattan returns the L1 distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// nearest returns the distance from pos to the closest target. targets must not be empty.
func nearest(pos Position, targets []Position) int {
	best := math.MaxInt
	for _, t := range targets {
		if d := Manhattan(pos, t); d < best {
			best = d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
