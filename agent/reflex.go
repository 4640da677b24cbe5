package agent

import (
	"math"

	"multiagent/game"
	"multiagent/searcher"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	rng *rand.Rand
}

// NewReflexAgent returns Pacman scoring each action one step ahead. Ties between the
// best actions are broken uniformly at random with rng.
func NewReflexAgent(rng *rand.Rand) Agent {
	return &reflexAgent{rng: rng}
}

func (a *reflexAgent) FindMove(state game.State) (game.Action, searcher.SearchMetric, error) {
	board, ok := state.(game.Board)
	if !ok {
		return "", searcher.SearchMetric{}, ErrNotBoard
	}
	actions := board.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return "", searcher.SearchMetric{}, searcher.ErrNoLegalActions
	}

	bestScore := math.Inf(-1)
	var best []int
	for i, action := range actions {
		score := game.EvaluateReflex(board, action)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, i)
		}
	}
	return actions[best[a.rng.Intn(len(best))]], searcher.SearchMetric{}, nil
}
