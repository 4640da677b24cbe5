package agent

import (
	"fmt"

	"multiagent/game"
	"multiagent/searcher"

	"golang.org/x/exp/rand"
)

type randomGhost struct {
	index int
	rng   *rand.Rand
}

// NewRandomGhost returns a ghost choosing uniformly among its legal actions.
func NewRandomGhost(index int, rng *rand.Rand) Agent {
	return &randomGhost{index: index, rng: rng}
}

func (g *randomGhost) FindMove(state game.State) (game.Action, searcher.SearchMetric, error) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return "", searcher.SearchMetric{}, fmt.Errorf("ghost %d: %w", g.index, ErrStuck)
	}
	return actions[g.rng.Intn(len(actions))], searcher.SearchMetric{}, nil
}

type directionalGhost struct {
	index int
	prob  float64
	rng   *rand.Rand
}

// NewDirectionalGhost returns a ghost that, with probability prob, takes a move
// closing in on Pacman (or running away while scared) and otherwise moves at random.
func NewDirectionalGhost(index int, prob float64, rng *rand.Rand) Agent {
	return &directionalGhost{index: index, prob: prob, rng: rng}
}

func (g *directionalGhost) FindMove(state game.State) (game.Action, searcher.SearchMetric, error) {
	board, ok := state.(game.Board)
	if !ok {
		return "", searcher.SearchMetric{}, ErrNotBoard
	}
	actions := board.LegalActions(g.index)
	if len(actions) == 0 {
		return "", searcher.SearchMetric{}, fmt.Errorf("ghost %d: %w", g.index, ErrStuck)
	}
	if g.rng.Float64() >= g.prob {
		return actions[g.rng.Intn(len(actions))], searcher.SearchMetric{}, nil
	}

	scared := board.Ghosts()[g.index-1].Scared()
	pacman := board.PacmanPosition()
	var best []game.Action
	bestDist := 0
	for _, action := range actions {
		next, ok := board.Successor(g.index, action).(game.Board)
		if !ok {
			return "", searcher.SearchMetric{}, ErrNotBoard
		}
		dist := game.Manhattan(next.Ghosts()[g.index-1].Position, pacman)
		closer := dist < bestDist
		if scared {
			closer = dist > bestDist
		}
		if len(best) == 0 || closer {
			best, bestDist = []game.Action{action}, dist
		} else if dist == bestDist {
			best = append(best, action)
		}
	}
	return best[g.rng.Intn(len(best))], searcher.SearchMetric{}, nil
}
