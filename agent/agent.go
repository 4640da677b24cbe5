package agent

import (
	"errors"

	"multiagent/game"
	"multiagent/searcher"
)

var (
	ErrNotBoard = errors.New("state does not expose board positions")
	ErrStuck    = errors.New("agent has no legal actions")
)

type Agent interface {
	// FindMove returns the agent's action and the metrics of the search behind it, if any
	FindMove(state game.State) (game.Action, searcher.SearchMetric, error)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns Pacman driven by a depth-limited search.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Action, searcher.SearchMetric, error) {
	result, err := a.searcher.Search(state)
	return result.Action, result.Metric, err
}
