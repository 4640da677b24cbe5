package experiments

import (
	"errors"
	"fmt"
	"sort"

	"multiagent/agent"
	"multiagent/searcher"
)

var ErrUnknownPreset = errors.New("unknown experiment preset")

// Sweep pairs every kind with every depth, all scoring leaves by game score.
func Sweep(kinds []searcher.Kind, depths []int) []Matchup {
	matchUps := []Matchup{}
	for _, kind := range kinds {
		for _, depth := range depths {
			matchUps = append(matchUps, Matchup{Pacman: agent.Config{
				Agent:     kind.String(),
				Evaluator: agent.ScoreEvaluator,
				Depth:     depth,
			}})
		}
	}
	return matchUps
}

var presets = map[string]func() Setup{
	// Pruning must not change play, only the node counts
	"pruning": func() Setup {
		s := DefaultSetup()
		s.Name = "pruning"
		s.Ghosts = agent.DirectionalGhosts
		s.Matchups = Sweep([]searcher.Kind{searcher.Minimax, searcher.AlphaBeta}, []int{1, 2, 3})
		return s
	},
	// Worst-case against chance modeling, with the reflex agent as baseline
	"adversary": func() Setup {
		s := DefaultSetup()
		s.Name = "adversary"
		s.Layout = "trapped"
		s.Matchups = append(
			[]Matchup{{Pacman: agent.Config{Agent: agent.Reflex}}},
			Sweep([]searcher.Kind{searcher.AlphaBeta, searcher.Expectimax}, []int{3})...,
		)
		return s
	},
}

// Preset returns a built-in setup by name.
func Preset(name string) (Setup, error) {
	preset, ok := presets[name]
	if !ok {
		return Setup{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return preset(), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
