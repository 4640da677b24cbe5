package searcher

import (
	"fmt"
	"math"

	"multiagent/game"
)

// window is the (alpha, beta) pair. Only alpha-beta folds read or narrow it.
type window struct {
	alpha float64
	beta  float64
}

var fullWindow = window{alpha: math.Inf(-1), beta: math.Inf(1)}

// fold combines the values of a node's children, one child at a time.
type fold interface {
	// window is passed to the next child
	window() window
	// add reports whether the remaining siblings can be skipped
	add(v float64) bool
	value() float64
}

// strategy decides how max and adversary nodes fold their children.
type strategy interface {
	maximize(w window) fold
	adversary(w window) fold
}

// tree is the depth-limited traversal shared by all engines.
type tree struct {
	strategy strategy
	depth    int
	evaluate game.Evaluate
	metrics  Collector
}

// root values each of Pacman's actions and keeps the first one with the greatest value.
func (t *tree) root(state game.State) (game.Action, float64, error) {
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return "", math.Inf(-1), ErrNoLegalActions
	}
	numAgents := state.NumAgents()
	t.metrics.AddNode(0)

	// beta stays +Inf at the root, so the fold only raises alpha and never cuts
	f := t.strategy.maximize(fullWindow)
	agent, depth := nextTurn(game.Pacman, 0, numAgents)

	best, bestValue := actions[0], math.Inf(-1)
	for i, action := range actions {
		child := state.Successor(game.Pacman, action)
		t.metrics.AddSuccessor()
		v := t.value(child, agent, depth, f.window())
		f.add(v)
		if i == 0 || v > bestValue {
			best, bestValue = action, v
		}
	}
	return best, bestValue, nil
}

func (t *tree) value(state game.State, agent, depth int, w window) float64 {
	numAgents := state.NumAgents()
	t.metrics.AddNode(ply(agent, depth, numAgents))

	actions, leaf := t.expand(state, agent, depth)
	if leaf {
		t.metrics.AddLeaf()
		return t.evaluate(state)
	}

	var f fold
	if agent == game.Pacman {
		f = t.strategy.maximize(w)
	} else {
		f = t.strategy.adversary(w)
	}

	nextAgent, nextDepth := nextTurn(agent, depth, numAgents)
	for i, action := range actions {
		child := state.Successor(agent, action)
		t.metrics.AddSuccessor()
		// a cut on the last child skips nothing
		if f.add(t.value(child, nextAgent, nextDepth, f.window())) && i < len(actions)-1 {
			t.metrics.AddCutoff()
			break
		}
	}
	return f.value()
}

// expand returns the mover's actions, or leaf when the node must be evaluated instead.
// The depth limit is only checked at max nodes, where a new round starts.
func (t *tree) expand(state game.State, agent, depth int) (actions []game.Action, leaf bool) {
	if agent == game.Pacman {
		if depth > t.depth {
			panic(fmt.Sprintf("search passed depth limit %d at depth %d", t.depth, depth))
		}
		if depth == t.depth {
			return nil, true
		}
	}
	if state.IsWin() || state.IsLose() {
		return nil, true
	}
	actions = state.LegalActions(agent)
	return actions, len(actions) == 0
}

// maxFold and minFold keep a running optimum and never cut.
type maxFold struct {
	v float64
	w window
}

func newMaxFold(w window) *maxFold {
	return &maxFold{v: math.Inf(-1), w: w}
}

func (f *maxFold) window() window { return f.w }
func (f *maxFold) value() float64 { return f.v }

func (f *maxFold) add(v float64) bool {
	f.v = max(f.v, v)
	return false
}

type minFold struct {
	v float64
	w window
}

func newMinFold(w window) *minFold {
	return &minFold{v: math.Inf(1), w: w}
}

func (f *minFold) window() window { return f.w }
func (f *minFold) value() float64 { return f.v }

func (f *minFold) add(v float64) bool {
	f.v = min(f.v, v)
	return false
}
