package engine

import (
	"errors"
	"fmt"
	"slices"

	"multiagent/agent"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine plays one game locally, asking each agent for its move in index order.
type Engine struct {
	state     game.State
	agents    []agent.Agent
	maxMoves  int
	collector metrics.Collector
}

func WithMaxMoves(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// New returns an engine where agents[i] controls agent index i of state.
func New(state game.State, agents []agent.Agent, options ...Option) (*Engine, error) {
	if len(agents) != state.NumAgents() {
		return nil, fmt.Errorf("%d agents for %d: %w", len(agents), state.NumAgents(), ErrAgentCount)
	}

	e := &Engine{ // Default values
		state:     state,
		agents:    agents,
		maxMoves:  meta.MaxMoves,
		collector: metrics.NewCountingCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop. Ghosts without a legal action sit their turn out,
// a pacman without one ends the game.
func (e *Engine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Int("agents", len(e.agents)).Int("max_moves", e.maxMoves).Msg("starting game")
	e.collector.Start()

	state := e.state
	moves := 0
	turn := game.Pacman
	for !state.IsWin() && !state.IsLose() && moves < e.maxMoves {
		legal := state.LegalActions(turn)
		if len(legal) == 0 {
			if turn == game.Pacman {
				log.Warn().Int("moves", moves).Msg("pacman has no legal actions")
				break
			}
			turn = (turn + 1) % len(e.agents)
			continue
		}

		action, metric, err := e.agents[turn].FindMove(state)
		switch {
		// legal is not empty here, so these only come from an agent misreading the state
		case errors.Is(err, agent.ErrStuck), errors.Is(err, searcher.ErrNoLegalActions):
			log.Warn().Err(err).Int("agent", turn).Msg("agent could not move, using first legal action")
			action = legal[0]
		case err != nil:
			return Result{}, metrics.GameMetric{}, nil, fmt.Errorf("agent %d: %w", turn, err)
		case !slices.Contains(legal, action):
			log.Warn().Int("agent", turn).Str("action", string(action)).Msg("illegal action, using first legal action")
			action = legal[0]
		}

		state = state.Successor(turn, action)
		e.collector.AddMove(turn, action, metric)
		moves++
		turn = (turn + 1) % len(e.agents)
	}

	result := Result{
		Outcome: outcomeOf(state),
		Score:   state.Score(),
		Moves:   moves,
		Final:   state,
	}
	gameMetric, moveMetrics := e.collector.Complete(result.Outcome.String(), result.Score)

	log.Info().
		Stringer("outcome", result.Outcome).
		Float64("score", result.Score).
		Int("moves", moves).
		Msg("game over")

	return result, gameMetric, moveMetrics, nil
}
