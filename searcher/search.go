package searcher

import (
	"fmt"

	"multiagent/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks Pacman's next action with a depth-limited adversarial search.
// It keeps no state between calls and is safe for concurrent use.
type Searcher struct {
	kind       Kind
	depth      int
	strategy   strategy
	evaluate   game.Evaluate
	newMetrics func() Collector
}

// Result is the outcome of one search.
type Result struct {
	Action game.Action
	Value  float64
	Metric SearchMetric
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newMetrics = NewCollector
	}
}

// New returns a searcher exploring depth full rounds. The default leaf value is the state's score.
func New(kind Kind, depth int, options ...Option) (*Searcher, error) {
	strategy, err := kind.strategy()
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}

	s := &Searcher{ // Default values
		kind:       kind,
		depth:      depth,
		strategy:   strategy,
		evaluate:   game.EvaluateScore,
		newMetrics: NewNoCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func (s *Searcher) Kind() Kind {
	return s.kind
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Decide returns Pacman's best action, or ErrNoLegalActions when Pacman cannot move.
func (s *Searcher) Decide(state game.State) (game.Action, error) {
	result, err := s.Search(state)
	return result.Action, err
}

func (s *Searcher) Search(state game.State) (Result, error) {
	metrics := s.newMetrics()
	metrics.Start(s.kind, s.depth)

	t := &tree{
		strategy: s.strategy,
		depth:    s.depth,
		evaluate: s.evaluate,
		metrics:  metrics,
	}
	action, value, err := t.root(state)
	metric := metrics.Complete()
	if err != nil {
		return Result{Value: value, Metric: metric}, err
	}

	log.Debug().
		Stringer("kind", s.kind).
		Int("depth", s.depth).
		Str("action", string(action)).
		Float64("value", value).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msg("search decided")

	return Result{Action: action, Value: value, Metric: metric}, nil
}
