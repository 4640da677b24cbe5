package agent

import (
	"errors"
	"fmt"
	"os"

	"multiagent/game"
	"multiagent/meta"
	"multiagent/searcher"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

// Reflex names the non-searching Pacman in Config.Agent. Every other name is a searcher.Kind.
const Reflex = "reflex"

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// EvaluatorName selects the leaf evaluation of a search agent.
type EvaluatorName string

const ScoreEvaluator EvaluatorName = "score"

// Func resolves the name to its evaluation function.
func (e EvaluatorName) Func() (game.Evaluate, error) {
	switch e {
	case ScoreEvaluator, "":
		return game.EvaluateScore, nil
	}
	return nil, fmt.Errorf("%q: %w", string(e), ErrUnknownEvaluator)
}

// Config selects and tunes Pacman.
type Config struct {
	Agent     string        `yaml:"agent" json:"agent"`
	Evaluator EvaluatorName `yaml:"evaluator" json:"evaluator"`
	Depth     int           `yaml:"depth" json:"depth"`
}

func DefaultConfig() Config {
	return Config{
		Agent:     meta.DefaultAgent,
		Evaluator: ScoreEvaluator,
		Depth:     meta.DefaultDepth,
	}
}

// Validate rejects unknown agents and evaluators, and non-positive depths for search agents.
func (c Config) Validate() error {
	if c.Agent == Reflex {
		return nil
	}
	if _, err := searcher.ParseKind(c.Agent); err != nil {
		return err
	}
	if _, err := c.Evaluator.Func(); err != nil {
		return err
	}
	if c.Depth <= 0 {
		return fmt.Errorf("depth %d: %w", c.Depth, searcher.ErrInvalidDepth)
	}
	return nil
}

// ParseConfig reads a YAML config over the defaults.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse agent config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read agent config: %w", err)
	}
	return ParseConfig(data)
}

// New builds Pacman from a config. rng is only used by the reflex agent.
func New(c Config, rng *rand.Rand) (Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Agent == Reflex {
		return NewReflexAgent(rng), nil
	}

	kind, err := searcher.ParseKind(c.Agent)
	if err != nil {
		return nil, err
	}
	evaluate, err := c.Evaluator.Func()
	if err != nil {
		return nil, err
	}
	s, err := searcher.New(kind, c.Depth, searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
	if err != nil {
		return nil, err
	}
	return NewSearchAgent(s), nil
}

// GhostKind selects how ghosts move in a local game.
type GhostKind string

const (
	RandomGhosts      GhostKind = "random"
	DirectionalGhosts GhostKind = "directional"
)

var ErrUnknownGhost = errors.New("unknown ghost kind")

func (k GhostKind) Validate() error {
	switch k {
	case RandomGhosts, DirectionalGhosts, "":
		return nil
	}
	return fmt.Errorf("%q: %w", string(k), ErrUnknownGhost)
}

// NewGhosts returns agents for indices 1..numAgents-1, all drawing from rng.
func NewGhosts(kind GhostKind, numAgents int, rng *rand.Rand) ([]Agent, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	ghosts := make([]Agent, 0, numAgents-1)
	for i := 1; i < numAgents; i++ {
		switch kind {
		case RandomGhosts, "":
			ghosts = append(ghosts, NewRandomGhost(i, rng))
		case DirectionalGhosts:
			ghosts = append(ghosts, NewDirectionalGhost(i, meta.DirectionalProb, rng))
		}
	}
	return ghosts, nil
}

// NewPlayers returns pacman followed by its ghosts. Pacman and the ghosts draw from
// separate sources derived from seed, so pacman's tie-breaks never shift ghost moves.
func NewPlayers(c Config, ghosts GhostKind, numAgents int, seed uint64) ([]Agent, error) {
	pacman, err := New(c, rand.New(rand.NewSource(^seed)))
	if err != nil {
		return nil, err
	}
	others, err := NewGhosts(ghosts, numAgents, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return append([]Agent{pacman}, others...), nil
}
