package searcher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDepth   = errors.New("search depth must be a positive integer")
	ErrUnknownKind    = errors.New("unknown search kind")
	ErrNoLegalActions = errors.New("no legal actions for pacman")
)

// Kind selects how adversaries are modeled.
type Kind int

const (
	Minimax Kind = iota
	AlphaBeta
	Expectimax
)

var kindNames = map[Kind]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names printed by String, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%d: %w", int(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) strategy() (strategy, error) {
	switch k {
	case Minimax:
		return minimax{}, nil
	case AlphaBeta:
		return alphaBeta{}, nil
	case Expectimax:
		return expectimax{}, nil
	}
	return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
}
