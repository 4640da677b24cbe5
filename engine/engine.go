package engine

import (
	"errors"
	"fmt"

	"multiagent/game"
)

var ErrAgentCount = errors.New("number of agents does not match the state")

// Outcome is how a game ended.
type Outcome int

const (
	Unfinished Outcome = iota // Move cap reached or pacman stuck
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Unfinished:
		return "unfinished"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func outcomeOf(state game.State) Outcome {
	switch {
	case state.IsWin():
		return Win
	case state.IsLose():
		return Lose
	}
	return Unfinished
}

type Result struct {
	Outcome Outcome
	Score   float64
	Moves   int
	Final   game.State
}
