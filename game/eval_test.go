package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockBoard struct {
	pacman Position
	food   []Position
	ghosts []Ghost
	score  float64
	next   State
}

func (m *mockBoard) LegalActions(agent int) []Action       { return []Action{"Stop"} }
func (m *mockBoard) Successor(agent int, action Action) State { return m.next }
func (m *mockBoard) IsWin() bool                              { return len(m.food) == 0 }
func (m *mockBoard) IsLose() bool                             { return false }
func (m *mockBoard) Score() float64                           { return m.score }
func (m *mockBoard) NumAgents() int                           { return 1 + len(m.ghosts) }
func (m *mockBoard) PacmanPosition() Position                 { return m.pacman }
func (m *mockBoard) Food() []Position                         { return m.food }
func (m *mockBoard) FoodCount() int                           { return len(m.food) }
func (m *mockBoard) Ghosts() []Ghost                          { return m.ghosts }

// moving builds a current board whose successor is next
func moving(food int, next *mockBoard) *mockBoard {
	return &mockBoard{food: make([]Position, food), next: next}
}

func TestEvaluateReflex(t *testing.T) {
	origin := Position{X: 0, Y: 0}
	twoFood := []Position{{X: 2, Y: 0}, {X: 0, Y: 5}}

	t.Run("ignoring an adjacent scared ghost", func(t *testing.T) {
		next := &mockBoard{
			pacman: origin,
			food:   twoFood,
			ghosts: []Ghost{{Position: Position{X: 1, Y: 0}, ScaredTimer: 3}},
		}

		got := EvaluateReflex(moving(2, next), "East")

		require.Equal(t, 5.0, got, "Should score 10 over the nearest food without bonus or penalty")
	})

	t.Run("adding the eat bonus", func(t *testing.T) {
		next := &mockBoard{pacman: origin, food: twoFood}

		got := EvaluateReflex(moving(3, next), "East")

		require.Equal(t, 5.0+EatBonus, got)
	})

	t.Run("staying finite with food under pacman", func(t *testing.T) {
		next := &mockBoard{pacman: origin, food: []Position{origin, {X: 0, Y: 5}}}

		got := EvaluateReflex(moving(2, next), "Stop")

		require.Equal(t, 10.0, got)
	})

	t.Run("fleeing an active ghost within one step", func(t *testing.T) {
		for _, ghost := range []Position{{X: 1, Y: 0}, {X: 0, Y: -1}, origin} {
			next := &mockBoard{
				pacman: origin,
				food:   twoFood,
				ghosts: []Ghost{{Position: Position{X: 9, Y: 9}}, {Position: ghost}},
			}

			got := EvaluateReflex(moving(2, next), "East")

			require.Equal(t, math.Inf(-1), got, "Ghost at %v should be certain death", ghost)
		}
	})

	t.Run("ignoring an active ghost two steps away", func(t *testing.T) {
		next := &mockBoard{
			pacman: origin,
			food:   twoFood,
			ghosts: []Ghost{{Position: Position{X: 1, Y: 1}}},
		}

		require.Equal(t, 5.0, EvaluateReflex(moving(2, next), "East"))
	})

	t.Run("clearing the board", func(t *testing.T) {
		next := &mockBoard{pacman: origin}

		require.Equal(t, math.Inf(1), EvaluateReflex(moving(1, next), "East"))
	})

	t.Run("death dominates clearing the board", func(t *testing.T) {
		next := &mockBoard{
			pacman: origin,
			ghosts: []Ghost{{Position: Position{X: 0, Y: 1}}},
		}

		require.Equal(t, math.Inf(-1), EvaluateReflex(moving(1, next), "East"))
	})

	t.Run("panicking on a successor without positions", func(t *testing.T) {
		current := &mockBoard{food: twoFood, next: nil}

		require.Panics(t, func() {
			EvaluateReflex(current, "East")
		})
	})
}

func TestEvaluateScore(t *testing.T) {
	require.Equal(t, -12.5, EvaluateScore(&mockBoard{score: -12.5}))
}

func TestManhattan(t *testing.T) {
	require.Equal(t, 0, Manhattan(Position{X: 3, Y: 4}, Position{X: 3, Y: 4}))
	require.Equal(t, 7, Manhattan(Position{X: 0, Y: 0}, Position{X: 3, Y: -4}))
	require.Equal(t, 7, Manhattan(Position{X: 3, Y: -4}, Position{X: 0, Y: 0}))
}

func TestGhostScared(t *testing.T) {
	require.False(t, Ghost{}.Scared())
	require.True(t, Ghost{ScaredTimer: 1}.Scared())
}
