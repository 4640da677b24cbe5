// Package grid is a small deterministic Pacman world implementing game.Board.
//
// Coordinates follow the layout text: (0,0) is the top-left cell, X grows to the
// right and Y grows downwards, so North decreases Y.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"multiagent/game"
)

const (
	North game.Action = "North"
	South game.Action = "South"
	East  game.Action = "East"
	West  game.Action = "West"
	Stop  game.Action = "Stop"
)

// directions lists the moving actions in the order legal actions are reported.
var directions = []game.Action{North, South, East, West}

var (
	ErrEmptyLayout  = errors.New("layout is empty")
	ErrRaggedLayout = errors.New("layout rows differ in width")
	ErrNoPacman     = errors.New("layout has no pacman")
	ErrManyPacmen   = errors.New("layout has more than one pacman")
	ErrBadCell      = errors.New("layout has an unknown cell")
	ErrUnknownName  = errors.New("unknown layout name")
)

// layout is the static part of a board, shared by every state of a game.
type layout struct {
	width  int
	height int
	walls  []bool
}

func (l *layout) index(p game.Position) int {
	return p.Y*l.width + p.X
}

func (l *layout) inside(p game.Position) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

func (l *layout) isWall(p game.Position) bool {
	return !l.inside(p) || l.walls[l.index(p)]
}

// Parse builds the initial state from a layout text.
//
//	% wall    . food    o capsule    P pacman    G ghost    (space) empty
//
// Ghost agent indices follow reading order, starting at 1.
func Parse(text string) (*State, error) {
	rows := strings.Split(strings.Trim(text, "\n"), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], "\r")
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	width := len(rows[0])
	l := &layout{width: width, height: len(rows), walls: make([]bool, width*len(rows))}
	s := &State{
		layout: l,
		food:   make([]bool, width*len(rows)),
	}

	var pacman []agent
	var ghosts []agent
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: %w", y, ErrRaggedLayout)
		}
		for x, cell := range row {
			p := game.Position{X: x, Y: y}
			switch cell {
			case '%':
				l.walls[l.index(p)] = true
			case '.':
				s.food[l.index(p)] = true
				s.foodCount++
			case 'o':
				s.capsules = append(s.capsules, p)
			case 'P':
				pacman = append(pacman, agent{pos: p, start: p, dir: Stop})
			case 'G':
				ghosts = append(ghosts, agent{pos: p, start: p, dir: Stop})
			case ' ':
			default:
				return nil, fmt.Errorf("row %d column %d %q: %w", y, x, cell, ErrBadCell)
			}
		}
	}

	switch len(pacman) {
	case 0:
		return nil, ErrNoPacman
	case 1:
	default:
		return nil, ErrManyPacmen
	}

	s.agents = append(pacman, ghosts...)
	s.win = s.foodCount == 0
	return s, nil
}

// MustParse is like Parse but panics on a malformed layout.
func MustParse(text string) *State {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Layout returns the initial state of a built-in layout.
func Layout(name string) (*State, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
	return Parse(text)
}

// Names lists the built-in layouts.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	return names
}

func step(p game.Position, a game.Action) game.Position {
	switch a {
	case North:
		return game.Position{X: p.X, Y: p.Y - 1}
	case South:
		return game.Position{X: p.X, Y: p.Y + 1}
	case East:
		return game.Position{X: p.X + 1, Y: p.Y}
	case West:
		return game.Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// Reverse returns the opposite direction. Stop reverses to itself.
func Reverse(a game.Action) game.Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return a
}
