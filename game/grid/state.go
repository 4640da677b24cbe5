package grid

import (
	"fmt"
	"strings"

	"multiagent/game"
)

const (
	TimePenalty  = 1.0   // Paid on every Pacman move
	FoodReward   = 10.0  // Per food eaten
	WinReward    = 500.0 // Clearing the board
	LosePenalty  = 500.0 // Caught by an active ghost
	GhostReward  = 200.0 // Eating a scared ghost
	ScaredTime   = 40    // Ghost moves a capsule keeps ghosts scared
	collisionGap = 0     // Agents collide when they share a cell
)

type agent struct {
	pos    game.Position
	start  game.Position
	dir    game.Action
	scared int
}

// State is an immutable snapshot of a game. The food grid is shared between
// states until an item is eaten.
type State struct {
	layout    *layout
	food      []bool
	foodCount int
	capsules  []game.Position
	agents    []agent
	score     float64
	win       bool
	lose      bool
}

var _ game.Board = (*State)(nil)

func (s *State) NumAgents() int {
	return len(s.agents)
}

func (s *State) IsWin() bool {
	return s.win
}

func (s *State) IsLose() bool {
	return s.lose
}

func (s *State) Score() float64 {
	return s.score
}

func (s *State) PacmanPosition() game.Position {
	return s.agents[game.Pacman].pos
}

func (s *State) FoodCount() int {
	return s.foodCount
}

// Food lists the remaining food in reading order.
func (s *State) Food() []game.Position {
	food := make([]game.Position, 0, s.foodCount)
	for i, ok := range s.food {
		if ok {
			food = append(food, game.Position{X: i % s.layout.width, Y: i / s.layout.width})
		}
	}
	return food
}

func (s *State) Capsules() []game.Position {
	return append([]game.Position(nil), s.capsules...)
}

func (s *State) Ghosts() []game.Ghost {
	ghosts := make([]game.Ghost, 0, len(s.agents)-1)
	for _, g := range s.agents[1:] {
		ghosts = append(ghosts, game.Ghost{Position: g.pos, ScaredTimer: g.scared})
	}
	return ghosts
}

// LegalActions returns nothing once the game is over. Pacman may always Stop,
// ghosts never do and only reverse when there is no other way out.
func (s *State) LegalActions(i int) []game.Action {
	if s.win || s.lose {
		return nil
	}
	a := s.agentAt(i)

	var actions []game.Action
	for _, d := range directions {
		if !s.layout.isWall(step(a.pos, d)) {
			actions = append(actions, d)
		}
	}
	if i == game.Pacman {
		return append(actions, Stop)
	}

	if reverse := Reverse(a.dir); reverse != Stop && len(actions) > 1 {
		for j, d := range actions {
			if d == reverse {
				actions = append(actions[:j:j], actions[j+1:]...)
				break
			}
		}
	}
	return actions
}

// Successor applies one agent's action. It panics on a finished game or an illegal action.
func (s *State) Successor(i int, action game.Action) game.State {
	if s.win || s.lose {
		panic("successor of a finished game")
	}
	if !s.isLegal(i, action) {
		panic(fmt.Sprintf("agent %d: illegal action %q", i, action))
	}

	next := *s
	next.agents = append([]agent(nil), s.agents...)

	if i == game.Pacman {
		next.movePacman(action)
		for g := 1; g < len(next.agents); g++ {
			next.collide(g)
		}
	} else {
		next.moveGhost(i, action)
		next.collide(i)
	}
	return &next
}

func (s *State) movePacman(action game.Action) {
	p := &s.agents[game.Pacman]
	p.pos = step(p.pos, action)
	p.dir = action
	s.score -= TimePenalty

	if idx := s.layout.index(p.pos); s.food[idx] {
		food := append([]bool(nil), s.food...)
		food[idx] = false
		s.food = food
		s.foodCount--
		s.score += FoodReward
		if s.foodCount == 0 && !s.lose {
			s.score += WinReward
			s.win = true
		}
	}

	for j, c := range s.capsules {
		if c == p.pos {
			s.capsules = append(s.capsules[:j:j], s.capsules[j+1:]...)
			for g := 1; g < len(s.agents); g++ {
				s.agents[g].scared = ScaredTime
			}
			break
		}
	}
}

func (s *State) moveGhost(i int, action game.Action) {
	g := &s.agents[i]
	g.pos = step(g.pos, action)
	g.dir = action
	if g.scared > 0 {
		g.scared--
	}
}

func (s *State) collide(i int) {
	g := &s.agents[i]
	if game.Manhattan(g.pos, s.agents[game.Pacman].pos) > collisionGap {
		return
	}
	if g.scared > 0 {
		s.score += GhostReward
		g.pos = g.start
		g.dir = Stop
		g.scared = 0
		return
	}
	if !s.win && !s.lose {
		s.score -= LosePenalty
		s.lose = true
	}
}

func (s *State) isLegal(i int, action game.Action) bool {
	for _, a := range s.LegalActions(i) {
		if a == action {
			return true
		}
	}
	return false
}

func (s *State) agentAt(i int) agent {
	if i < 0 || i >= len(s.agents) {
		panic(fmt.Sprintf("unknown agent index %d", i))
	}
	return s.agents[i]
}

// String renders the board in layout notation. Scared ghosts are drawn as 'g'.
func (s *State) String() string {
	cells := make([][]byte, s.layout.height)
	for y := range cells {
		cells[y] = make([]byte, s.layout.width)
		for x := range cells[y] {
			p := game.Position{X: x, Y: y}
			switch idx := s.layout.index(p); {
			case s.layout.walls[idx]:
				cells[y][x] = '%'
			case s.food[idx]:
				cells[y][x] = '.'
			default:
				cells[y][x] = ' '
			}
		}
	}
	for _, c := range s.capsules {
		cells[c.Y][c.X] = 'o'
	}
	for _, g := range s.agents[1:] {
		if g.scared > 0 {
			cells[g.pos.Y][g.pos.X] = 'g'
		} else {
			cells[g.pos.Y][g.pos.X] = 'G'
		}
	}
	p := s.agents[game.Pacman].pos
	cells[p.Y][p.X] = 'P'

	var b strings.Builder
	for _, row := range cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %g\n", s.score)
	return b.String()
}
