package game

// Pacman is the agent index of the controlled agent. Adversaries use 1..NumAgents()-1.
const Pacman = 0

// Action is one legal move of one agent at one state.
type Action string

// State should be immutable - operations on State always return a new copy
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	Score() float64
	NumAgents() int
}

// Board is a State that also exposes the positions the reflex heuristic looks at.
type Board interface {
	State
	PacmanPosition() Position
	Food() []Position // Remaining food, normally never under pacman
	FoodCount() int
	Ghosts() []Ghost
}

// Position is a board coordinate.
type Position struct {
	X int
	Y int
}

// Ghost is an adversary as seen by the heuristics. A ghost with a positive
// ScaredTimer is neutralized and cannot catch Pacman.
type Ghost struct {
	Position    Position
	ScaredTimer int
}

func (g Ghost) Scared() bool {
	return g.ScaredTimer > 0
}

// Evaluates a state to a desirability value from Pacman's perspective.
type Evaluate func(State) float64
