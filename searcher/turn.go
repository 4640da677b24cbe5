package searcher

import "multiagent/game"

// nextTurn returns who moves after agent and at which depth. A round ends after the
// last adversary moves, so control returns to Pacman one depth deeper.
func nextTurn(agent, depth, numAgents int) (int, int) {
	if agent == numAgents-1 {
		return game.Pacman, depth + 1
	}
	return agent + 1, depth
}

// ply counts single moves from the root to a node.
func ply(agent, depth, numAgents int) int {
	return depth*numAgents + agent
}
