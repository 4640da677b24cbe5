package searcher

import (
	"fmt"
	"strconv"
	"strings"

	"multiagent/game"

	"golang.org/x/exp/rand"
)

// mockNode is a node of a synthetic game tree. The mover of a node is its ply
// modulo the number of agents, so a mis-sequenced search panics in LegalActions.
type mockNode struct {
	score    float64
	win      bool
	lose     bool
	children []*mockNode
}

func leaf(score float64) *mockNode {
	return &mockNode{score: score}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

func leaves(scores ...float64) *mockNode {
	n := &mockNode{}
	for _, s := range scores {
		n.children = append(n.children, leaf(s))
	}
	return n
}

type mockStats struct {
	successors int
	scoredAt   []int // plies of every scored node
}

type mockState struct {
	node   *mockNode
	agents int
	ply    int
	stats  *mockStats
}

func newMockState(root *mockNode, agents int) mockState {
	return mockState{node: root, agents: agents, stats: &mockStats{}}
}

func action(i int) game.Action {
	return game.Action(fmt.Sprintf("a%d", i))
}

func (m mockState) mover() int {
	return m.ply % m.agents
}

func (m mockState) LegalActions(agent int) []game.Action {
	if agent != m.mover() {
		panic(fmt.Sprintf("ply %d: agent %d asked to move, expected %d", m.ply, agent, m.mover()))
	}
	actions := make([]game.Action, len(m.node.children))
	for i := range m.node.children {
		actions[i] = action(i)
	}
	return actions
}

func (m mockState) Successor(agent int, a game.Action) game.State {
	if agent != m.mover() {
		panic(fmt.Sprintf("ply %d: agent %d moved, expected %d", m.ply, agent, m.mover()))
	}
	i, err := strconv.Atoi(strings.TrimPrefix(string(a), "a"))
	if err != nil || i >= len(m.node.children) {
		panic(fmt.Sprintf("unknown action %q", a))
	}
	m.stats.successors++
	return mockState{node: m.node.children[i], agents: m.agents, ply: m.ply + 1, stats: m.stats}
}

func (m mockState) IsWin() bool    { return m.node.win }
func (m mockState) IsLose() bool   { return m.node.lose }
func (m mockState) NumAgents() int { return m.agents }

func (m mockState) Score() float64 {
	m.stats.scoredAt = append(m.stats.scoredAt, m.ply)
	return m.node.score
}

// fullTree has the same branching at every node down to plies. Scores count up in
// leaf order so that every node has a distinct value.
func fullTree(branching, plies int) *mockNode {
	next := 0.0
	var build func(level int) *mockNode
	build = func(level int) *mockNode {
		n := &mockNode{score: next}
		next++
		if level == plies {
			return n
		}
		for i := 0; i < branching; i++ {
			n.children = append(n.children, build(level+1))
		}
		return n
	}
	return build(0)
}

// randomTree draws small integer scores so that ties are common.
func randomTree(rng *rand.Rand, plies int) *mockNode {
	n := &mockNode{score: float64(rng.Intn(10))}
	if plies == 0 {
		return n
	}
	switch rng.Intn(12) {
	case 0:
		n.win = true
	case 1:
		n.lose = true
	}
	branching := rng.Intn(4)
	for i := 0; i < branching; i++ {
		n.children = append(n.children, randomTree(rng, plies-1))
	}
	return n
}
