package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"multiagent/agent"
	"multiagent/game/grid"
	"multiagent/searcher"

	"github.com/stretchr/testify/require"
)

func TestParseSetup(t *testing.T) {
	t.Run("defaulting matchup configs", func(t *testing.T) {
		s, err := ParseSetup([]byte(`
name: small-run
games: 3
matchups:
  - pacman: {agent: minimax}
  - name: base
`))
		require.NoError(t, err)
		require.Equal(t, "small-run", s.Name)
		require.Equal(t, 3, s.Games)
		require.Equal(t, "small", s.Layout)
		require.Len(t, s.Matchups, 2)
		require.Equal(t, agent.Config{Agent: "minimax", Evaluator: agent.ScoreEvaluator, Depth: 2}, s.Matchups[0].Pacman)
		require.Equal(t, "minimax-2", s.Matchups[0].label())
		require.Equal(t, agent.DefaultConfig(), s.Matchups[1].Pacman)
		require.Equal(t, "base", s.Matchups[1].label())
	})

	t.Run("reading json", func(t *testing.T) {
		s, err := ParseSetup([]byte(`{"layout": "tiny", "seed": 9, "matchups": [{"pacman": {"agent": "reflex"}}]}`))
		require.NoError(t, err)
		require.Equal(t, "tiny", s.Layout)
		require.Equal(t, uint64(9), s.Seed)
		require.Equal(t, "reflex", s.Matchups[0].label())
	})

	t.Run("rejecting bad setups", func(t *testing.T) {
		tests := []struct {
			name string
			yaml string
			want error
		}{
			{name: "no matchups", yaml: "games: 2", want: ErrNoMatchups},
			{name: "no games", yaml: "games: 0\nmatchups: [{}]", want: ErrNoGames},
			{name: "zero depth", yaml: "matchups: [{pacman: {depth: 0}}]", want: searcher.ErrInvalidDepth},
			{name: "unknown ghosts", yaml: "ghosts: clyde\nmatchups: [{}]", want: agent.ErrUnknownGhost},
			{name: "unknown layout", yaml: "layout: huge\nmatchups: [{}]", want: grid.ErrUnknownName},
		}
		for _, tt := range tests {
			_, err := ParseSetup([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.want, tt.name)
		}
	})

	t.Run("rejecting a non-integer depth", func(t *testing.T) {
		_, err := ParseSetup([]byte("matchups: [{pacman: {depth: deep}}]"))
		require.Error(t, err)
	})

	t.Run("loading a layout file", func(t *testing.T) {
		dir := t.TempDir()
		layout := filepath.Join(dir, "corridor.lay")
		require.NoError(t, os.WriteFile(layout, []byte("%%%%%\n%.P.%\n%%%%%\n"), 0o644))
		path := filepath.Join(dir, "setup.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout_file: "+layout+"\nmatchups: [{}]\n"), 0o644))

		s, err := LoadSetup(path)
		require.NoError(t, err)
		state, err := s.layout()
		require.NoError(t, err)
		require.Equal(t, 2, state.FoodCount())
	})
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows)
}

func tinySetup(matchups []Matchup) Setup {
	s := DefaultSetup()
	s.Layout = "tiny"
	s.Games = 2
	s.MaxMoves = 60
	s.Matchups = matchups
	return s
}

func TestRun(t *testing.T) {
	t.Run("writing records", func(t *testing.T) {
		s := tinySetup(append(Sweep([]searcher.Kind{searcher.AlphaBeta}, []int{1}), Matchup{Pacman: agent.Config{Agent: agent.Reflex}}))
		s.OutputDir = t.TempDir()

		report, err := Run(s)
		require.NoError(t, err)
		require.Len(t, report.Games, 4)
		require.Len(t, report.Summaries, 2)
		require.Equal(t, "alphabeta-1", report.Summaries[0].Matchup)
		require.Equal(t, "reflex", report.Summaries[1].Matchup)

		moves := 0
		ids := map[string]bool{}
		for _, g := range report.Games {
			moves += g.TotalMoves
			ids[g.ID.String()] = true
		}
		require.Len(t, ids, 4)
		for _, summary := range report.Summaries {
			require.Equal(t, 2, summary.Games)
			require.Equal(t, 2, summary.Wins+summary.Losses+summary.Unfinished)
		}
		require.Positive(t, report.Summaries[0].MeanNodes)
		require.Zero(t, report.Summaries[1].MeanNodes)

		require.FileExists(t, filepath.Join(report.Dir, "setup.json"))
		require.Equal(t, 5, countRows(t, filepath.Join(report.Dir, "games.csv")))
		require.Equal(t, 1+moves, countRows(t, filepath.Join(report.Dir, "moves.csv")))
		require.Equal(t, 3, countRows(t, filepath.Join(report.Dir, "summary.csv")))
	})

	t.Run("repeating games for the same seed", func(t *testing.T) {
		s := tinySetup(Sweep([]searcher.Kind{searcher.Expectimax}, []int{1}))
		first, err := Run(s)
		require.NoError(t, err)
		second, err := Run(s)
		require.NoError(t, err)
		require.Empty(t, first.Dir)

		for i := range first.Games {
			require.Equal(t, first.Games[i].Score, second.Games[i].Score)
			require.Equal(t, first.Games[i].TotalMoves, second.Games[i].TotalMoves)
		}
	})

	t.Run("pruning playing like minimax with fewer nodes", func(t *testing.T) {
		s := tinySetup(Sweep([]searcher.Kind{searcher.Minimax, searcher.AlphaBeta}, []int{2}))
		s.Ghosts = agent.DirectionalGhosts

		report, err := Run(s)
		require.NoError(t, err)
		minimax, alphaBeta := report.Games[:2], report.Games[2:]
		for i := range minimax {
			require.Equal(t, minimax[i].Score, alphaBeta[i].Score)
			require.Equal(t, minimax[i].TotalMoves, alphaBeta[i].TotalMoves)
		}
		require.LessOrEqual(t, report.Summaries[1].MeanNodes, report.Summaries[0].MeanNodes)
	})
}

func TestPreset(t *testing.T) {
	require.Equal(t, []string{"adversary", "pruning"}, PresetNames())
	for _, name := range PresetNames() {
		s, err := Preset(name)
		require.NoError(t, err)
		require.NoError(t, s.Validate(), name)
	}

	_, err := Preset("speedup")
	require.ErrorIs(t, err, ErrUnknownPreset)
}
