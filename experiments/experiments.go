package experiments

import (
	"errors"
	"fmt"
	"os"

	"multiagent/agent"
	"multiagent/engine"
	"multiagent/experiments/metrics"
	"multiagent/game/grid"
	"multiagent/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoMatchups = errors.New("experiment has no matchups")
	ErrNoGames    = errors.New("experiment needs at least one game per matchup")
)

// Matchup is one pacman configuration played against the setup's ghosts.
type Matchup struct {
	Name   string       `yaml:"name" json:"name"`
	Pacman agent.Config `yaml:"pacman" json:"pacman"`
}

func (m Matchup) label() string {
	if m.Name != "" {
		return m.Name
	}
	if m.Pacman.Agent == agent.Reflex {
		return agent.Reflex
	}
	return fmt.Sprintf("%s-%d", m.Pacman.Agent, m.Pacman.Depth)
}

type Setup struct {
	Name       string          `yaml:"name" json:"name"`
	Layout     string          `yaml:"layout" json:"layout"`           // Built-in layout name
	LayoutFile string          `yaml:"layout_file" json:"layout_file"` // Overrides Layout when set
	Ghosts     agent.GhostKind `yaml:"ghosts" json:"ghosts"`
	Games      int             `yaml:"games" json:"games"` // Per matchup
	Seed       uint64          `yaml:"seed" json:"seed"`
	MaxMoves   int             `yaml:"max_moves" json:"max_moves"`
	OutputDir  string          `yaml:"output_dir" json:"output_dir"` // Nothing is written when empty
	Matchups   []Matchup       `yaml:"matchups" json:"matchups"`
}

func DefaultSetup() Setup {
	return Setup{
		Name:     "experiment",
		Layout:   meta.DefaultLayout,
		Ghosts:   agent.RandomGhosts,
		Games:    meta.NumGames,
		Seed:     1,
		MaxMoves: meta.MaxMoves,
	}
}

// UnmarshalYAML fills the fields missing from a matchup's pacman config with the agent defaults.
func (m *Matchup) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name   string    `yaml:"name"`
		Pacman yaml.Node `yaml:"pacman"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c := agent.DefaultConfig()
	if !raw.Pacman.IsZero() {
		if err := raw.Pacman.Decode(&c); err != nil {
			return fmt.Errorf("matchup %q: %w", raw.Name, err)
		}
	}
	*m = Matchup{Name: raw.Name, Pacman: c}
	return nil
}

// ParseSetup reads a YAML or JSON setup over the defaults.
func ParseSetup(data []byte) (Setup, error) {
	s := DefaultSetup()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Setup{}, fmt.Errorf("failed to parse experiment setup: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Setup{}, err
	}
	return s, nil
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read experiment setup: %w", err)
	}
	return ParseSetup(data)
}

func (s Setup) Validate() error {
	if len(s.Matchups) == 0 {
		return ErrNoMatchups
	}
	if s.Games <= 0 {
		return ErrNoGames
	}
	for _, m := range s.Matchups {
		if err := m.Pacman.Validate(); err != nil {
			return fmt.Errorf("matchup %s: %w", m.label(), err)
		}
	}
	if err := s.Ghosts.Validate(); err != nil {
		return err
	}
	if _, err := s.layout(); err != nil {
		return err
	}
	return nil
}

func (s Setup) layout() (*grid.State, error) {
	if s.LayoutFile == "" {
		return grid.Layout(s.Layout)
	}
	text, err := os.ReadFile(s.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return grid.Parse(string(text))
}

type Report struct {
	Dir       string // Empty when nothing was written
	Games     []metrics.GameRecord
	Summaries []metrics.Summary
}

// Run plays every matchup Games times. Game i of every matchup uses the same seed, so
// all matchups face the same ghost random source.
func Run(setup Setup) (Report, error) {
	if err := setup.Validate(); err != nil {
		return Report{}, err
	}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	var report Report
	moveRecords := []metrics.MoveRecord{}
	for mi, matchup := range setup.Matchups {
		log.Info().Msgf("starting matchup %d of %d with %s...", mi+1, len(setup.Matchups), matchup.label())

		records := make([]metrics.GameRecord, 0, setup.Games)
		nodes := []float64{}
		for i := 0; i < setup.Games; i++ {
			seed := setup.Seed + uint64(i)
			record, moves, err := playGame(setup, matchup, seed)
			if err != nil {
				return Report{}, fmt.Errorf("matchup %s game %d: %w", matchup.label(), i+1, err)
			}
			records = append(records, record)
			for _, mm := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: record.ID, MoveMetric: mm})
				if mm.Agent == 0 {
					nodes = append(nodes, float64(mm.Nodes))
				}
			}
			log.Debug().Msgf("completed game %d of %d: %s with score %g", i+1, setup.Games, record.Outcome, record.Score)
		}

		summary := summarize(matchup.label(), records, nodes)
		report.Games = append(report.Games, records...)
		report.Summaries = append(report.Summaries, summary)
		log.Info().
			Str("matchup", summary.Matchup).
			Int("wins", summary.Wins).
			Float64("mean_score", summary.MeanScore).
			Float64("mean_nodes", summary.MeanNodes).
			Msgf("completed matchup %d of %d", mi+1, len(setup.Matchups))
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if setup.OutputDir == "" {
		return report, nil
	}
	dir, err := write(setup, report, moveRecords)
	if err != nil {
		return Report{}, err
	}
	report.Dir = dir
	return report, nil
}

func playGame(setup Setup, matchup Matchup, seed uint64) (metrics.GameRecord, []metrics.MoveMetric, error) {
	state, err := setup.layout()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	players, err := agent.NewPlayers(matchup.Pacman, setup.Ghosts, state.NumAgents(), seed)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e, err := engine.New(state, players,
		engine.WithMaxMoves(setup.MaxMoves),
		engine.WithCollector(metrics.NewCollector()))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	_, gameMetric, moves, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	return metrics.GameRecord{
		ID:         uuid.New(),
		Matchup:    matchup.label(),
		Seed:       seed,
		GameMetric: gameMetric,
	}, moves, nil
}

func summarize(label string, records []metrics.GameRecord, nodes []float64) metrics.Summary {
	s := metrics.Summary{Matchup: label, Games: len(records)}
	scores := make([]float64, 0, len(records))
	moves := make([]float64, 0, len(records))
	for _, r := range records {
		switch r.Outcome {
		case engine.Win.String():
			s.Wins++
		case engine.Lose.String():
			s.Losses++
		default:
			s.Unfinished++
		}
		scores = append(scores, r.Score)
		moves = append(moves, float64(r.TotalMoves))
	}

	s.MeanScore, s.StdDevScore = stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		s.StdDevScore = 0
	}
	s.MeanMoves = stat.Mean(moves, nil)
	if len(nodes) > 0 {
		s.MeanNodes = stat.Mean(nodes, nil)
	}
	return s
}

func write(setup Setup, report Report, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(setup.OutputDir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(setup)
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	err = writer.WriteSummaries(report.Summaries)
	if err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}
