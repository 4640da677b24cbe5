package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"multiagent/agent"
	"multiagent/engine"
	"multiagent/experiments"
	"multiagent/game/grid"
	"multiagent/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: multiagent <command> [flags]

commands:
  play        play one game and print the final board
  experiment  run a batch of games and store the records
  serve       answer POST /decide over HTTP

run "multiagent <command> -h" for the flags of a command`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "play":
		err = play(args)
	case "experiment":
		err = experiment(args)
	case "serve":
		err = serve(args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

// agentFlags registers the pacman flags shared by play and serve. A config file, when
// given, replaces the flag values.
func agentFlags(fs *flag.FlagSet) func() (agent.Config, error) {
	name := fs.String("agent", meta.DefaultAgent, "pacman: reflex, minimax, alphabeta or expectimax")
	depth := fs.Int("depth", meta.DefaultDepth, "number of full rounds searched")
	evaluator := fs.String("evaluator", string(agent.ScoreEvaluator), "leaf evaluation")
	config := fs.String("config", "", "YAML agent config file")
	return func() (agent.Config, error) {
		if *config != "" {
			return agent.LoadConfig(*config)
		}
		c := agent.Config{Agent: *name, Evaluator: agent.EvaluatorName(*evaluator), Depth: *depth}
		return c, c.Validate()
	}
}

func play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	pacmanConfig := agentFlags(fs)
	layout := fs.String("layout", meta.DefaultLayout, "built-in layout: "+strings.Join(grid.Names(), ", "))
	ghosts := fs.String("ghosts", string(agent.RandomGhosts), "ghosts: random or directional")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for ghosts and the reflex agent")
	maxMoves := fs.Int("max-moves", meta.MaxMoves, "cap on the number of moves")
	logLevel := fs.String("log-level", "info", "log level")
	fs.Parse(args)

	if err := setupLogging(*logLevel); err != nil {
		return err
	}
	config, err := pacmanConfig()
	if err != nil {
		return err
	}
	state, err := grid.Layout(*layout)
	if err != nil {
		return err
	}

	players, err := agent.NewPlayers(config, agent.GhostKind(*ghosts), state.NumAgents(), *seed)
	if err != nil {
		return err
	}

	e, err := engine.New(state, players, engine.WithMaxMoves(*maxMoves))
	if err != nil {
		return err
	}
	result, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(result.Final)
	fmt.Printf("%s after %d moves in %s, score %g\n", result.Outcome, result.Moves, gameMetric.Duration, result.Score)
	return nil
}

func experiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	config := fs.String("config", "", "YAML or JSON experiment setup file")
	preset := fs.String("preset", "", "built-in setup: "+strings.Join(experiments.PresetNames(), ", "))
	out := fs.String("out", "results", "directory receiving the records, overrides the setup")
	logLevel := fs.String("log-level", "info", "log level")
	fs.Parse(args)

	if err := setupLogging(*logLevel); err != nil {
		return err
	}

	var setup experiments.Setup
	var err error
	switch {
	case *config != "":
		setup, err = experiments.LoadSetup(*config)
	case *preset != "":
		setup, err = experiments.Preset(*preset)
	default:
		return fmt.Errorf("experiment needs -config or -preset")
	}
	if err != nil {
		return err
	}
	if *out != "" {
		setup.OutputDir = *out
	}

	report, err := experiments.Run(setup)
	if err != nil {
		return err
	}
	for _, s := range report.Summaries {
		fmt.Printf("%-16s wins %d/%d  score %.1f ± %.1f  nodes/move %.0f\n",
			s.Matchup, s.Wins, s.Games, s.MeanScore, s.StdDevScore, s.MeanNodes)
	}
	fmt.Println("records in", report.Dir)
	return nil
}

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	pacmanConfig := agentFlags(fs)
	addr := fs.String("addr", ":8080", "listen address")
	logLevel := fs.String("log-level", "info", "log level")
	fs.Parse(args)

	if err := setupLogging(*logLevel); err != nil {
		return err
	}
	config, err := pacmanConfig()
	if err != nil {
		return err
	}
	return agent.Serve(*addr, config)
}
