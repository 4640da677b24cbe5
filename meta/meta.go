// meta/meta.go
package meta

// DefaultDepth is the number of full rounds a search agent explores.
const DefaultDepth = 2

// DefaultAgent is the agent used when none is configured.
const DefaultAgent = "alphabeta"

// DefaultLayout is the built-in layout played when none is given.
const DefaultLayout = "small"

// MaxMoves caps the number of agent moves in one game.
const MaxMoves = 2000

// NumGames is the number of games per matchup in an experiment.
const NumGames = 10

// DirectionalProb is how often a directional ghost takes its best move.
const DirectionalProb = 0.8
