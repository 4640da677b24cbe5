package metrics

import (
	"time"

	"multiagent/game"
	"multiagent/searcher"
)

type MoveMetric struct {
	Step   int
	Agent  int // Agent index, 0 is pacman
	Action game.Action
	searcher.SearchMetric
}

type GameMetric struct {
	Outcome    string
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector records one game.
type Collector interface {
	Start()
	AddMove(agent int, action game.Action, metric searcher.SearchMetric)
	Complete(outcome string, score float64) (GameMetric, []MoveMetric)
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(agent int, action game.Action, metric searcher.SearchMetric) {
	c.moves = append(c.moves, MoveMetric{
		Step:         len(c.moves) + 1,
		Agent:        agent,
		Action:       action,
		SearchMetric: metric,
	})
}

func (c *collector) Complete(outcome string, score float64) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		Outcome:    outcome,
		Score:      score,
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
		TotalMoves: len(c.moves),
	}, c.moves
}

// countingCollector keeps the totals but drops per-move records.
type countingCollector struct {
	startTime time.Time
	moves     int
}

func NewCountingCollector() Collector {
	return &countingCollector{}
}

func (c *countingCollector) Start() {
	c.startTime = time.Now()
	c.moves = 0
}

func (c *countingCollector) AddMove(agent int, action game.Action, metric searcher.SearchMetric) {
	c.moves++
}

func (c *countingCollector) Complete(outcome string, score float64) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		Outcome:    outcome,
		Score:      score,
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
		TotalMoves: c.moves,
	}, nil
}
