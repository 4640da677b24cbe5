package searcher

import "time"

type SearchMetric struct {
	Kind       Kind
	Depth      int
	StartTime  time.Time
	Duration   time.Duration
	Nodes      int // Calls to the value function, root included
	Leaves     int // Evaluator calls
	Successors int // States generated
	Cutoffs    int // Sibling loops ended early by pruning
	MaxPly     int // Deepest node, counted in single moves from the root
}

type Collector interface {
	Start(kind Kind, depth int)
	AddNode(ply int)
	AddLeaf()
	AddSuccessor()
	AddCutoff()
	Complete() SearchMetric
}

// collector counts one search. A search is single-threaded, so plain ints suffice.
type collector struct {
	metric SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(kind Kind, depth int) {
	c.metric = SearchMetric{Kind: kind, Depth: depth, StartTime: time.Now()}
}

func (c *collector) AddNode(ply int) {
	c.metric.Nodes++
	if ply > c.metric.MaxPly {
		c.metric.MaxPly = ply
	}
}

func (c *collector) AddLeaf()      { c.metric.Leaves++ }
func (c *collector) AddSuccessor() { c.metric.Successors++ }
func (c *collector) AddCutoff()    { c.metric.Cutoffs++ }

func (c *collector) Complete() SearchMetric {
	c.metric.Duration = time.Since(c.metric.StartTime)
	return c.metric
}

type noCollector struct{}

func NewNoCollector() Collector {
	return noCollector{}
}

func (noCollector) Start(kind Kind, depth int) {}
func (noCollector) AddNode(ply int)            {}
func (noCollector) AddLeaf()                   {}
func (noCollector) AddSuccessor()              {}
func (noCollector) AddCutoff()                 {}
func (noCollector) Complete() SearchMetric     { return SearchMetric{} }
