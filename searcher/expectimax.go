package searcher

// expectimax models every ghost as choosing uniformly at random among its legal actions.
type expectimax struct{}

func (expectimax) maximize(w window) fold  { return newMaxFold(w) }
func (expectimax) adversary(w window) fold { return &chanceFold{w: w} }

// chanceFold averages its children with equal weights.
type chanceFold struct {
	sum float64
	n   int
	w   window
}

func (f *chanceFold) window() window { return f.w }

func (f *chanceFold) add(v float64) bool {
	f.sum += v
	f.n++
	return false
}

func (f *chanceFold) value() float64 {
	if f.n == 0 {
		panic("chance node has no children")
	}
	return f.sum / float64(f.n)
}
