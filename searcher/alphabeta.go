package searcher

import "math"

// alphaBeta is minimax with pruning. Cutoffs are strict: a child equal to the
// opposite bound does not end the loop, so its siblings are still explored.
type alphaBeta struct{}

func (alphaBeta) maximize(w window) fold  { return &alphaFold{v: math.Inf(-1), w: w} }
func (alphaBeta) adversary(w window) fold { return &betaFold{v: math.Inf(1), w: w} }

// alphaFold is a max node. It raises alpha for the children that follow.
type alphaFold struct {
	v float64
	w window
}

func (f *alphaFold) window() window { return f.w }
func (f *alphaFold) value() float64 { return f.v }

func (f *alphaFold) add(v float64) bool {
	f.v = max(f.v, v)
	if f.v > f.w.beta {
		return true
	}
	f.w.alpha = max(f.w.alpha, f.v)
	return false
}

// betaFold is an adversary node. It lowers beta for the children that follow.
type betaFold struct {
	v float64
	w window
}

func (f *betaFold) window() window { return f.w }
func (f *betaFold) value() float64 { return f.v }

func (f *betaFold) add(v float64) bool {
	f.v = min(f.v, v)
	if f.v < f.w.alpha {
		return true
	}
	f.w.beta = min(f.w.beta, f.v)
	return false
}
