package searcher

// minimax models every ghost as a perfect minimizer.
type minimax struct{}

func (minimax) maximize(w window) fold  { return newMaxFold(w) }
func (minimax) adversary(w window) fold { return newMinFold(w) }
