package calculator

// IsTrendingUp reports whether the moving average slopes upward over its
// last lookback valid points. The slope comes from an ordinary
// least-squares fit against the index sequence 0..lookback-1 and must be
// strictly positive; a flat window does not count. Fewer than lookback
// valid points is a normal not-enough-data outcome and returns false.
func IsTrendingUp(ma MASeries, lookback int) bool {
	vals, ok := ma.TailValid(lookback)
	if !ok {
		return false
	}

	n := float64(len(vals))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range vals {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return false
	}
	slope := (n*sumXY - sumX*sumY) / denom
	return slope > 0
}
