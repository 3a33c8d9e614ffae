package calculator

// BottomCross reports a single-day bottom cross: the day's low touched or
// fell below the long average while the close finished strictly above it.
// A close exactly on the average is not a confirmed cross.
func BottomCross(low, close, ma200 float64) bool {
	return low <= ma200 && close > ma200
}

// GoldenCross reports whether the short average overtook the long average
// between the previous and current points. A short average that stays level
// with the long one after having been below still counts. Both series need
// two trailing valid points; otherwise there is nothing to compare and the
// answer is false.
func GoldenCross(short, long MASeries) bool {
	s, ok := short.TailValid(2)
	if !ok {
		return false
	}
	l, ok := long.TailValid(2)
	if !ok {
		return false
	}
	return s[0] < l[0] && s[1] >= l[1]
}
