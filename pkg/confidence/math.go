// Package confidence provides confidence score math for the intake analyzer.
package confidence

// Scoring bounds for keyword/pattern matching.
const (
	// MatchFloor is the minimum score an intent must reach to be kept.
	MatchFloor = 0.3
	// MatchCap is the absolute ceiling after bonuses.
	MatchCap = 0.9
	// CoverageCap limits the raw coverage contribution.
	CoverageCap = 0.8
)

// Coverage scores how much of the input the matched patterns cover.
// Twice the matched share, capped at CoverageCap.
func Coverage(matchedLen, inputLen int) float64 {
	if inputLen <= 0 || matchedLen <= 0 {
		return 0
	}
	score := 2 * float64(matchedLen) / float64(inputLen)
	if score > CoverageCap {
		return CoverageCap
	}
	return score
}

// Bonus rewards multi-segment matches with a flat +0.1, capped at MatchCap.
func Bonus(score float64) float64 {
	score += 0.1
	if score > MatchCap {
		return MatchCap
	}
	return score
}

// AboveFloor reports whether a score clears the discard threshold.
func AboveFloor(score float64) bool {
	return score >= MatchFloor
}

// Clamp ensures a score stays in [0, 1].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
