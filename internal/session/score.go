package session

import "time"

// Scoring constants.
const (
	BaseScore      = 1000
	PenaltyPerSec  = 2
	PenaltyPerMove = 5
)

// Score computes the final score of a won run. Elapsed time is truncated to
// whole seconds before the penalty applies; the result never goes negative.
func Score(elapsed time.Duration, moves int, d Difficulty) int {
	if elapsed < 0 {
		elapsed = 0
	}
	timePenalty := int(elapsed/time.Second) * PenaltyPerSec
	movePenalty := moves * PenaltyPerMove

	score := BaseScore - timePenalty - movePenalty + d.Bonus
	if score < 0 {
		return 0
	}
	return score
}
