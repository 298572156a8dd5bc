package service

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoMoves marks a think-time average that is undefined because no moves
// were recorded.
var ErrNoMoves = errors.New("no moves recorded")

// ThinkTime is the average decision time per move. AvgNanos is the unrounded
// value in nanoseconds and is the sort key; Display is the rounded,
// unit-suffixed string shown on the page. Valid is false when the average is
// undefined (zero moves), in which case Display is "n/a".
type ThinkTime struct {
	AvgNanos float64 `json:"avg_nanos"`
	Display  string  `json:"display"`
	Valid    bool    `json:"valid"`
}

// NewThinkTime computes the displayable average think time from accumulated
// seconds, a nanosecond remainder and a move count.
func NewThinkTime(seconds, nanos, moves int) ThinkTime {
	avg, err := AvgThinkNanos(seconds, nanos, moves)
	if err != nil {
		return ThinkTime{Display: "n/a"}
	}
	return ThinkTime{
		AvgNanos: avg,
		Display:  FormatThinkNanos(avg),
		Valid:    true,
	}
}

// AvgThinkNanos returns the average think time per move in nanoseconds. The
// seconds part and the nanosecond remainder are combined into one 64-bit
// nanosecond total before dividing.
func AvgThinkNanos(seconds, nanos, moves int) (float64, error) {
	if moves == 0 {
		return 0, ErrNoMoves
	}
	total := int64(seconds)*int64(time.Second) + int64(nanos)
	return float64(total) / float64(moves), nil
}

// FormatThinkNanos renders an average in the largest fitting unit, rounded to
// the nearest integer. The thresholds are strict: exactly 1000 ns is still
// nanoseconds, exactly 1000000 ns is still microseconds.
func FormatThinkNanos(avg float64) string {
	switch {
	case avg > 1_000_000:
		return fmt.Sprintf("%d ms", int64(math.Round(avg/1_000_000)))
	case avg > 1_000:
		return fmt.Sprintf("%d µs", int64(math.Round(avg/1_000)))
	default:
		return fmt.Sprintf("%d ns", int64(math.Round(avg)))
	}
}

// comparableThinkNanos collapses an average to the precision shown on the
// page: two teams whose averages display the same must compare equal, so
// leadership never flips on sub-rounding noise.
func comparableThinkNanos(avg float64) float64 {
	switch {
	case avg > 1_000_000:
		return math.Round(avg/1_000_000) * 1_000_000
	case avg > 1_000:
		return math.Round(avg/1_000) * 1_000
	default:
		return math.Round(avg)
	}
}
