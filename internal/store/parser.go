package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the exact number of semicolon-separated fields per log line.
const fieldCount = 14

// ErrMalformedRecord marks a log line that cannot be parsed into a
// MatchRecord. Callers skip the line and keep going.
var ErrMalformedRecord = errors.New("malformed record")

// ParseRecord parses one raw log line into a MatchRecord. The line must hold
// exactly 14 semicolon-separated fields: the team identifier followed by 13
// non-negative integers.
func ParseRecord(line string) (MatchRecord, error) {
	fields := strings.Split(line, ";")
	if len(fields) != fieldCount {
		return MatchRecord{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fieldCount, len(fields))
	}

	nums := make([]int, fieldCount-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return MatchRecord{}, fmt.Errorf("%w: field %d (%q) is not a non-negative integer", ErrMalformedRecord, i+1, f)
		}
		nums[i] = n
	}

	return MatchRecord{
		Team:             fields[0],
		Wins:             nums[0],
		Losses:           nums[1],
		Draws:            nums[2],
		GrassEaten:       nums[3],
		RhubarbEaten:     nums[4],
		SheepEaten:       nums[5],
		GrassCrushed:     nums[6],
		RhubarbCrushed:   nums[7],
		GrassAvailable:   nums[8],
		RhubarbAvailable: nums[9],
		ThinkSeconds:     nums[10],
		ThinkNanos:       nums[11],
		MoveCount:        nums[12],
	}, nil
}
