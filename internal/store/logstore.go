package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// ErrLogUnavailable marks a missing or unreadable statistics log. It aborts
// the whole request; there is no partial report without a log.
var ErrLogUnavailable = errors.New("statistics log unavailable")

// LogStore reads the append-only match statistics log: one record per line,
// the two sides of a match written as two consecutive lines.
type LogStore struct {
	path string
}

// NewLogStore creates a log store for the given file path.
func NewLogStore(path string) *LogStore {
	return &LogStore{path: path}
}

// Path returns the log file path.
func (s *LogStore) Path() string {
	return s.path
}

// ModTime returns the log file's last-modified time, used as the cache key
// for derived views.
func (s *LogStore) ModTime() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrLogUnavailable, err)
	}
	return info.ModTime(), nil
}

// Records reads the whole log and returns every well-formed record in log
// order. Malformed lines are skipped, never fatal: one corrupt line must not
// take down the entire report.
func (s *LogStore) Records(ctx context.Context) ([]MatchRecord, error) {
	lines, err := s.readLines(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]MatchRecord, 0, len(lines))
	for i, line := range lines {
		rec, err := ParseRecord(line)
		if err != nil {
			log.Printf("Skipping log line %d: %v", i+1, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Pairs reads the log two lines at a time, each consecutive pair being the
// two sides of one match. A pair with a malformed side is skipped whole, and
// a dangling final line is ignored. This relies on the writer always
// appending both sides of a match contiguously.
func (s *LogStore) Pairs(ctx context.Context) ([][2]MatchRecord, error) {
	lines, err := s.readLines(ctx)
	if err != nil {
		return nil, err
	}

	pairs := make([][2]MatchRecord, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		first, err := ParseRecord(lines[i])
		if err != nil {
			log.Printf("Skipping match at log line %d: %v", i+1, err)
			continue
		}
		second, err := ParseRecord(lines[i+1])
		if err != nil {
			log.Printf("Skipping match at log line %d: %v", i+2, err)
			continue
		}
		pairs = append(pairs, [2]MatchRecord{first, second})
	}
	return pairs, nil
}

// readLines returns the log's non-empty lines in file order.
func (s *LogStore) readLines(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogUnavailable, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogUnavailable, err)
	}
	return lines, nil
}
