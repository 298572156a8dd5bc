package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sardtok/kingsheep-ladder/internal/store"
)

// Cache stores serialized derived views with a TTL. A nil Cache disables
// caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// StandingRow is one team's line in the league-wide view: cumulative totals,
// the displayable think-time average and the categories the team leads.
type StandingRow struct {
	Totals    store.TeamTotals `json:"totals"`
	ThinkTime ThinkTime        `json:"think_time"`
	Leads     LeaderFlags      `json:"leads"`
}

// LadderService computes the league views from the statistics log. All state
// is request-scoped: every call re-derives its view from the log file, the
// single source of truth.
type LadderService struct {
	store    *store.LogStore
	cache    Cache
	cacheTTL time.Duration
}

// NewLadderService creates a ladder service over the given log store. cache
// may be nil.
func NewLadderService(logStore *store.LogStore, cache Cache, cacheTTL time.Duration) *LadderService {
	return &LadderService{
		store:    logStore,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// LeagueTable returns one StandingRow per team, teams in lexicographic
// order, leader flags applied. When a cache is configured the computed table
// is stored under the log's last-modified marker; cache failures fall
// through to recomputation.
func (s *LadderService) LeagueTable(ctx context.Context) ([]StandingRow, error) {
	var cacheKey string
	if s.cache != nil {
		if mod, err := s.store.ModTime(); err == nil {
			cacheKey = ladderKey(mod)
			var rows []StandingRow
			if ok, err := s.cache.GetJSON(ctx, cacheKey, &rows); err == nil && ok {
				return rows, nil
			}
		}
	}

	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(records)
	rows := make([]StandingRow, 0, len(totals))
	for _, team := range SortedTeams(totals) {
		t := totals[team]
		rows = append(rows, StandingRow{
			Totals:    *t,
			ThinkTime: NewThinkTime(t.ThinkSeconds, t.ThinkNanos, t.MoveCount),
		})
	}

	leaders := SelectLeaders(rows)
	for i := range rows {
		rows[i].Leads = leaders.FlagsFor(rows[i].Totals.Team)
	}

	if s.cache != nil && cacheKey != "" {
		if err := s.cache.SetJSON(ctx, cacheKey, rows, s.cacheTTL); err != nil {
			log.Printf("Ladder cache write failed: %v", err)
		}
	}

	return rows, nil
}

// ladderKey derives the cache key for the league table from the log's
// last-modified marker.
func ladderKey(mod time.Time) string {
	return fmt.Sprintf("ladder:%d", mod.UnixNano())
}
