package service

import (
	"sort"

	"github.com/Sardtok/kingsheep-ladder/internal/store"
)

// Aggregate folds match records into cumulative per-team totals. Summation is
// commutative and associative, so the result is independent of log line
// order.
func Aggregate(records []store.MatchRecord) map[string]*store.TeamTotals {
	totals := make(map[string]*store.TeamTotals)
	for _, rec := range records {
		t, ok := totals[rec.Team]
		if !ok {
			t = &store.TeamTotals{Team: rec.Team}
			totals[rec.Team] = t
		}
		t.Add(rec)
	}
	return totals
}

// SortedTeams returns the team identifiers in lexicographic order, the
// listing order for every view and the iteration order that decides
// leadership ties.
func SortedTeams(totals map[string]*store.TeamTotals) []string {
	teams := make([]string, 0, len(totals))
	for team := range totals {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
