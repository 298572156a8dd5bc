package service

import (
	"context"

	"github.com/Sardtok/kingsheep-ladder/internal/store"
)

// MatchSide is one team's record for one match together with its displayable
// think-time average.
type MatchSide struct {
	Record    store.MatchRecord `json:"record"`
	ThinkTime ThinkTime         `json:"think_time"`
}

// MatchPairRow is one reconstructed match in a team's history: the requested
// team's side first, the opponent second. Number starts at 1 and follows log
// order.
type MatchPairRow struct {
	Number   int       `json:"number"`
	Team     MatchSide `json:"team"`
	Opponent MatchSide `json:"opponent"`
}

// TeamPage is the drill-down view for one team: its cumulative totals as a
// summary row plus every match it took part in, oldest first. Found is false
// when the team never appears in the log; that is a normal outcome rendered
// as an empty page, not an error.
type TeamPage struct {
	Team    string         `json:"team"`
	Found   bool           `json:"found"`
	Summary StandingRow    `json:"summary"`
	Matches []MatchPairRow `json:"matches"`
}

// TeamPage builds the drill-down view for the requested team.
func (s *LadderService) TeamPage(ctx context.Context, team string) (*TeamPage, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(records)
	summary := store.TeamTotals{Team: team}
	t, found := totals[team]
	if found {
		summary = *t
	}

	pairs, err := s.store.Pairs(ctx)
	if err != nil {
		return nil, err
	}

	return &TeamPage{
		Team:  team,
		Found: found,
		Summary: StandingRow{
			Totals:    summary,
			ThinkTime: NewThinkTime(summary.ThinkSeconds, summary.ThinkNanos, summary.MoveCount),
		},
		Matches: BuildTeamHistory(pairs, team),
	}, nil
}

// BuildTeamHistory walks match pairs in log order and keeps the ones the
// requested team took part in, that team's side first. Pairs without the
// team are dropped and do not advance the match number.
func BuildTeamHistory(pairs [][2]store.MatchRecord, team string) []MatchPairRow {
	rows := make([]MatchPairRow, 0)
	for _, pair := range pairs {
		first, second := pair[0], pair[1]
		if second.Team == team {
			first, second = second, first
		}
		if first.Team != team {
			continue
		}
		rows = append(rows, MatchPairRow{
			Number:   len(rows) + 1,
			Team:     newMatchSide(first),
			Opponent: newMatchSide(second),
		})
	}
	return rows
}

func newMatchSide(rec store.MatchRecord) MatchSide {
	return MatchSide{
		Record:    rec,
		ThinkTime: NewThinkTime(rec.ThinkSeconds, rec.ThinkNanos, rec.MoveCount),
	}
}
