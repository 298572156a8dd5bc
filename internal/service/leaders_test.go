package service_test

import (
	"reflect"
	"testing"

	"github.com/Sardtok/kingsheep-ladder/internal/service"
	"github.com/Sardtok/kingsheep-ladder/internal/store"
)

func standing(team string, mutate func(*store.TeamTotals)) service.StandingRow {
	totals := store.TeamTotals{
		Team:         team,
		ThinkSeconds: 1,
		MoveCount:    100,
	}
	if mutate != nil {
		mutate(&totals)
	}
	return service.StandingRow{
		Totals:    totals,
		ThinkTime: service.NewThinkTime(totals.ThinkSeconds, totals.ThinkNanos, totals.MoveCount),
	}
}

func TestSelectLeaders_Directions(t *testing.T) {
	rows := []service.StandingRow{
		standing("alpha", func(tt *store.TeamTotals) {
			tt.Wins = 5
			tt.Losses = 3
			tt.Draws = 2
			tt.GrassEaten = 50
			tt.RhubarbEaten = 10
			tt.GrassCrushed = 9
			tt.RhubarbCrushed = 1
			tt.SheepEaten = 2
		}),
		standing("bravo", func(tt *store.TeamTotals) {
			tt.Wins = 2
			tt.Losses = 1
			tt.Draws = 4
			tt.GrassEaten = 20
			tt.RhubarbEaten = 40
			tt.GrassCrushed = 3
			tt.RhubarbCrushed = 6
			tt.SheepEaten = 7
			tt.MoveCount = 200 // faster average than alpha
		}),
	}

	leaders := service.SelectLeaders(rows)
	want := service.LeaderSet{
		Wins:           "alpha",
		Losses:         "bravo",
		Draws:          "alpha",
		GrassEaten:     "alpha",
		RhubarbEaten:   "bravo",
		GrassCrushed:   "bravo",
		RhubarbCrushed: "alpha",
		SheepEaten:     "bravo",
		ThinkTime:      "bravo",
	}
	if leaders != want {
		t.Errorf("leader set mismatch:\n got %+v\nwant %+v", leaders, want)
	}
}

func TestSelectLeaders_TieKeepsFirstTeam(t *testing.T) {
	// Identical totals throughout: the team listed first keeps every lead.
	rows := []service.StandingRow{
		standing("alpha", func(tt *store.TeamTotals) { tt.Wins = 3; tt.SheepEaten = 1 }),
		standing("bravo", func(tt *store.TeamTotals) { tt.Wins = 3; tt.SheepEaten = 1 }),
	}

	leaders := service.SelectLeaders(rows)
	if leaders.Wins != "alpha" || leaders.SheepEaten != "alpha" || leaders.ThinkTime != "alpha" {
		t.Errorf("ties must go to the first team in iteration order, got %+v", leaders)
	}
}

func TestSelectLeaders_Deterministic(t *testing.T) {
	rows := []service.StandingRow{
		standing("alpha", func(tt *store.TeamTotals) { tt.Wins = 3 }),
		standing("bravo", func(tt *store.TeamTotals) { tt.Wins = 3 }),
		standing("charlie", func(tt *store.TeamTotals) { tt.Wins = 1 }),
	}

	first := service.SelectLeaders(rows)
	for i := 0; i < 10; i++ {
		if again := service.SelectLeaders(rows); !reflect.DeepEqual(again, first) {
			t.Fatalf("leader selection is not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestSelectLeaders_ThinkTimeComparesRounded(t *testing.T) {
	// Both averages display as "88 ms"; bravo's raw average is lower, but
	// sub-rounding noise must not flip leadership away from the earlier team.
	rows := []service.StandingRow{
		{
			Totals:    store.TeamTotals{Team: "alpha"},
			ThinkTime: service.ThinkTime{AvgNanos: 87600000, Display: "88 ms", Valid: true},
		},
		{
			Totals:    store.TeamTotals{Team: "bravo"},
			ThinkTime: service.ThinkTime{AvgNanos: 87551000, Display: "88 ms", Valid: true},
		},
	}

	leaders := service.SelectLeaders(rows)
	if leaders.ThinkTime != "alpha" {
		t.Errorf("expected alpha to keep the think-time lead on a rounded tie, got %q", leaders.ThinkTime)
	}
}

func TestSelectLeaders_UndefinedThinkTimeNeverLeads(t *testing.T) {
	rows := []service.StandingRow{
		standing("alpha", func(tt *store.TeamTotals) { tt.MoveCount = 0 }),
		standing("bravo", nil),
	}

	leaders := service.SelectLeaders(rows)
	if leaders.ThinkTime != "bravo" {
		t.Errorf("team without a defined average must not lead think time, got %q", leaders.ThinkTime)
	}

	none := service.SelectLeaders(rows[:1])
	if none.ThinkTime != "" {
		t.Errorf("expected no think-time leader, got %q", none.ThinkTime)
	}
}

func TestFlagsFor(t *testing.T) {
	leaders := service.LeaderSet{Wins: "alpha", Losses: "bravo", ThinkTime: "alpha"}

	alpha := leaders.FlagsFor("alpha")
	if !alpha.Wins || !alpha.ThinkTime || alpha.Losses {
		t.Errorf("unexpected flags for alpha: %+v", alpha)
	}

	charlie := leaders.FlagsFor("charlie")
	if charlie != (service.LeaderFlags{}) {
		t.Errorf("expected no flags for charlie, got %+v", charlie)
	}
}
