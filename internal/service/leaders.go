package service

// LeaderSet records, per category, the team leading the league. An empty
// string means no team leads the category (for example when no team has a
// defined think-time average).
type LeaderSet struct {
	Wins           string `json:"wins"`
	Losses         string `json:"losses"`
	Draws          string `json:"draws"`
	GrassEaten     string `json:"grass_eaten"`
	RhubarbEaten   string `json:"rhubarb_eaten"`
	GrassCrushed   string `json:"grass_crushed"`
	RhubarbCrushed string `json:"rhubarb_crushed"`
	SheepEaten     string `json:"sheep_eaten"`
	ThinkTime      string `json:"think_time"`
}

// LeaderFlags marks the categories a single team leads. A team may lead
// zero, one or several categories at once.
type LeaderFlags struct {
	Wins           bool `json:"wins"`
	Losses         bool `json:"losses"`
	Draws          bool `json:"draws"`
	GrassEaten     bool `json:"grass_eaten"`
	RhubarbEaten   bool `json:"rhubarb_eaten"`
	GrassCrushed   bool `json:"grass_crushed"`
	RhubarbCrushed bool `json:"rhubarb_crushed"`
	SheepEaten     bool `json:"sheep_eaten"`
	ThinkTime      bool `json:"think_time"`
}

// intLeader tracks the current best value and its team for one integer
// category.
type intLeader struct {
	team  string
	value int
	set   bool
}

// challenge replaces the leader only on a strict improvement, so the first
// team to reach the extreme value in iteration order keeps ties.
func (l *intLeader) challenge(team string, value int, wantMax bool) {
	if !l.set || (wantMax && value > l.value) || (!wantMax && value < l.value) {
		l.team, l.value, l.set = team, value, true
	}
}

// timeLeader tracks the fastest display-rounded think-time average.
type timeLeader struct {
	team  string
	value float64
	set   bool
}

func (l *timeLeader) challenge(team string, value float64) {
	if !l.set || value < l.value {
		l.team, l.value, l.set = team, value, true
	}
}

// SelectLeaders scans standings in listing order and picks the leading team
// per category. Think time compares on the display-rounded value, and teams
// without a defined average never lead it.
func SelectLeaders(rows []StandingRow) LeaderSet {
	var (
		wins, losses, draws          intLeader
		grassEaten, rhubarbEaten     intLeader
		grassCrushed, rhubarbCrushed intLeader
		sheepEaten                   intLeader
		think                        timeLeader
	)

	for _, row := range rows {
		t := row.Totals
		wins.challenge(t.Team, t.Wins, true)
		losses.challenge(t.Team, t.Losses, false)
		draws.challenge(t.Team, t.Draws, false)
		grassEaten.challenge(t.Team, t.GrassEaten, true)
		rhubarbEaten.challenge(t.Team, t.RhubarbEaten, true)
		grassCrushed.challenge(t.Team, t.GrassCrushed, false)
		rhubarbCrushed.challenge(t.Team, t.RhubarbCrushed, false)
		sheepEaten.challenge(t.Team, t.SheepEaten, true)
		if row.ThinkTime.Valid {
			think.challenge(t.Team, comparableThinkNanos(row.ThinkTime.AvgNanos))
		}
	}

	return LeaderSet{
		Wins:           wins.team,
		Losses:         losses.team,
		Draws:          draws.team,
		GrassEaten:     grassEaten.team,
		RhubarbEaten:   rhubarbEaten.team,
		GrassCrushed:   grassCrushed.team,
		RhubarbCrushed: rhubarbCrushed.team,
		SheepEaten:     sheepEaten.team,
		ThinkTime:      think.team,
	}
}

// FlagsFor returns the per-category lead flags for one team.
func (ls LeaderSet) FlagsFor(team string) LeaderFlags {
	if team == "" {
		return LeaderFlags{}
	}
	return LeaderFlags{
		Wins:           ls.Wins == team,
		Losses:         ls.Losses == team,
		Draws:          ls.Draws == team,
		GrassEaten:     ls.GrassEaten == team,
		RhubarbEaten:   ls.RhubarbEaten == team,
		GrassCrushed:   ls.GrassCrushed == team,
		RhubarbCrushed: ls.RhubarbCrushed == team,
		SheepEaten:     ls.SheepEaten == team,
		ThinkTime:      ls.ThinkTime == team,
	}
}
