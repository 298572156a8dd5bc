package store

// MatchRecord is one team's reported result for a single match, parsed from
// one line of the statistics log. Field order matches the log format.
type MatchRecord struct {
	Team             string `json:"team"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	Draws            int    `json:"draws"`
	GrassEaten       int    `json:"grass_eaten"`
	RhubarbEaten     int    `json:"rhubarb_eaten"`
	SheepEaten       int    `json:"sheep_eaten"`
	GrassCrushed     int    `json:"grass_crushed"`
	RhubarbCrushed   int    `json:"rhubarb_crushed"`
	GrassAvailable   int    `json:"grass_available"`
	RhubarbAvailable int    `json:"rhubarb_available"`
	ThinkSeconds     int    `json:"think_seconds"`
	ThinkNanos       int    `json:"think_nanos"`
	MoveCount        int    `json:"move_count"`
}

// TeamTotals is the cumulative sum of every numeric MatchRecord field across
// all of a team's matches.
type TeamTotals struct {
	Team             string `json:"team"`
	Matches          int    `json:"matches"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	Draws            int    `json:"draws"`
	GrassEaten       int    `json:"grass_eaten"`
	RhubarbEaten     int    `json:"rhubarb_eaten"`
	SheepEaten       int    `json:"sheep_eaten"`
	GrassCrushed     int    `json:"grass_crushed"`
	RhubarbCrushed   int    `json:"rhubarb_crushed"`
	GrassAvailable   int    `json:"grass_available"`
	RhubarbAvailable int    `json:"rhubarb_available"`
	ThinkSeconds     int    `json:"think_seconds"`
	ThinkNanos       int    `json:"think_nanos"`
	MoveCount        int    `json:"move_count"`
}

// Add folds one match record into the running totals.
func (t *TeamTotals) Add(rec MatchRecord) {
	t.Matches++
	t.Wins += rec.Wins
	t.Losses += rec.Losses
	t.Draws += rec.Draws
	t.GrassEaten += rec.GrassEaten
	t.RhubarbEaten += rec.RhubarbEaten
	t.SheepEaten += rec.SheepEaten
	t.GrassCrushed += rec.GrassCrushed
	t.RhubarbCrushed += rec.RhubarbCrushed
	t.GrassAvailable += rec.GrassAvailable
	t.RhubarbAvailable += rec.RhubarbAvailable
	t.ThinkSeconds += rec.ThinkSeconds
	t.ThinkNanos += rec.ThinkNanos
	t.MoveCount += rec.MoveCount
}
