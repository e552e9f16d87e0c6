package models

// League identifies one fantasy league visible to the authorized user.
type League struct {
	LeagueKey string `json:"league_key"`
	Name      string `json:"name"`
	Season    string `json:"season"`
}

// StandingsRow represents one team's line in the league standings.
// Rows are immutable once built and are written to every sink as-is.
type StandingsRow struct {
	Rank          int     `json:"rank"`
	TeamKey       string  `json:"team_key"`
	Team          string  `json:"team"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPct        float64 `json:"win_pct"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Streak        string  `json:"streak,omitempty"`
	PlayoffSeed   *int    `json:"playoff_seed,omitempty"`
}
