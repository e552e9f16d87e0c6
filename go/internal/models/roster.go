package models

// TeamPlayerRow is one flattened roster slot: which player sits on which
// fantasy team, and where.
type TeamPlayerRow struct {
	TeamKey           string   `json:"team_key"`
	TeamName          string   `json:"team_name"`
	PlayerKey         string   `json:"player_key"`
	Player            string   `json:"player"`
	DisplayPosition   string   `json:"display_position"`
	EligiblePositions []string `json:"eligible_positions,omitempty"`
	SelectedPosition  string   `json:"selected_position,omitempty"`
}
