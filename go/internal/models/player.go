package models

// PlayerDetail holds the metadata Yahoo exposes for a single player.
type PlayerDetail struct {
	PlayerKey     string `json:"player_key"`
	FullName      string `json:"full_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	NFLTeam       string `json:"nfl_team,omitempty"`
	UniformNumber string `json:"uniform_number,omitempty"`
	Position      string `json:"position,omitempty"`
	ByeWeek       string `json:"bye_week,omitempty"`
	Status        string `json:"status,omitempty"`
}
