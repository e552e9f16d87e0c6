package yahoo_fantasy_client

import (
	"context"
	"encoding/xml"
	"fmt"
)

type PlayerName struct {
	Full  string `xml:"full"`
	First string `xml:"first"`
	Last  string `xml:"last"`
}

type RosterPlayer struct {
	PlayerKey         string     `xml:"player_key"`
	Name              PlayerName `xml:"name"`
	DisplayPosition   string     `xml:"display_position"`
	EligiblePositions []string   `xml:"eligible_positions>position"`
	SelectedPosition  string     `xml:"selected_position>position"`
}

type TeamRoster struct {
	TeamKey string
	Name    string
	Players []RosterPlayer
}

type rosterResponse struct {
	XMLName xml.Name `xml:"fantasy_content"`
	Team    struct {
		TeamKey string         `xml:"team_key"`
		Name    string         `xml:"name"`
		Players []RosterPlayer `xml:"roster>players>player"`
	} `xml:"team"`
}

// GetTeamRoster fetches the current roster for a fantasy team.
func (c *YahooFantasyClient) GetTeamRoster(ctx context.Context, teamKey string) (*TeamRoster, error) {
	endpoint := fmt.Sprintf(TeamRosterEndpoint, teamKey)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for team %s: %w", teamKey, err)
	}

	var response rosterResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster response: %w, raw response: %s", err, string(body))
	}

	return &TeamRoster{
		TeamKey: response.Team.TeamKey,
		Name:    response.Team.Name,
		Players: response.Team.Players,
	}, nil
}
