package yahoo_fantasy_client

import (
	"context"
	"encoding/xml"
	"fmt"
)

type OutcomeTotals struct {
	Wins       int    `xml:"wins"`
	Losses     int    `xml:"losses"`
	Ties       int    `xml:"ties"`
	Percentage string `xml:"percentage"`
}

type Streak struct {
	Type  string `xml:"type"`
	Value int    `xml:"value"`
}

type TeamStandings struct {
	Rank          int           `xml:"rank"`
	PlayoffSeed   string        `xml:"playoff_seed"`
	OutcomeTotals OutcomeTotals `xml:"outcome_totals"`
	Streak        Streak        `xml:"streak"`
	PointsFor     float64       `xml:"points_for"`
	PointsAgainst float64       `xml:"points_against"`
}

type StandingsTeam struct {
	TeamKey   string        `xml:"team_key"`
	TeamID    string        `xml:"team_id"`
	Name      string        `xml:"name"`
	Standings TeamStandings `xml:"team_standings"`
}

type standingsResponse struct {
	XMLName xml.Name `xml:"fantasy_content"`
	League  struct {
		LeagueKey string          `xml:"league_key"`
		Name      string          `xml:"name"`
		Teams     []StandingsTeam `xml:"standings>teams>team"`
	} `xml:"league"`
}

// GetLeagueStandings fetches the standings teams for a league, in the order
// Yahoo ranks them.
func (c *YahooFantasyClient) GetLeagueStandings(ctx context.Context, leagueKey string) ([]StandingsTeam, error) {
	endpoint := fmt.Sprintf(LeagueStandingsEndpoint, leagueKey)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings for league %s: %w", leagueKey, err)
	}

	var response standingsResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standings response: %w, raw response: %s", err, string(body))
	}

	return response.League.Teams, nil
}
