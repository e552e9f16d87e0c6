package yahoo_fantasy_client

import (
	"context"
	"encoding/xml"
	"fmt"
)

type League struct {
	LeagueKey string `xml:"league_key"`
	LeagueID  string `xml:"league_id"`
	Name      string `xml:"name"`
	Season    string `xml:"season"`
}

type userLeaguesResponse struct {
	XMLName xml.Name `xml:"fantasy_content"`
	Games   []struct {
		GameKey string   `xml:"game_key"`
		Code    string   `xml:"code"`
		Season  string   `xml:"season"`
		Leagues []League `xml:"leagues>league"`
	} `xml:"users>user>games>game"`
}

// GetUserLeagues lists the leagues visible to the authorized user for the
// given game code, optionally filtered to one season. Leagues come back in
// the order Yahoo returns them: oldest game first.
func (c *YahooFantasyClient) GetUserLeagues(ctx context.Context, gameCode, season string) ([]League, error) {
	seasonFilter := ""
	if season != "" {
		seasonFilter = ";seasons=" + season
	}
	endpoint := fmt.Sprintf(UserLeaguesEndpoint, gameCode, seasonFilter)

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get user leagues: %w", err)
	}

	var response userLeaguesResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leagues response: %w, raw response: %s", err, string(body))
	}

	var leagues []League
	for _, game := range response.Games {
		leagues = append(leagues, game.Leagues...)
	}
	return leagues, nil
}
