package yahoo_fantasy_client

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
)

// Yahoo caps collection filters at 25 keys per request.
const PlayerKeysPerRequest = 25

type Player struct {
	PlayerKey         string     `xml:"player_key"`
	Name              PlayerName `xml:"name"`
	EditorialTeamAbbr string     `xml:"editorial_team_abbr"`
	UniformNumber     string     `xml:"uniform_number"`
	DisplayPosition   string     `xml:"display_position"`
	Status            string     `xml:"status"`
	ByeWeeks          struct {
		Week string `xml:"week"`
	} `xml:"bye_weeks"`
}

type playersResponse struct {
	XMLName xml.Name `xml:"fantasy_content"`
	Players []Player `xml:"league>players>player"`
}

// GetLeaguePlayers fetches player metadata for the given player keys,
// batching requests to stay under Yahoo's per-request key limit.
func (c *YahooFantasyClient) GetLeaguePlayers(ctx context.Context, leagueKey string, playerKeys []string) ([]Player, error) {
	var players []Player

	for start := 0; start < len(playerKeys); start += PlayerKeysPerRequest {
		end := start + PlayerKeysPerRequest
		if end > len(playerKeys) {
			end = len(playerKeys)
		}

		endpoint := fmt.Sprintf(LeaguePlayersEndpoint, leagueKey, strings.Join(playerKeys[start:end], ","))
		body, err := c.Get(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to get players for league %s: %w", leagueKey, err)
		}

		var response playersResponse
		if err := xml.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players response: %w, raw response: %s", err, string(body))
		}

		players = append(players, response.Players...)
	}

	return players, nil
}
