package player

import (
	"context"
	"fmt"

	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
	"github.com/mcdev12/fantasyetl/go/internal/models"
)

// Fetcher defines what the app layer needs from the Yahoo client
type Fetcher interface {
	GetLeaguePlayers(ctx context.Context, leagueKey string, playerKeys []string) ([]yahoo_fantasy_client.Player, error)
}

// App fetches player metadata for rostered players
type App struct {
	fetcher Fetcher
}

// NewApp creates a new player App
func NewApp(fetcher Fetcher) *App {
	return &App{
		fetcher: fetcher,
	}
}

// FetchPlayers resolves metadata for the given player keys. Duplicate keys
// (players rostered via multiple lookups) are collapsed before fetching.
func (a *App) FetchPlayers(ctx context.Context, leagueKey string, playerKeys []string) ([]models.PlayerDetail, error) {
	unique := dedupe(playerKeys)
	if len(unique) == 0 {
		return nil, nil
	}

	players, err := a.fetcher.GetLeaguePlayers(ctx, leagueKey, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player details: %w", err)
	}

	details := make([]models.PlayerDetail, len(players))
	for i, p := range players {
		details[i] = models.PlayerDetail{
			PlayerKey:     p.PlayerKey,
			FullName:      p.Name.Full,
			FirstName:     p.Name.First,
			LastName:      p.Name.Last,
			NFLTeam:       p.EditorialTeamAbbr,
			UniformNumber: p.UniformNumber,
			Position:      p.DisplayPosition,
			ByeWeek:       p.ByeWeeks.Week,
			Status:        p.Status,
		}
	}

	return details, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
