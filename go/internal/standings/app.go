package standings

import (
	"context"
	"fmt"
	"sort"

	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
	"github.com/mcdev12/fantasyetl/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Fetcher defines what the app layer needs from the Yahoo client
type Fetcher interface {
	GetUserLeagues(ctx context.Context, gameCode, season string) ([]yahoo_fantasy_client.League, error)
	GetLeagueStandings(ctx context.Context, leagueKey string) ([]yahoo_fantasy_client.StandingsTeam, error)
}

// App handles league selection and standings business logic
type App struct {
	fetcher Fetcher
}

// NewApp creates a new standings App
func NewApp(fetcher Fetcher) *App {
	return &App{
		fetcher: fetcher,
	}
}

// SelectLeague picks the league to export. An explicit leagueKey wins;
// otherwise a league matching the requested season is preferred, falling
// back to the last (most recent) league Yahoo returns. Returns ErrNoLeague
// when the account has none.
func (a *App) SelectLeague(ctx context.Context, gameCode, season, leagueKey string) (*models.League, error) {
	if leagueKey != "" {
		return &models.League{LeagueKey: leagueKey, Season: season}, nil
	}

	leagues, err := a.fetcher.GetUserLeagues(ctx, gameCode, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	if len(leagues) == 0 {
		return nil, ErrNoLeague
	}

	selected := leagues[len(leagues)-1]
	for _, lg := range leagues {
		if season != "" && lg.Season == season {
			selected = lg
			break
		}
	}

	log.Info().
		Str("league_key", selected.LeagueKey).
		Str("name", selected.Name).
		Str("season", selected.Season).
		Int("candidates", len(leagues)).
		Msg("selected league")

	return &models.League{
		LeagueKey: selected.LeagueKey,
		Name:      selected.Name,
		Season:    selected.Season,
	}, nil
}

// FetchStandings retrieves the standings for a league and flattens them into
// export rows, sorted by rank ascending.
func (a *App) FetchStandings(ctx context.Context, leagueKey string) ([]models.StandingsRow, error) {
	teams, err := a.fetcher.GetLeagueStandings(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	rows := make([]models.StandingsRow, len(teams))
	for i, team := range teams {
		rows[i] = teamToRow(team)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rank < rows[j].Rank
	})

	return rows, nil
}
