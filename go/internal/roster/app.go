package roster

import (
	"context"

	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
	"github.com/mcdev12/fantasyetl/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Fetcher defines what the app layer needs from the Yahoo client
type Fetcher interface {
	GetTeamRoster(ctx context.Context, teamKey string) (*yahoo_fantasy_client.TeamRoster, error)
}

// App flattens team rosters into export rows
type App struct {
	fetcher Fetcher
}

// NewApp creates a new roster App
func NewApp(fetcher Fetcher) *App {
	return &App{
		fetcher: fetcher,
	}
}

// FetchTeamPlayers fetches the roster for every team and flattens it into one
// row per roster slot. A team whose roster fetch fails is logged and skipped,
// matching the per-item tolerance of the rest of the pipeline.
func (a *App) FetchTeamPlayers(ctx context.Context, teamKeys []string) ([]models.TeamPlayerRow, error) {
	var rows []models.TeamPlayerRow

	for _, teamKey := range teamKeys {
		teamRoster, err := a.fetcher.GetTeamRoster(ctx, teamKey)
		if err != nil {
			log.Warn().Err(err).Str("team_key", teamKey).Msg("skipping team, roster fetch failed")
			continue
		}

		for _, player := range teamRoster.Players {
			rows = append(rows, models.TeamPlayerRow{
				TeamKey:           teamRoster.TeamKey,
				TeamName:          teamRoster.Name,
				PlayerKey:         player.PlayerKey,
				Player:            player.Name.Full,
				DisplayPosition:   player.DisplayPosition,
				EligiblePositions: player.EligiblePositions,
				SelectedPosition:  player.SelectedPosition,
			})
		}
	}

	return rows, nil
}
