package etl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasyetl/go/internal/models"
	"github.com/mcdev12/fantasyetl/go/internal/notify"
	"github.com/mcdev12/fantasyetl/go/internal/standings"
	"github.com/rs/zerolog/log"
)

// Stages selects which parts of the run to execute. The zero value runs
// nothing; cmd defaults to all stages when no flag is passed.
type Stages struct {
	Standings bool
	Teams     bool
	Players   bool
}

// Config carries the run parameters resolved from the config file and flags.
type Config struct {
	GameCode  string
	Season    string
	LeagueKey string // explicit override; skips auto-detection
	Stages    Stages
}

// StandingsApp defines what the pipeline needs from the standings layer
type StandingsApp interface {
	SelectLeague(ctx context.Context, gameCode, season, leagueKey string) (*models.League, error)
	FetchStandings(ctx context.Context, leagueKey string) ([]models.StandingsRow, error)
}

// RosterApp defines what the pipeline needs from the roster layer
type RosterApp interface {
	FetchTeamPlayers(ctx context.Context, teamKeys []string) ([]models.TeamPlayerRow, error)
}

// PlayerApp defines what the pipeline needs from the player layer
type PlayerApp interface {
	FetchPlayers(ctx context.Context, leagueKey string, playerKeys []string) ([]models.PlayerDetail, error)
}

// Exporter defines what the pipeline needs from the export layer
type Exporter interface {
	WriteStandings(rows []models.StandingsRow) ([]string, error)
	WriteTeamPlayers(rows []models.TeamPlayerRow) ([]string, error)
	WritePlayers(details []models.PlayerDetail) ([]string, error)
}

// Sink is the optional database destination for standings rows.
type Sink interface {
	UpsertStandings(ctx context.Context, leagueKey string, rows []models.StandingsRow) error
}

// Publisher is the optional run-completed event destination.
type Publisher interface {
	PublishRunCompleted(event notify.RunCompletedEvent) error
}

// Pipeline executes the export stages in order: standings, teams, players.
type Pipeline struct {
	config    Config
	standings StandingsApp
	roster    RosterApp
	players   PlayerApp
	exporter  Exporter
	sink      Sink
	publisher Publisher
}

// NewPipeline creates a pipeline with the required stages wired. The database
// sink and event publisher are optional; see SetSink and SetPublisher.
func NewPipeline(config Config, standingsApp StandingsApp, rosterApp RosterApp, playerApp PlayerApp, exporter Exporter) *Pipeline {
	return &Pipeline{
		config:    config,
		standings: standingsApp,
		roster:    rosterApp,
		players:   playerApp,
		exporter:  exporter,
	}
}

func (p *Pipeline) SetSink(sink Sink) {
	p.sink = sink
}

func (p *Pipeline) SetPublisher(publisher Publisher) {
	p.publisher = publisher
}

// Run executes the selected stages once. A missing league is not a failure:
// it logs and returns nil with no files written.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	league, err := p.standings.SelectLeague(ctx, p.config.GameCode, p.config.Season, p.config.LeagueKey)
	if err != nil {
		if errors.Is(err, standings.ErrNoLeague) {
			logger.Warn().
				Str("game_code", p.config.GameCode).
				Str("season", p.config.Season).
				Msg("no leagues found for this account/season")
			return nil
		}
		return fmt.Errorf("%w: select league: %w", ErrFetch, err)
	}

	rows, err := p.standings.FetchStandings(ctx, league.LeagueKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	logger.Info().Str("league_key", league.LeagueKey).Int("teams", len(rows)).Msg("fetched standings")

	var files []string

	if p.config.Stages.Standings {
		written, err := p.exporter.WriteStandings(rows)
		if err != nil {
			return fmt.Errorf("export standings: %w", err)
		}
		files = append(files, written...)

		if p.sink != nil {
			if err := p.sink.UpsertStandings(ctx, league.LeagueKey, rows); err != nil {
				return fmt.Errorf("persist standings: %w", err)
			}
			logger.Info().Int("rows", len(rows)).Msg("upserted standings into database")
		}
	}

	var teamPlayers []models.TeamPlayerRow
	if p.config.Stages.Teams {
		teamKeys := make([]string, len(rows))
		for i, row := range rows {
			teamKeys[i] = row.TeamKey
		}

		teamPlayers, err = p.roster.FetchTeamPlayers(ctx, teamKeys)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetch, err)
		}

		written, err := p.exporter.WriteTeamPlayers(teamPlayers)
		if err != nil {
			return fmt.Errorf("export team players: %w", err)
		}
		files = append(files, written...)
	}

	if p.config.Stages.Players {
		playerKeys := make([]string, len(teamPlayers))
		for i, row := range teamPlayers {
			playerKeys[i] = row.PlayerKey
		}

		details, err := p.players.FetchPlayers(ctx, league.LeagueKey, playerKeys)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetch, err)
		}

		if len(details) > 0 {
			written, err := p.exporter.WritePlayers(details)
			if err != nil {
				return fmt.Errorf("export players: %w", err)
			}
			files = append(files, written...)
		}
	}

	if p.publisher != nil {
		event := notify.RunCompletedEvent{
			RunID:       runID,
			LeagueKey:   league.LeagueKey,
			Rows:        len(rows),
			Files:       files,
			CompletedAt: time.Now().UTC(),
		}
		if err := p.publisher.PublishRunCompleted(event); err != nil {
			// exports already landed on disk, so this does not fail the run
			logger.Warn().Err(err).Msg("failed to publish run completed event")
		}
	}

	logger.Info().Int("files", len(files)).Msg("run complete")
	return nil
}
