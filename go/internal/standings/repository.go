package standings

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/fantasyetl/go/internal/models"
)

// Repository persists standings rows into Postgres when the database sink is
// enabled. One row per (league_key, team_key); re-runs overwrite.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new standings repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

const upsertStandingsSQL = `
    INSERT INTO league_standings (
      league_key, team_key, rank, team_name, wins, losses, ties,
      win_pct, points_for, points_against, streak, playoff_seed, fetched_at
    ) VALUES (
      $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13
    )
    ON CONFLICT (league_key, team_key) DO UPDATE SET
      rank = EXCLUDED.rank,
      team_name = EXCLUDED.team_name,
      wins = EXCLUDED.wins,
      losses = EXCLUDED.losses,
      ties = EXCLUDED.ties,
      win_pct = EXCLUDED.win_pct,
      points_for = EXCLUDED.points_for,
      points_against = EXCLUDED.points_against,
      streak = EXCLUDED.streak,
      playoff_seed = EXCLUDED.playoff_seed,
      fetched_at = EXCLUDED.fetched_at
`

// UpsertStandings writes all rows for a league in a single transaction.
func (r *Repository) UpsertStandings(ctx context.Context, leagueKey string, rows []models.StandingsRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	fetchedAt := time.Now().UTC()
	for _, row := range rows {
		_, err := tx.Exec(ctx, upsertStandingsSQL,
			leagueKey, row.TeamKey, row.Rank, row.Team, row.Wins, row.Losses, row.Ties,
			row.WinPct, row.PointsFor, row.PointsAgainst, row.Streak, row.PlayoffSeed, fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert standings row for %s: %w", row.TeamKey, err)
		}
	}

	return tx.Commit(ctx)
}
