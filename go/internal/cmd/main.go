package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
	"github.com/mcdev12/fantasyetl/go/internal/dbconfig"
	"github.com/mcdev12/fantasyetl/go/internal/etl"
	"github.com/mcdev12/fantasyetl/go/internal/export"
	"github.com/mcdev12/fantasyetl/go/internal/notify"
	"github.com/mcdev12/fantasyetl/go/internal/oauth"
	"github.com/mcdev12/fantasyetl/go/internal/player"
	"github.com/mcdev12/fantasyetl/go/internal/roster"
	"github.com/mcdev12/fantasyetl/go/internal/standings"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath    = flag.String("config", "config.yaml", "path to the YAML config file")
		standingsFlag = flag.Bool("standings", false, "fetch and export standings")
		teamsFlag     = flag.Bool("teams", false, "fetch team rosters from standings and export team player rows")
		playersFlag   = flag.Bool("players", false, "fetch player details for rostered players (requires -teams)")
		allFlag       = flag.Bool("all", false, "run standings, teams, and players")
		debugFlag     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	stages := etl.Stages{
		Standings: *standingsFlag,
		Teams:     *teamsFlag,
		Players:   *playersFlag,
	}
	// No flag means run everything, like -all.
	if *allFlag || (!stages.Standings && !stages.Teams && !stages.Players) {
		stages = etl.Stages{Standings: true, Teams: true, Players: true}
	}

	if err := run(context.Background(), *configPath, stages); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(etl.ExitCode(err))
	}
}

func run(ctx context.Context, configPath string, stages etl.Stages) error {
	config, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", etl.ErrConfig, err)
	}

	session, err := oauth.NewSession(config.OAuth.CredentialsFile, clockwork.NewRealClock())
	if err != nil {
		return fmt.Errorf("%w: %w", etl.ErrConfig, err)
	}

	token, err := session.EnsureToken(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", etl.ErrAuth, err)
	}

	client := yahoo_fantasy_client.NewYahooFantasyClient(token)
	exporter := export.NewExporter(config.ETL.OutputDir, config.Export.Formats)

	pipeline := etl.NewPipeline(
		etl.Config{
			GameCode:  config.ETL.Sport,
			Season:    config.ETL.Season,
			LeagueKey: config.ETL.LeagueKey,
			Stages:    stages,
		},
		standings.NewApp(client),
		roster.NewApp(client),
		player.NewApp(client),
		exporter,
	)

	if config.Database.Enabled {
		pool, err := dbconfig.NewConfigFromEnv().Connect(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", etl.ErrConfig, err)
		}
		defer pool.Close()
		pipeline.SetSink(standings.NewRepository(pool))
	}

	if config.NATS.Enabled {
		publisher, err := notify.NewPublisher(notify.Config{
			URL:     config.NATS.URL,
			Subject: config.NATS.Subject,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", etl.ErrConfig, err)
		}
		defer publisher.Close()
		pipeline.SetPublisher(publisher)
	}

	return pipeline.Run(ctx)
}
