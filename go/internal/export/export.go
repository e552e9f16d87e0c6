package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mcdev12/fantasyetl/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Output formats the exporter knows how to write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// StandingsHeader is the fixed standings.csv column order.
var StandingsHeader = []string{"Rank", "Team", "W", "L", "T", "WinPct", "PF", "PA", "Streak", "PlayoffSeed"}

// TeamPlayersHeader is the fixed team_players.csv column order.
var TeamPlayersHeader = []string{"TeamKey", "TeamName", "PlayerKey", "Player", "Position", "EligiblePositions", "SelectedPosition"}

// Exporter serializes pipeline output into the configured directory. Pure
// formatting; a failed write fails the run.
type Exporter struct {
	outputDir string
	formats   map[string]bool
}

// NewExporter creates an exporter writing the given formats into outputDir.
func NewExporter(outputDir string, formats []string) *Exporter {
	enabled := make(map[string]bool, len(formats))
	for _, f := range formats {
		enabled[strings.ToLower(f)] = true
	}
	return &Exporter{
		outputDir: outputDir,
		formats:   enabled,
	}
}

// WriteStandings writes standings.json and standings.csv and returns the
// paths it wrote.
func (e *Exporter) WriteStandings(rows []models.StandingsRow) ([]string, error) {
	var written []string

	if e.formats[FormatJSON] {
		path, err := e.writeJSON("standings.json", rows)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if e.formats[FormatCSV] {
		records := make([][]string, len(rows))
		for i, row := range rows {
			records[i] = standingsRecord(row)
		}
		path, err := e.writeCSV("standings.csv", StandingsHeader, records)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// WriteTeamPlayers writes team_players.json / team_players.csv.
func (e *Exporter) WriteTeamPlayers(rows []models.TeamPlayerRow) ([]string, error) {
	var written []string

	if e.formats[FormatJSON] {
		path, err := e.writeJSON("team_players.json", rows)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if e.formats[FormatCSV] {
		records := make([][]string, len(rows))
		for i, row := range rows {
			records[i] = []string{
				row.TeamKey,
				row.TeamName,
				row.PlayerKey,
				row.Player,
				row.DisplayPosition,
				strings.Join(row.EligiblePositions, "|"),
				row.SelectedPosition,
			}
		}
		path, err := e.writeCSV("team_players.csv", TeamPlayersHeader, records)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// WritePlayers writes players.json. Player detail is nested enough that only
// the JSON form is produced.
func (e *Exporter) WritePlayers(details []models.PlayerDetail) ([]string, error) {
	path, err := e.writeJSON("players.json", details)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (e *Exporter) writeJSON(name string, v interface{}) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("wrote export file")
	return path, nil
}

func (e *Exporter) writeCSV(name string, header []string, records [][]string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", name, err)
	}

	log.Info().Str("path", path).Int("rows", len(records)).Msg("wrote export file")
	return path, nil
}

func standingsRecord(row models.StandingsRow) []string {
	seed := ""
	if row.PlayoffSeed != nil {
		seed = strconv.Itoa(*row.PlayoffSeed)
	}
	return []string{
		strconv.Itoa(row.Rank),
		row.Team,
		strconv.Itoa(row.Wins),
		strconv.Itoa(row.Losses),
		strconv.Itoa(row.Ties),
		strconv.FormatFloat(row.WinPct, 'f', 3, 64),
		strconv.FormatFloat(row.PointsFor, 'f', 2, 64),
		strconv.FormatFloat(row.PointsAgainst, 'f', 2, 64),
		row.Streak,
		seed,
	}
}
