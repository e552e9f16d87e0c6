package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/mcdev12/fantasyetl/go/internal/models"
)

func sampleRows() []models.StandingsRow {
	seed1, seed2 := 1, 2
	return []models.StandingsRow{
		{
			Rank: 1, TeamKey: "t.1", Team: "Gridiron Gang",
			Wins: 10, Losses: 3, Ties: 1, WinPct: 0.75,
			PointsFor: 1456.78, PointsAgainst: 1200.1,
			Streak: "W4", PlayoffSeed: &seed1,
		},
		{
			Rank: 2, TeamKey: "t.2", Team: "Bench Warmers",
			Wins: 8, Losses: 6, Ties: 0, WinPct: 0.571,
			PointsFor: 1300, PointsAgainst: 1280.55,
			Streak: "L2", PlayoffSeed: &seed2,
		},
	}
}

func TestWriteStandingsJSONAndCSVAgree(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir, []string{"json", "csv"})

	files, err := exporter.WriteStandings(sampleRows())
	if err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}

	jsonData, err := os.ReadFile(filepath.Join(dir, "standings.json"))
	if err != nil {
		t.Fatal(err)
	}
	var jsonRows []models.StandingsRow
	if err := json.Unmarshal(jsonData, &jsonRows); err != nil {
		t.Fatalf("standings.json is not valid JSON: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "standings.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("standings.csv is not valid CSV: %v", err)
	}

	// header plus one record per row
	if len(records) != len(jsonRows)+1 {
		t.Fatalf("csv has %d records for %d json rows", len(records), len(jsonRows))
	}

	for i, row := range jsonRows {
		record := records[i+1]
		if record[0] != strconv.Itoa(row.Rank) || record[1] != row.Team {
			t.Fatalf("row %d mismatch between formats: csv=%v json=%+v", i, record, row)
		}
		if record[2] != strconv.Itoa(row.Wins) || record[3] != strconv.Itoa(row.Losses) || record[4] != strconv.Itoa(row.Ties) {
			t.Fatalf("row %d record mismatch: %v", i, record)
		}
		if record[8] != row.Streak {
			t.Fatalf("row %d streak mismatch: %v vs %q", i, record[8], row.Streak)
		}
	}
}

func TestStandingsCSVHeaderIsStable(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir, []string{"csv"})

	if _, err := exporter.WriteStandings(sampleRows()); err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "standings.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Rank", "Team", "W", "L", "T", "WinPct", "PF", "PA", "Streak", "PlayoffSeed"}
	if !reflect.DeepEqual(header, want) {
		t.Fatalf("header = %v, want %v", header, want)
	}
}

func TestWriteStandingsRespectsFormatSelection(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir, []string{"json"})

	files, err := exporter.WriteStandings(sampleRows())
	if err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected only standings.json, got %v", files)
	}
	if _, err := os.Stat(filepath.Join(dir, "standings.csv")); !os.IsNotExist(err) {
		t.Fatal("standings.csv should not exist for json-only export")
	}
}

func TestWriteTeamPlayers(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir, []string{"json", "csv"})

	rows := []models.TeamPlayerRow{
		{
			TeamKey: "t.1", TeamName: "Gridiron Gang",
			PlayerKey: "p.100", Player: "Pat Passer",
			DisplayPosition:   "QB",
			EligiblePositions: []string{"QB"},
			SelectedPosition:  "QB",
		},
		{
			TeamKey: "t.1", TeamName: "Gridiron Gang",
			PlayerKey: "p.200", Player: "Randy Runner",
			DisplayPosition:   "RB",
			EligiblePositions: []string{"RB", "W/R/T"},
			SelectedPosition:  "BN",
		},
	}

	if _, err := exporter.WriteTeamPlayers(rows); err != nil {
		t.Fatalf("WriteTeamPlayers failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "team_players.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[2][5] != "RB|W/R/T" {
		t.Fatalf("eligible positions column = %q", records[2][5])
	}
}

func TestWriteStandingsCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	exporter := NewExporter(dir, []string{"json"})

	if _, err := exporter.WriteStandings(sampleRows()); err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "standings.json")); err != nil {
		t.Fatalf("expected standings.json in created dir: %v", err)
	}
}
