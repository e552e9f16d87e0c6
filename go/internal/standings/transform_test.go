package standings

import (
	"testing"

	"github.com/mcdev12/fantasyetl/go/clients/yahoo_fantasy_client"
)

func TestTeamToRowFlattensNestedFields(t *testing.T) {
	team := yahoo_fantasy_client.StandingsTeam{
		TeamKey: "449.l.222.t.1",
		Name:    "Gridiron Gang",
		Standings: yahoo_fantasy_client.TeamStandings{
			Rank:        1,
			PlayoffSeed: "1",
			OutcomeTotals: yahoo_fantasy_client.OutcomeTotals{
				Wins: 10, Losses: 3, Ties: 1, Percentage: ".750",
			},
			Streak:        yahoo_fantasy_client.Streak{Type: "win", Value: 4},
			PointsFor:     1456.78,
			PointsAgainst: 1200.10,
		},
	}

	row := teamToRow(team)

	if row.Rank != 1 || row.Team != "Gridiron Gang" || row.TeamKey != "449.l.222.t.1" {
		t.Fatalf("unexpected identity fields: %+v", row)
	}
	if row.Wins != 10 || row.Losses != 3 || row.Ties != 1 {
		t.Fatalf("unexpected record: %+v", row)
	}
	if row.WinPct != 0.75 {
		t.Fatalf("win pct = %v, want 0.75", row.WinPct)
	}
	if row.Streak != "W4" {
		t.Fatalf("streak = %q, want W4", row.Streak)
	}
	if row.PlayoffSeed == nil || *row.PlayoffSeed != 1 {
		t.Fatalf("playoff seed = %v, want 1", row.PlayoffSeed)
	}
}

func TestWinPctFallsBackToOutcomeTotals(t *testing.T) {
	tests := []struct {
		name   string
		totals yahoo_fantasy_client.OutcomeTotals
		want   float64
	}{
		{
			name:   "empty percentage recomputed",
			totals: yahoo_fantasy_client.OutcomeTotals{Wins: 6, Losses: 2, Ties: 0, Percentage: ""},
			want:   0.75,
		},
		{
			name:   "ties count as half wins",
			totals: yahoo_fantasy_client.OutcomeTotals{Wins: 3, Losses: 3, Ties: 2, Percentage: ""},
			want:   0.5,
		},
		{
			name:   "no games yet",
			totals: yahoo_fantasy_client.OutcomeTotals{},
			want:   0,
		},
		{
			name:   "yahoo percentage wins when present",
			totals: yahoo_fantasy_client.OutcomeTotals{Wins: 1, Losses: 9, Percentage: ".100"},
			want:   0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := winPct(tt.totals); got != tt.want {
				t.Fatalf("winPct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompactStreak(t *testing.T) {
	tests := []struct {
		streak yahoo_fantasy_client.Streak
		want   string
	}{
		{yahoo_fantasy_client.Streak{Type: "win", Value: 3}, "W3"},
		{yahoo_fantasy_client.Streak{Type: "loss", Value: 2}, "L2"},
		{yahoo_fantasy_client.Streak{Type: "tie", Value: 1}, "T1"},
		{yahoo_fantasy_client.Streak{}, ""},
		{yahoo_fantasy_client.Streak{Type: "mystery", Value: 5}, ""},
	}

	for _, tt := range tests {
		if got := compactStreak(tt.streak); got != tt.want {
			t.Fatalf("compactStreak(%+v) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}

func TestParseSeed(t *testing.T) {
	if seed := parseSeed("3"); seed == nil || *seed != 3 {
		t.Fatalf("parseSeed(3) = %v", seed)
	}
	if seed := parseSeed(""); seed != nil {
		t.Fatalf("parseSeed empty = %v, want nil", seed)
	}
}
