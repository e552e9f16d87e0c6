package yahoo_fantasy_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const rosterXML = `<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <team>
    <team_key>449.l.222.t.3</team_key>
    <name>Bench Warmers</name>
    <roster>
      <players count="2">
        <player>
          <player_key>449.p.100</player_key>
          <name>
            <full>Pat Passer</full>
            <first>Pat</first>
            <last>Passer</last>
          </name>
          <display_position>QB</display_position>
          <eligible_positions>
            <position>QB</position>
          </eligible_positions>
          <selected_position>
            <position>QB</position>
          </selected_position>
        </player>
        <player>
          <player_key>449.p.200</player_key>
          <name>
            <full>Randy Runner</full>
            <first>Randy</first>
            <last>Runner</last>
          </name>
          <display_position>RB</display_position>
          <eligible_positions>
            <position>RB</position>
            <position>W/R/T</position>
          </eligible_positions>
          <selected_position>
            <position>BN</position>
          </selected_position>
        </player>
      </players>
    </roster>
  </team>
</fantasy_content>`

func TestGetTeamRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team/449.l.222.t.3/roster" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(rosterXML))
	}))
	defer srv.Close()

	roster, err := newTestClient(srv.URL).GetTeamRoster(context.Background(), "449.l.222.t.3")
	if err != nil {
		t.Fatalf("GetTeamRoster failed: %v", err)
	}

	if roster.TeamKey != "449.l.222.t.3" || roster.Name != "Bench Warmers" {
		t.Fatalf("unexpected team: %+v", roster)
	}
	if len(roster.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(roster.Players))
	}

	rb := roster.Players[1]
	if rb.Name.Full != "Randy Runner" || rb.DisplayPosition != "RB" {
		t.Fatalf("unexpected player: %+v", rb)
	}
	if len(rb.EligiblePositions) != 2 || rb.EligiblePositions[1] != "W/R/T" {
		t.Fatalf("unexpected eligible positions: %v", rb.EligiblePositions)
	}
	if rb.SelectedPosition != "BN" {
		t.Fatalf("selected position = %q, want BN", rb.SelectedPosition)
	}
}
