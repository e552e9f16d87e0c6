package yahoo_fantasy_client

const (
	// Base URL
	BaseURL = "https://fantasysports.yahooapis.com/fantasy/v2"

	// Resource paths; league/team/player keys are interpolated by the callers
	UserLeaguesEndpoint     = "/users;use_login=1/games;game_codes=%s%s/leagues"
	LeagueStandingsEndpoint = "/league/%s/standings"
	TeamRosterEndpoint      = "/team/%s/roster"
	LeaguePlayersEndpoint   = "/league/%s/players;player_keys=%s"

	// Game codes
	GameCodeNFL = "nfl"
	GameCodeMLB = "mlb"
	GameCodeNBA = "nba"

	// Headers
	AuthorizationHeader = "Authorization"
	AcceptHeader        = "Accept"
)
