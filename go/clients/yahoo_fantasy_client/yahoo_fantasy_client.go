package yahoo_fantasy_client

import (
	"github.com/mcdev12/fantasyetl/go/clients"
)

// YahooFantasyClient talks to the Yahoo Fantasy Sports v2 API. Responses are
// XML; each resource file declares the payload slice it decodes.
type YahooFantasyClient struct {
	*clients.BaseClient
}

func NewYahooFantasyClient(accessToken string) *YahooFantasyClient {
	client := &YahooFantasyClient{
		BaseClient: clients.NewBaseClient(BaseURL),
	}

	client.SetHeader(AuthorizationHeader, "Bearer "+accessToken)
	client.SetHeader(AcceptHeader, "application/xml")

	return client
}
