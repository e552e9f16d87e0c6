package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

type Config struct {
	URL     string
	Subject string
}

func DefaultConfig() Config {
	return Config{
		URL:     nats.DefaultURL,
		Subject: "fantasy.etl.standings",
	}
}

// RunCompletedEvent announces a finished export so downstream consumers can
// pick up the fresh files without polling the output directory.
type RunCompletedEvent struct {
	RunID       string    `json:"run_id"`
	LeagueKey   string    `json:"league_key"`
	Rows        int       `json:"rows"`
	Files       []string  `json:"files"`
	CompletedAt time.Time `json:"completed_at"`
}

// Publisher sends run events to NATS.
type Publisher struct {
	nc     *nats.Conn
	config Config
}

func NewPublisher(cfg Config) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("fantasy-etl"),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &Publisher{nc: nc, config: cfg}, nil
}

// PublishRunCompleted publishes the event and flushes before returning, so a
// one-shot process does not exit with the message still buffered.
func (p *Publisher) PublishRunCompleted(event RunCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal run event: %w", err)
	}

	if err := p.nc.Publish(p.config.Subject, data); err != nil {
		return fmt.Errorf("publish run event: %w", err)
	}
	if err := p.nc.Flush(); err != nil {
		return fmt.Errorf("flush run event: %w", err)
	}

	log.Info().
		Str("subject", p.config.Subject).
		Str("run_id", event.RunID).
		Msg("published run completed event")
	return nil
}

func (p *Publisher) Close() {
	p.nc.Close()
}
