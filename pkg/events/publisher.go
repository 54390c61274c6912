package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Publisher broadcasts transient announcements via NOTIFY. Announcements are
// ephemeral; a disconnected dashboard re-reads the tables on reconnect.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishPatternDetected broadcasts a pattern.detected announcement to the
// org channel.
func (p *Publisher) PublishPatternDetected(ctx context.Context, payload PatternDetectedPayload) error {
	payload.Type = EventTypePatternDetected
	return p.notify(ctx, OrgChannel(payload.OrgID), payload)
}

// PublishExecutionCompleted broadcasts an execution.completed announcement to
// the org channel.
func (p *Publisher) PublishExecutionCompleted(ctx context.Context, payload ExecutionCompletedPayload) error {
	payload.Type = EventTypeExecutionCompleted
	return p.notify(ctx, OrgChannel(payload.OrgID), payload)
}

// notify broadcasts a payload via NOTIFY without persisting it.
func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	// PostgreSQL caps NOTIFY payloads at 8000 bytes; announcements carry
	// only IDs and stay well below it.
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON))
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}
