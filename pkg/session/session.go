// Package session remembers recent planning sessions for the wizard.
//
// The planning engine is stateless by design; the "current project" notion
// lives entirely out here in the calling layer. A Session snapshots the plan
// manifest a user last worked with so the wizard can pre-fill its prompts.
//
// Backends:
//   - FileStore: JSON files under ~/.config/tilewright/sessions for the CLI
//   - MongoStore: shared store when a team runs the planner against a
//     common database
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tilewright/tilewright/pkg/plan"
)

// DefaultTTL is how long a remembered session stays valid.
const DefaultTTL = 90 * 24 * time.Hour

// Session is a snapshot of a planning run.
type Session struct {
	ID        string        `json:"id" bson:"_id"`
	Manifest  plan.Manifest `json:"manifest" bson:"manifest"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time     `json:"expires_at" bson:"expires_at"`
}

// New creates a session with a fresh UUID and the given TTL.
func New(m plan.Manifest, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Manifest:  m,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session has outlived its TTL.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Store persists sessions. Implementations return (nil, nil) from Get and
// Latest when nothing (unexpired) is found; absence is not an error.
type Store interface {
	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores or replaces a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Latest returns the most recently created unexpired session.
	Latest(ctx context.Context) (*Session, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
