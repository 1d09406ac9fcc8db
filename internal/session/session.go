package session

import (
	"context"

	"vocab-service/internal/models"

	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the opaque session token.
const CookieName = "vocab_session"

// State is the per-browser-session server-held state. User is set on login,
// SelectedQuestions on quiz start. Both survive until the session expires.
type State struct {
	User              *models.User      `bson:"user,omitempty"`
	SelectedQuestions []models.Question `bson:"selectedQuestions,omitempty"`
}

// Store is the pluggable session backing injected into the router. Get
// returns (nil, nil) for unknown or expired tokens.
type Store interface {
	Get(ctx context.Context, token string) (*State, error)
	Put(ctx context.Context, token string, state *State) error
	Delete(ctx context.Context, token string) error
}

// NewToken issues an opaque session token.
func NewToken() string {
	return uuid.NewString()
}
