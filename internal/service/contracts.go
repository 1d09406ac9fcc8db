package service

import (
	"context"

	"vocab-service/internal/models"
)

// UserStore is the credential store capability the services depend on.
// Implemented by repository.UserRepository; faked in tests.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// HistoryStore persists and lists dictionary lookups per user email.
type HistoryStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.SearchEntry, error)
	Create(ctx context.Context, entry *models.SearchEntry) error
}

// Definer resolves a word to its first listed definition.
type Definer interface {
	Define(word string) (string, error)
}
