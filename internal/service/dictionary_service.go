package service

import (
	"context"
	"fmt"

	"vocab-service/internal/models"
)

type DictionaryService struct {
	Definer Definer
	History HistoryStore
}

func NewDictionaryService(definer Definer, history HistoryStore) *DictionaryService {
	return &DictionaryService{Definer: definer, History: history}
}

// Lookup resolves a word and appends the result to the caller's search
// history. The history write happens only for successful lookups.
func (s *DictionaryService) Lookup(ctx context.Context, email, word string) (string, error) {
	meaning, err := s.Definer.Define(word)
	if err != nil {
		return "", err
	}
	entry := &models.SearchEntry{Email: email, Word: word, Meaning: meaning}
	if err := s.History.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("error recording search history: %w", err)
	}
	return meaning, nil
}

func (s *DictionaryService) SearchHistory(ctx context.Context, email string) ([]models.SearchEntry, error) {
	return s.History.FindByEmail(ctx, email)
}
