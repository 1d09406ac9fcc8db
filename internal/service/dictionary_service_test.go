package service

import (
	"context"
	"errors"
	"testing"

	"vocab-service/internal/dictionary"
	"vocab-service/internal/models"
)

type fakeDefiner struct {
	definitions map[string]string
}

func (f *fakeDefiner) Define(word string) (string, error) {
	if meaning, ok := f.definitions[word]; ok {
		return meaning, nil
	}
	return "", dictionary.ErrNoDefinition
}

type fakeHistoryStore struct {
	entries []models.SearchEntry
}

func (f *fakeHistoryStore) FindByEmail(_ context.Context, email string) ([]models.SearchEntry, error) {
	var out []models.SearchEntry
	for _, e := range f.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHistoryStore) Create(_ context.Context, entry *models.SearchEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func TestLookupRecordsHistory(t *testing.T) {
	history := &fakeHistoryStore{}
	svc := NewDictionaryService(&fakeDefiner{definitions: map[string]string{"yeet": "to throw"}}, history)
	ctx := context.Background()

	meaning, err := svc.Lookup(ctx, "a@x.com", "yeet")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if meaning != "to throw" {
		t.Errorf("Expected meaning %q, got %q", "to throw", meaning)
	}

	if len(history.entries) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(history.entries))
	}
	entry := history.entries[0]
	if entry.Email != "a@x.com" || entry.Word != "yeet" || entry.Meaning != "to throw" {
		t.Errorf("Unexpected history entry: %+v", entry)
	}
}

func TestLookupUnknownWordLeavesNoHistory(t *testing.T) {
	history := &fakeHistoryStore{}
	svc := NewDictionaryService(&fakeDefiner{}, history)

	_, err := svc.Lookup(context.Background(), "a@x.com", "nosuchword")
	if !errors.Is(err, dictionary.ErrNoDefinition) {
		t.Fatalf("Expected ErrNoDefinition, got %v", err)
	}
	if len(history.entries) != 0 {
		t.Fatalf("Failed lookup must not record history, got %d entries", len(history.entries))
	}
}

func TestSearchHistoryFiltersByEmail(t *testing.T) {
	history := &fakeHistoryStore{entries: []models.SearchEntry{
		{Email: "a@x.com", Word: "one", Meaning: "1"},
		{Email: "b@x.com", Word: "two", Meaning: "2"},
		{Email: "a@x.com", Word: "three", Meaning: "3"},
	}}
	svc := NewDictionaryService(&fakeDefiner{}, history)

	entries, err := svc.SearchHistory(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("SearchHistory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Email != "a@x.com" {
			t.Errorf("Entry for wrong user: %+v", e)
		}
	}
}
