package repository

import (
	"context"

	"vocab-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HistoryRepository struct {
	Col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{Col: db.Collection("searchHistory")}
}

func (r *HistoryRepository) FindByEmail(ctx context.Context, email string) ([]models.SearchEntry, error) {
	cur, err := r.Col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.SearchEntry
	for cur.Next(ctx) {
		var e models.SearchEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *HistoryRepository) Create(ctx context.Context, entry *models.SearchEntry) error {
	_, err := r.Col.InsertOne(ctx, entry)
	return err
}
