package models

// SearchEntry records one successful dictionary lookup. Entries are append
// only and never mutated or deleted.
type SearchEntry struct {
	Email   string `bson:"email" json:"email"`
	Word    string `bson:"word" json:"word"`
	Meaning string `bson:"meaning" json:"meaning"`
}
