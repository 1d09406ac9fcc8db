package models

// Question is one multiple-choice entry from the static quiz catalog.
// Answer always equals one of Options. The correct answer is stripped before
// rendering a quiz to the client.
type Question struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"-"`
}

// Feedback is the per-question grading record returned after a quiz
// submission.
type Feedback struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}
