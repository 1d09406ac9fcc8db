package quiz

import (
	"errors"
	"math/rand"
	"time"

	"vocab-service/internal/models"
)

const (
	// QuestionsPerQuiz is how many questions one quiz draw contains.
	QuestionsPerQuiz = 5
	// PointsPerCorrect is awarded for each correct answer.
	PointsPerCorrect = 10
)

var (
	ErrNoSelection = errors.New("no quiz selection in session")
	ErrAnswerCount = errors.New("answer count does not match selected questions")
)

// Engine draws random question subsets from a catalog and grades submissions
// against a previously drawn selection.
type Engine struct {
	catalog []models.Question
	rand    *rand.Rand
}

func NewEngine(catalog []models.Question) *Engine {
	return &Engine{
		catalog: catalog,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select returns QuestionsPerQuiz distinct questions drawn uniformly from the
// catalog via a Fisher-Yates shuffle of a copy.
func (e *Engine) Select() []models.Question {
	shuffled := make([]models.Question, len(e.catalog))
	copy(shuffled, e.catalog)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := e.rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	n := QuestionsPerQuiz
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Grade matches answers positionally against the session-stored selection.
// The selection is trusted over any fresh catalog read, so a client cannot
// swap questions between draw and submission.
func (e *Engine) Grade(selected []models.Question, answers []string) (int, []models.Feedback, error) {
	if len(selected) == 0 {
		return 0, nil, ErrNoSelection
	}
	if len(answers) != len(selected) {
		return 0, nil, ErrAnswerCount
	}

	score := 0
	feedback := make([]models.Feedback, 0, len(selected))
	for i, q := range selected {
		correct := answers[i] == q.Answer
		if correct {
			score += PointsPerCorrect
		}
		feedback = append(feedback, models.Feedback{
			Question:      q.Question,
			UserAnswer:    answers[i],
			CorrectAnswer: q.Answer,
			IsCorrect:     correct,
		})
	}
	return score, feedback, nil
}
