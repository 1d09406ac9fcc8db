package handlers

import (
	"context"
	"net/http"
	"strconv"

	"vocab-service/internal/middleware"
	"vocab-service/internal/quiz"
	"vocab-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quizSubmissions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vocab_quiz_submissions_total",
		Help: "Total number of quiz submissions",
	},
	[]string{"status"},
)

type QuizHandler struct {
	Engine *quiz.Engine
	Store  session.Store
}

func NewQuizHandler(engine *quiz.Engine, store session.Store) *QuizHandler {
	return &QuizHandler{Engine: engine, Store: store}
}

// Show draws a fresh selection, overwriting any previous one in the session,
// and renders it without correct answers.
func (h *QuizHandler) Show(c *gin.Context) {
	selected := h.Engine.Select()

	state := middleware.State(c)
	state.SelectedQuestions = selected

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.Store.Put(ctx, middleware.Token(c), state); err != nil {
		c.String(http.StatusInternalServerError, "Error saving quiz selection: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "quiz.html", gin.H{"questions": selected})
}

// Submit grades the form answers positionally against the session-stored
// selection. A session without a selection, or an answer set that does not
// cover every question, is a plain 400 rather than an unchecked read.
func (h *QuizHandler) Submit(c *gin.Context) {
	state := middleware.State(c)
	selected := state.SelectedQuestions
	if len(selected) == 0 {
		quizSubmissions.WithLabelValues("failure").Inc()
		c.String(http.StatusBadRequest, "No quiz in progress, start one at /quiz")
		return
	}

	submitted := c.PostFormMap("answers")
	answers := make([]string, len(selected))
	for i := range selected {
		answer, ok := submitted[strconv.Itoa(i)]
		if !ok {
			quizSubmissions.WithLabelValues("failure").Inc()
			c.String(http.StatusBadRequest, "Expected %d answers, got %d", len(selected), len(submitted))
			return
		}
		answers[i] = answer
	}

	score, feedback, err := h.Engine.Grade(selected, answers)
	if err != nil {
		quizSubmissions.WithLabelValues("failure").Inc()
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	// Reward points live on the session snapshot only, never written back to
	// the credential store.
	if state.User != nil {
		state.User.RewardPoints += score

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		if err := h.Store.Put(ctx, middleware.Token(c), state); err != nil {
			quizSubmissions.WithLabelValues("failure").Inc()
			c.String(http.StatusInternalServerError, "Error saving quiz result: %s", err.Error())
			return
		}
	}

	quizSubmissions.WithLabelValues("success").Inc()
	c.HTML(http.StatusOK, "quizResult.html", gin.H{
		"score":          score,
		"feedback":       feedback,
		"totalQuestions": len(selected),
	})
}
