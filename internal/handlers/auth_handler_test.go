package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"vocab-service/internal/middleware"
	"vocab-service/internal/models"
	"vocab-service/internal/quiz"
	"vocab-service/internal/service"
	"vocab-service/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type memUserStore struct {
	users map[string]*models.User
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return m.users[email], nil
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func newAppRouter(store session.Store, users *memUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.Use(middleware.Sessions(store, false))

	authHandler := NewAuthHandler(service.NewAuthService(users, bcrypt.MinCost), store)
	quizHandler := NewQuizHandler(quiz.NewEngine(quiz.Catalog), store)

	r.GET("/login", authHandler.ShowLogin)
	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	protected.GET("/quiz", quizHandler.Show)
	protected.POST("/quiz", quizHandler.Submit)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("No session cookie in response")
	return nil
}

func TestSignupValidation(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	r := newAppRouter(store, &memUserStore{users: make(map[string]*models.User)})

	testCases := []struct {
		name string
		form url.Values
	}{
		{"missing username", url.Values{"email": {"a@x.com"}, "password": {"secret1"}}},
		{"missing email", url.Values{"username": {"alice"}, "password": {"secret1"}}},
		{"missing password", url.Values{"username": {"alice"}, "email": {"a@x.com"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postForm(r, "/signup", tc.form)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	users := &memUserStore{users: make(map[string]*models.User)}
	r := newAppRouter(store, users)

	form := url.Values{"username": {"alice"}, "email": {"a@x.com"}, "password": {"secret1"}}
	if w := postForm(r, "/signup", form); w.Code != http.StatusFound {
		t.Fatalf("First signup: expected 302, got %d", w.Code)
	}

	w := postForm(r, "/signup", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Second signup: expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Fatalf("Unexpected body: %q", w.Body.String())
	}
	if len(users.users) != 1 {
		t.Fatalf("Expected one stored user, got %d", len(users.users))
	}
}

func TestLoginFailures(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	r := newAppRouter(store, &memUserStore{users: make(map[string]*models.User)})

	signup := url.Values{"username": {"alice"}, "email": {"a@x.com"}, "password": {"secret1"}}
	postForm(r, "/signup", signup)

	testCases := []struct {
		name       string
		form       url.Values
		expectBody string
	}{
		{"unknown email", url.Values{"email": {"b@x.com"}, "password": {"secret1"}}, "User not found"},
		{"wrong password", url.Values{"email": {"a@x.com"}, "password": {"secret2"}}, "Invalid password or user"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postForm(r, "/login", tc.form)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.expectBody) {
				t.Fatalf("Expected body containing %q, got %q", tc.expectBody, w.Body.String())
			}
		})
	}
}

// Full scenario: signup, login, draw a quiz, answer everything correctly,
// end with 50 reward points on the session.
func TestSignupLoginQuizScenario(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	r := newAppRouter(store, &memUserStore{users: make(map[string]*models.User)})

	w := postForm(r, "/signup", url.Values{"username": {"alice"}, "email": {"a@x.com"}, "password": {"secret1"}})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("Signup: expected redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}

	w = postForm(r, "/login", url.Values{"email": {"a@x.com"}, "password": {"secret1"}})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Login: expected redirect to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
	cookie := sessionCookie(t, w)

	getReq := httptest.NewRequest(http.MethodGet, "/quiz", nil)
	getReq.AddCookie(cookie)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("GET /quiz: expected 200, got %d", getW.Code)
	}

	state, err := store.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(state.SelectedQuestions) != quiz.QuestionsPerQuiz {
		t.Fatalf("Expected %d selected questions, got %d", quiz.QuestionsPerQuiz, len(state.SelectedQuestions))
	}

	form := url.Values{}
	for i, q := range state.SelectedQuestions {
		form.Set("answers["+strconv.Itoa(i)+"]", q.Answer)
	}
	w = postForm(r, "/quiz", form, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /quiz: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	state, _ = store.Get(context.Background(), cookie.Value)
	if state.User.RewardPoints != 50 {
		t.Fatalf("Expected 50 reward points, got %d", state.User.RewardPoints)
	}

	// Quiz without the cookie still redirects.
	anonW := httptest.NewRecorder()
	anonReq := httptest.NewRequest(http.MethodGet, "/quiz", nil)
	r.ServeHTTP(anonW, anonReq)
	if anonW.Code != http.StatusFound || anonW.Header().Get("Location") != "/login" {
		t.Fatalf("Anonymous /quiz: expected redirect to /login, got %d", anonW.Code)
	}
}
