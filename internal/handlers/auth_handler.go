package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vocab-service/internal/middleware"
	"vocab-service/internal/service"
	"vocab-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const storeTimeout = 10 * time.Second

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vocab_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	Service *service.AuthService
	Store   session.Store
}

func NewAuthHandler(s *service.AuthService, store session.Store) *AuthHandler {
	return &AuthHandler{Service: s, Store: store}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if username == "" || email == "" || password == "" {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.String(http.StatusBadRequest, "username, email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	err := h.Service.Signup(ctx, username, email, password)
	if err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, service.ErrUserExists) {
			c.String(http.StatusBadRequest, "User already exists")
			return
		}
		c.String(http.StatusInternalServerError, "Error occurred: %s", err.Error())
		return
	}

	registrationAttempts.WithLabelValues("success").Inc()
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		loginAttempts.WithLabelValues("failure").Inc()
		c.String(http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	user, err := h.Service.Login(ctx, email, password)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.String(http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrInvalidPassword):
			c.String(http.StatusBadRequest, "Invalid password or user")
		default:
			c.String(http.StatusInternalServerError, "Error occurred in login: %s", err.Error())
		}
		return
	}

	// Full user record becomes the session snapshot; reward points accumulate
	// on this snapshot only and reset on next login.
	state := middleware.State(c)
	state.User = user
	if err := h.Store.Put(ctx, middleware.Token(c), state); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		c.String(http.StatusInternalServerError, "Error occurred in login: %s", err.Error())
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	c.Redirect(http.StatusFound, "/dashboard")
}
