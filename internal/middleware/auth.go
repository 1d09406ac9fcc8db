package middleware

import (
	"log"
	"net/http"

	"vocab-service/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	stateKey = "session_state"
	tokenKey = "session_token"
)

// Sessions loads the caller's session state from the store, creating and
// persisting a fresh session when the browser sent no usable token. State and
// token are stashed on the gin context for handlers downstream.
func Sessions(store session.Store, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		var state *session.State
		if err == nil {
			state, err = store.Get(c.Request.Context(), token)
			if err != nil {
				log.Printf("Error loading session %s: %s", token, err)
			}
		}
		if state == nil {
			token = session.NewToken()
			state = &session.State{}
			if err := store.Put(c.Request.Context(), token, state); err != nil {
				c.String(http.StatusInternalServerError, "Error creating session: %s", err.Error())
				c.Abort()
				return
			}
			c.SetCookie(session.CookieName, token, 0, "/", "", secure, true)
		}
		c.Set(tokenKey, token)
		c.Set(stateKey, state)
		c.Next()
	}
}

// RequireAuth gates protected routes: authenticated callers proceed, everyone
// else is redirected to the login page. No error body, a pure routing
// decision.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := State(c)
		if state == nil || state.User == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// State returns the session state loaded by Sessions, or nil outside it.
func State(c *gin.Context) *session.State {
	if v, ok := c.Get(stateKey); ok {
		return v.(*session.State)
	}
	return nil
}

// Token returns the session token loaded by Sessions.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}
