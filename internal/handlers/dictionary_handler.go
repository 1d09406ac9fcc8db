package handlers

import (
	"context"
	"errors"
	"net/http"

	"vocab-service/internal/dictionary"
	"vocab-service/internal/middleware"
	"vocab-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DictionaryHandler struct {
	Service *service.DictionaryService
}

func NewDictionaryHandler(s *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{Service: s}
}

func (h *DictionaryHandler) Dashboard(c *gin.Context) {
	user := middleware.State(c).User

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	history, err := h.Service.SearchHistory(ctx, user.Email)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error fetching search history")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"user":          user,
		"searchHistory": history,
	})
}

func (h *DictionaryHandler) SearchHistory(c *gin.Context) {
	email := middleware.State(c).User.Email

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	history, err := h.Service.SearchHistory(ctx, email)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error fetching search history")
		return
	}
	c.HTML(http.StatusOK, "searchHistory.html", gin.H{"searchHistory": history})
}

func (h *DictionaryHandler) Lookup(c *gin.Context) {
	word := c.Query("word")
	if word == "" {
		c.String(http.StatusBadRequest, "Word query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	email := middleware.State(c).User.Email
	meaning, err := h.Service.Lookup(ctx, email, word)
	if err != nil {
		if errors.Is(err, dictionary.ErrNoDefinition) {
			c.String(http.StatusNotFound, "No definition found for the word")
			return
		}
		c.String(http.StatusInternalServerError, "Error fetching data from Urban Dictionary")
		return
	}

	c.HTML(http.StatusOK, "urbanDictionary.html", gin.H{
		"word":    word,
		"meaning": meaning,
	})
}
