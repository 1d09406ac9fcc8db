package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoDefinition is returned when the API knows no definition for a word.
var ErrNoDefinition = errors.New("no definition found for the word")

type defineResponse struct {
	List []struct {
		Definition string `json:"definition"`
	} `json:"list"`
}

// Client wraps the Urban Dictionary define endpoint. Every request runs under
// the client timeout; a slow upstream fails the lookup instead of hanging it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Define returns the first definition the API lists for word.
func (c *Client) Define(word string) (string, error) {
	reqURL := fmt.Sprintf("%s/define?term=%s", c.baseURL, url.QueryEscape(word))
	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return "", fmt.Errorf("error fetching definition: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dictionary API returned status %d", resp.StatusCode)
	}

	var body defineResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("error decoding dictionary response: %w", err)
	}
	if len(body.List) == 0 {
		return "", ErrNoDefinition
	}
	return body.List[0].Definition, nil
}
