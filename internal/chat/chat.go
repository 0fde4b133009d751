// Package chat publishes rendered reports to chat canvases.
package chat

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/brdge/sprintplan/internal/contract"
)

const requestTimeout = 30 * time.Second

// Client talks to the chat platform's canvas API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

var _ contract.CanvasPublisher = &Client{} // Compile-time check

// NewClient builds a canvas client from the validated config.
func NewClient(cfg *contract.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: cfg.ChatBaseURL,
		token:   cfg.ChatToken,
	}
}

type documentContent struct {
	Type     string `json:"type"`
	Markdown string `json:"markdown"`
}

type canvasChange struct {
	Operation       string          `json:"operation"`
	DocumentContent documentContent `json:"document_content"`
}

type editRequest struct {
	CanvasID string         `json:"canvas_id"`
	Changes  []canvasChange `json:"changes"`
}

type editResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// UpdateCanvas replaces the canvas document with the given markdown content.
func (c *Client) UpdateCanvas(ctx context.Context, canvasID, content string) error {
	if c.token == "" {
		return fmt.Errorf("chat-api-token is required for canvas publishing")
	}

	payload := editRequest{
		CanvasID: canvasID,
		Changes: []canvasChange{{
			Operation:       "replace",
			DocumentContent: documentContent{Type: "markdown", Markdown: content},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/canvases.edit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("canvases.edit returned %d", resp.StatusCode)
	}

	var result editResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("canvases.edit: decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("canvases.edit failed for %s: %s", canvasID, result.Error)
	}
	return nil
}
