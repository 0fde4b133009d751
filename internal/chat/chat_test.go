package chat

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brdge/sprintplan/internal/contract"
)

func testClient(baseURL string) *Client {
	return NewClient(&contract.Config{ChatBaseURL: baseURL, ChatToken: "chat-secret"})
}

func TestUpdateCanvas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/canvases.edit", r.URL.Path)
		assert.Equal(t, "Bearer chat-secret", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req editRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "C123", req.CanvasID)
		require.Len(t, req.Changes, 1)
		assert.Equal(t, "replace", req.Changes[0].Operation)
		assert.Equal(t, "# Capacity", req.Changes[0].DocumentContent.Markdown)

		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).UpdateCanvas(context.Background(), "C123", "# Capacity")
	assert.NoError(t, err)
}

func TestUpdateCanvasAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "error": "canvas_not_found"}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).UpdateCanvas(context.Background(), "C404", "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canvas_not_found")
}

func TestUpdateCanvasMissingToken(t *testing.T) {
	client := NewClient(&contract.Config{ChatBaseURL: "http://unreachable.invalid"})
	err := client.UpdateCanvas(context.Background(), "C123", "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat-api-token")
}
