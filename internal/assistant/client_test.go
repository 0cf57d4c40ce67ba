package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

func testRequest() *CompletionRequest {
	return &CompletionRequest{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		System:    systemPrompt,
	}
}

func TestHTTPClient_Complete_Success(t *testing.T) {
	var gotAPIKey, gotVersion, gotPath string
	var gotBody CompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", jsonContentType)
		_ = json.NewEncoder(w).Encode(CompletionResponse{
			ID:      "msg_1",
			Content: []ContentBlock{{Type: "text", Text: "hi"}},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", time.Second, logging.NewDefault(slog.LevelError+1))

	response, err := client.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, "hi", response.Text())

	require.Equal(t, "test-key", gotAPIKey)
	require.Equal(t, apiVersion, gotVersion)
	require.Equal(t, messagesPath, gotPath)
	require.Equal(t, DefaultModel, gotBody.Model)
}

func TestHTTPClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", time.Second, logging.NewDefault(slog.LevelError+1))

	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate_limit_error")
	require.Contains(t, err.Error(), "slow down")
}

func TestHTTPClient_Complete_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewHTTPClient(server.URL, "test-key", time.Second, logging.NewDefault(slog.LevelError+1))

	_, err := client.Complete(context.Background(), testRequest())
	require.Error(t, err)
}
