// Package assistant turns a conversation transcript into a completion
// request against the external text-completion service and normalizes the
// reply into a single assistant message.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

const (
	jsonContentType = "application/json"
	apiVersion      = "2023-06-01"
	messagesPath    = "/v1/messages"
)

// CompletionClient is the transport boundary to the completion service.
// HTTPClient is the production implementation; tests use fakes.
type CompletionClient interface {
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)
}

// HTTPClient posts completion requests to an Anthropic-style messages API.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        logging.Logger
}

// NewHTTPClient builds a client with the given endpoint and credentials.
// The timeout bounds the whole request; the service offers no cancellation
// contract, so an expired request is simply dropped on our side.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}
}

func (c *HTTPClient) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	reqBytes, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("request encode error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("request build error: %w", err)
	}
	req.Header.Set("Content-Type", jsonContentType)
	req.Header.Set("Accept", jsonContentType)
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request send error: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("response read error: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIErrorResponse{}
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return nil, fmt.Errorf("api request failed: status code %d", res.StatusCode)
		}
		return nil, fmt.Errorf("api request failed: status code %d, type %s, message %s",
			res.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
	}

	response := &CompletionResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("response decode error: %w", err)
	}

	c.log.Debug(ctx, "completion received", "model", response.Model, "stop_reason", response.StopReason)
	return response, nil
}
