package assistant

import "github.com/dmitrijs2005/wealthwise/internal/conversations"

// CompletionRequest is the payload posted to the messages endpoint: the full
// ordered transcript plus the fixed system preamble and declared tools.
type CompletionRequest struct {
	Model     string                  `json:"model"`
	MaxTokens int                     `json:"max_tokens"`
	System    string                  `json:"system"`
	Messages  []conversations.Message `json:"messages"`
	Tools     []Tool                  `json:"tools,omitempty"`
}

// Tool declares a capability the service may invoke while completing.
type Tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// ContentBlock is one typed segment of a completion response. Only text
// segments are consumed; tool-use and other block types are skipped.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// CompletionResponse is the service's reply.
type CompletionResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason,omitempty"`
}

// Text concatenates all text segments of the response in order.
func (r *CompletionResponse) Text() string {
	var out string
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// APIErrorResponse is the error envelope returned on non-2xx statuses.
type APIErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
