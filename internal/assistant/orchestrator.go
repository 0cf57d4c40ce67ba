package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wealthwise/internal/common"
	"github.com/dmitrijs2005/wealthwise/internal/conversations"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

// AppendUserTurn appends the user's text to the transcript. Blank input
// fails with common.ErrValidation; the transcript is otherwise append-only.
func AppendUserTurn(history []conversations.Message, text string) ([]conversations.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", common.ErrValidation)
	}
	return append(history, conversations.Message{Role: conversations.RoleUser, Content: text}), nil
}

// Orchestrator drives completion requests for a transcript.
//
// It holds no queue and no in-flight guard: callers must serialize requests
// per conversation (the REPL does so by construction, a UI by disabling
// input while a request is outstanding).
type Orchestrator struct {
	client    CompletionClient
	log       logging.Logger
	model     string
	maxTokens int
}

func NewOrchestrator(client CompletionClient, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		client:    client,
		log:       log,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
}

// RequestCompletion sends the full ordered history to the completion service
// and returns the assistant's reply as a single message.
//
// It never fails: an empty reply or a service/transport error is converted
// into a fixed fallback message and logged, so a submitted turn always gets
// an answer.
func (o *Orchestrator) RequestCompletion(ctx context.Context, history []conversations.Message) conversations.Message {
	request := &CompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		System:    systemPrompt,
		Messages:  history,
		Tools: []Tool{
			{Type: webSearchToolType, Name: webSearchToolName},
		},
	}

	response, err := o.client.Complete(ctx, request)
	if err != nil {
		o.log.Error(ctx, "completion request failed", "error", err)
		return conversations.Message{Role: conversations.RoleAssistant, Content: fallbackServiceError}
	}

	text := response.Text()
	if text == "" {
		o.log.Warn(ctx, "completion response contained no usable text")
		return conversations.Message{Role: conversations.RoleAssistant, Content: fallbackEmptyReply}
	}

	return conversations.Message{Role: conversations.RoleAssistant, Content: text}
}
