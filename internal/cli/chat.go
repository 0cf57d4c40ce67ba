package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wealthwise/internal/assistant"
)

// Ask reads a question, appends it to the transcript, and requests a
// completion. The orchestrator guarantees a reply (real or fallback), so the
// transcript always grows by exactly two messages on success.
func (a *App) Ask(ctx context.Context) error {
	question, err := getText(a.reader, "Your question", a.out)
	if err != nil {
		return err
	}

	updated, err := assistant.AppendUserTurn(a.transcript, question)
	if err != nil {
		fmt.Fprintf(a.out, "Nothing to send: %v\n", err)
		return err
	}
	a.transcript = updated

	fmt.Fprintln(a.out, "Thinking...")
	reply := a.orchestrator.RequestCompletion(ctx, a.transcript)
	a.transcript = append(a.transcript, reply)

	fmt.Fprintf(a.out, "\n%s\n", reply.Content)
	return nil
}

// NewChat discards the current transcript and starts over.
func (a *App) NewChat(ctx context.Context) error {
	a.resetTranscript()
	fmt.Fprintln(a.out, "Started a new conversation")
	return nil
}
