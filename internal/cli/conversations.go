package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/wealthwise/internal/conversations"
)

// SaveConversation stores the current transcript under a user-chosen name.
func (a *App) SaveConversation(ctx context.Context) error {
	name, err := getText(a.reader, "Conversation name", a.out)
	if err != nil {
		return err
	}

	saved, err := a.conversations.Save(ctx, name, a.transcript)
	if err != nil {
		fmt.Fprintf(a.out, "Save failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Saved %q\n", saved.Name)
	return nil
}

// ListConversations prints the user's saved conversations, most recent first.
func (a *App) ListConversations(ctx context.Context) error {
	listed, err := a.conversations.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "List failed: %v\n", err)
		return err
	}

	if len(listed) == 0 {
		fmt.Fprintln(a.out, "No saved conversations")
		return nil
	}

	for i, c := range listed {
		fmt.Fprintf(a.out, "%d) %s — %d messages, %s\n",
			i+1, c.Name, len(c.Messages), c.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}

// OpenConversation loads a saved conversation into the transcript.
func (a *App) OpenConversation(ctx context.Context) error {
	c, err := a.pickConversation(ctx, "Open which conversation?")
	if err != nil {
		return err
	}

	a.transcript = c.Messages
	fmt.Fprintf(a.out, "Opened %q\n", c.Name)
	a.printTranscript()
	return nil
}

// DeleteConversation removes a saved conversation.
func (a *App) DeleteConversation(ctx context.Context) error {
	c, err := a.pickConversation(ctx, "Delete which conversation?")
	if err != nil {
		return err
	}

	if err := a.conversations.Delete(ctx, c.ID); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted %q\n", c.Name)
	return nil
}

// pickConversation lists saved conversations and prompts for a number.
func (a *App) pickConversation(ctx context.Context, prompt string) (*conversations.Conversation, error) {
	listed, err := a.conversations.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "List failed: %v\n", err)
		return nil, err
	}
	if len(listed) == 0 {
		fmt.Fprintln(a.out, "No saved conversations")
		return nil, fmt.Errorf("no saved conversations")
	}

	for i, c := range listed {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, c.Name)
	}

	answer, err := getText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(listed) {
		fmt.Fprintln(a.out, "Not a valid number")
		return nil, fmt.Errorf("invalid selection %q", answer)
	}

	return &listed[n-1], nil
}
