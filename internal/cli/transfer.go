package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wealthwise/internal/conversations"
)

// ExportConversation prints the portable transfer code for a saved
// conversation. The code is the entire sharing surface: whoever imports it
// gets a copy re-bound to their own account.
func (a *App) ExportConversation(ctx context.Context) error {
	c, err := a.pickConversation(ctx, "Export which conversation?")
	if err != nil {
		return err
	}

	code, err := conversations.Encode(c)
	if err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Transfer code for %q:\n\n%s\n", c.Name, code)
	return nil
}

// ImportConversation reads a transfer code and saves the conversation under
// the current account.
func (a *App) ImportConversation(ctx context.Context) error {
	code, err := getText(a.reader, "Paste the transfer code", a.out)
	if err != nil {
		return err
	}

	imported, err := a.conversations.Import(ctx, code)
	if err != nil {
		fmt.Fprintf(a.out, "Import failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Imported %q\n", imported.Name)
	return nil
}
