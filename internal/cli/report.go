package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wealthwise/internal/report"
)

// ReportIssue composes an issue-report mail link from the user's email and a
// free-text description, and prints it for the user to open.
func (a *App) ReportIssue(ctx context.Context) error {
	email := ""
	if a.user != nil {
		email = a.user.Email
	}
	if email == "" {
		var err error
		email, err = getText(a.reader, "Your email", a.out)
		if err != nil {
			return err
		}
	}

	message, err := getMultiline(a.reader, "Describe the issue", a.out)
	if err != nil {
		return err
	}

	link, err := report.BuildMailto(email, message)
	if err != nil {
		fmt.Fprintf(a.out, "Report failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Open this link to send your report:\n\n%s\n", link)
	return nil
}
