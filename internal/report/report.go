// Package report composes the issue-report mail link. Reports go to a fixed
// recipient with a fixed subject; the body carries the reporter's email and
// their free-text message.
package report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/wealthwise/internal/common"
)

const (
	recipient = "haripraveer111@gmail.com"
	subject   = "WealthWise AI - Issue Report"
)

// BuildMailto returns a mailto: URL for an issue report. Both the reporter
// email and the message are required.
func BuildMailto(fromEmail, message string) (string, error) {
	fromEmail = strings.TrimSpace(fromEmail)
	message = strings.TrimSpace(message)
	if fromEmail == "" || message == "" {
		return "", fmt.Errorf("%w: email and message are required", common.ErrValidation)
	}

	body := fmt.Sprintf("From: %s\n\n%s", fromEmail, message)

	query := url.Values{}
	query.Set("subject", subject)
	query.Set("body", body)

	return fmt.Sprintf("mailto:%s?%s", recipient, query.Encode()), nil
}
