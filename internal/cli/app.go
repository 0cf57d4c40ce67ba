package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/assistant"
	"github.com/dmitrijs2005/wealthwise/internal/conversations"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

// App holds the client's state: the authenticated user, the in-memory
// transcript, and the services behind each REPL command.
//
// The REPL is sequential, which is what enforces the one-request-in-flight
// rule: the next user turn cannot be typed while a completion is pending.
type App struct {
	accounts      *accounts.Manager
	conversations *conversations.Store
	orchestrator  *assistant.Orchestrator
	log           logging.Logger

	reader *bufio.Reader
	out    io.Writer

	user       *accounts.User
	transcript []conversations.Message
}

func NewApp(
	manager *accounts.Manager,
	store *conversations.Store,
	orchestrator *assistant.Orchestrator,
	log logging.Logger,
) *App {
	a := &App{
		accounts:      manager,
		conversations: store,
		orchestrator:  orchestrator,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}
	a.resetTranscript()
	return a
}

// Run restores any stored session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// restoreSession picks up the session pointer left by a previous run.
// Failure to read the pointer only means starting logged out.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.accounts.CurrentSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if user != nil {
		a.user = user
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.Email)
	}
}

// resetTranscript starts a fresh conversation seeded with the greeting.
func (a *App) resetTranscript() {
	a.transcript = []conversations.Message{
		{Role: conversations.RoleAssistant, Content: assistant.Greeting},
	}
}

func (a *App) printTranscript() {
	for _, m := range a.transcript {
		fmt.Fprintf(a.out, "\n[%s] %s\n", m.Role, m.Content)
	}
}
