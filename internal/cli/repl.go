package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ask(ctx context.Context) error
	NewChat(ctx context.Context) error
	SaveConversation(ctx context.Context) error
	ListConversations(ctx context.Context) error
	OpenConversation(ctx context.Context) error
	DeleteConversation(ctx context.Context) error
	ExportConversation(ctx context.Context) error
	ImportConversation(ctx context.Context) error
	ReportIssue(ctx context.Context) error
}

// Root wires the REPL to stdin and a status line showing the current user.
func (a *App) Root(ctx context.Context) {
	statusFn := func() string {
		if a.user != nil {
			return a.user.Email
		}
		return "guest"
	}
	runREPL(ctx, a, statusFn, bufio.NewScanner(os.Stdin))
}

// runREPL starts a read–eval–print loop for the WealthWise CLI.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF, context cancellation, or "exit"/"quit".
//
// Command handlers report their own failures; errors are ignored here to
// keep the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ww> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ask, new, save, (l)ist, open, delete, export, import, report, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, report, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "new":
			_ = a.NewChat(ctx)

		case "save":
			_ = a.SaveConversation(ctx)

		case "l", "list":
			_ = a.ListConversations(ctx)

		case "open":
			_ = a.OpenConversation(ctx)

		case "delete":
			_ = a.DeleteConversation(ctx)

		case "export":
			_ = a.ExportConversation(ctx)

		case "import":
			_ = a.ImportConversation(ctx)

		case "report":
			_ = a.ReportIssue(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (try \"help\")", cmd))
		}
	}
}
