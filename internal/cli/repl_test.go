package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Signup(ctx context.Context) error             { return s.record("signup") }
func (s *stubExec) Login(ctx context.Context) error              { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error             { return s.record("logout") }
func (s *stubExec) Ask(ctx context.Context) error                { return s.record("ask") }
func (s *stubExec) NewChat(ctx context.Context) error            { return s.record("new") }
func (s *stubExec) SaveConversation(ctx context.Context) error   { return s.record("save") }
func (s *stubExec) ListConversations(ctx context.Context) error  { return s.record("list") }
func (s *stubExec) OpenConversation(ctx context.Context) error   { return s.record("open") }
func (s *stubExec) DeleteConversation(ctx context.Context) error { return s.record("delete") }
func (s *stubExec) ExportConversation(ctx context.Context) error { return s.record("export") }
func (s *stubExec) ImportConversation(ctx context.Context) error { return s.record("import") }
func (s *stubExec) ReportIssue(ctx context.Context) error        { return s.record("report") }

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()

	var output []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if str, ok := a.(string); ok {
				output = append(output, str)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "test" }, scanner)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "signup\nlogin\nask\nsave\nlist\nl\nexport\nimport\nreport\nlogout\nexit\n")

	require.Equal(t,
		[]string{"signup", "login", "ask", "save", "list", "list", "export", "import", "report", "logout"},
		s.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "ask\n") // no exit command; scanner EOF ends the loop
	require.Equal(t, []string{"ask"}, s.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	s := &stubExec{}
	output := runScript(t, s, "frobnicate\nexit\n")

	assert.Empty(t, s.calls)
	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	s := &stubExec{loggedIn: false}
	out := strings.Join(runScript(t, s, "help\nexit\n"), "\n")
	assert.Contains(t, out, "signup, login")

	s = &stubExec{loggedIn: true}
	out = strings.Join(runScript(t, s, "help\nexit\n"), "\n")
	assert.Contains(t, out, "ask, new, save")
}

func TestRunREPL_BlankLinesAreIgnored(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "\n   \nask\nexit\n")
	require.Equal(t, []string{"ask"}, s.calls)
}
