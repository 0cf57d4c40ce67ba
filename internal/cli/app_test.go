package cli

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/assistant"
	"github.com/dmitrijs2005/wealthwise/internal/conversations"
	"github.com/dmitrijs2005/wealthwise/internal/kv"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

// fakeCompletion answers every request with a fixed reply.
type fakeCompletion struct {
	reply string
}

func (f *fakeCompletion) Complete(ctx context.Context, r *assistant.CompletionRequest) (*assistant.CompletionResponse, error) {
	return &assistant.CompletionResponse{
		Content: []assistant.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.NewDefault(slog.LevelError + 1)
	store := kv.NewMemoryStore()
	manager := accounts.NewManager(store, log, []byte("test-secret"), time.Hour)
	convs := conversations.NewStore(store, manager, log)
	orch := assistant.NewOrchestrator(&fakeCompletion{reply: "Markets are calm today."}, log)

	a := NewApp(manager, convs, orch, log)
	var out bytes.Buffer
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.out = &out

	origReadPassword := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("p1"), nil }
	t.Cleanup(func() { readPassword = origReadPassword })

	return a, &out
}

func TestApp_SignupAskSaveListDelete(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, strings.Join([]string{
		"a@x.com",     // signup email
		"how's AAPL?", // ask
		"Q3 review",   // save name
		"1",           // delete selection
	}, "\n")+"\n")

	require.NoError(t, a.Signup(ctx))
	require.True(t, a.isLoggedIn())
	require.Len(t, a.transcript, 1) // fresh transcript with greeting

	require.NoError(t, a.Ask(ctx))
	require.Len(t, a.transcript, 3)
	require.Contains(t, out.String(), "Markets are calm today.")

	require.NoError(t, a.SaveConversation(ctx))
	require.Contains(t, out.String(), `Saved "Q3 review"`)

	require.NoError(t, a.ListConversations(ctx))
	require.Contains(t, out.String(), "Q3 review")

	require.NoError(t, a.DeleteConversation(ctx))
	require.Contains(t, out.String(), `Deleted "Q3 review"`)
}

func TestApp_SaveWithOnlyGreetingIsRejected(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, "a@x.com\nQ3 review\n")

	require.NoError(t, a.Signup(ctx))
	require.Error(t, a.SaveConversation(ctx))
}

func TestApp_LogoutResetsTranscript(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, "a@x.com\nhello there\n")

	require.NoError(t, a.Signup(ctx))
	require.NoError(t, a.Ask(ctx))
	require.Len(t, a.transcript, 3)

	require.NoError(t, a.Logout(ctx))
	require.False(t, a.isLoggedIn())
	require.Len(t, a.transcript, 1)
	require.Equal(t, assistant.Greeting, a.transcript[0].Content)
}
