package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  Q3 review  \n"))

	got, err := getText(reader, "Conversation name", &out)
	require.NoError(t, err)
	require.Equal(t, "Q3 review", got)
	require.Contains(t, out.String(), "Conversation name")
}

func TestGetText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := getText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := getMultiline(reader, "Describe the issue", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := getPassword("Password", &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Contains(t, out.String(), "Password: ")
}
