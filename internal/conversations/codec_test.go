package conversations

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/common"
)

func TestEncode_IsDeterministic(t *testing.T) {
	c := NewConversation("Q3 review", testMessages(), "a@x.com")

	first, err := Encode(c)
	require.NoError(t, err)
	second, err := Encode(c)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRoundTrip_PreservesContentRewritesIdentity(t *testing.T) {
	original := NewConversation("Q3 review", testMessages(), "exporter@x.com")
	importer := &accounts.User{Email: "importer@x.com"}

	code, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(code, importer)
	require.NoError(t, err)

	// Content survives exactly.
	require.Equal(t, original.Messages, decoded.Messages)
	require.Equal(t, "Q3 review (Imported)", decoded.Name)

	// Identity is intentionally rewritten.
	require.NotEqual(t, original.ID, decoded.ID)
	require.Equal(t, "importer@x.com", decoded.UserEmail)
	require.True(t, decoded.Timestamp.After(original.Timestamp) || decoded.Timestamp.Equal(original.Timestamp))
}

func TestDecode_TrimsSurroundingWhitespace(t *testing.T) {
	code, err := Encode(NewConversation("n", testMessages(), "a@x.com"))
	require.NoError(t, err)

	decoded, err := Decode("  "+code+"\n", &accounts.User{Email: "b@x.com"})
	require.NoError(t, err)
	require.Equal(t, "n (Imported)", decoded.Name)
}

func TestDecode_CorruptCodes(t *testing.T) {
	importer := &accounts.User{Email: "importer@x.com"}

	tests := []struct {
		name string
		code string
	}{
		{"not base64", "%%% not base64 %%%"},
		{"base64 of junk", base64.StdEncoding.EncodeToString([]byte("{broken"))},
		{"missing name", base64.StdEncoding.EncodeToString([]byte(`{"messages":[]}`))},
		{"missing messages", base64.StdEncoding.EncodeToString([]byte(`{"name":"x"}`))},
		{"empty string", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.code, importer)
			require.ErrorIs(t, err, common.ErrCorruptCode)
		})
	}
}

func TestDecode_EmptyMessageListIsValid(t *testing.T) {
	// The store treats an empty (non-nil) transcript as valid, just unusual.
	payload := base64.StdEncoding.EncodeToString([]byte(`{"name":"x","messages":[]}`))

	decoded, err := Decode(payload, &accounts.User{Email: "i@x.com"})
	require.NoError(t, err)
	require.NotNil(t, decoded.Messages)
	require.Empty(t, decoded.Messages)
}
