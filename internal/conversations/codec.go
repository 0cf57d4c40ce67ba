package conversations

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/common"
)

// importedNameSuffix marks a conversation's provenance after import.
const importedNameSuffix = " (Imported)"

// Encode serializes a conversation into an opaque printable transfer code
// (base64 over canonical JSON). Encoding is deterministic for identical
// input and round-trips exactly through Decode.
func Encode(c *Conversation) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("conversation encode error: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reverses Encode and re-binds the conversation to the importing
// user: the id, timestamp, and owner are rewritten and the name gains an
// "(Imported)" marker. The rewrite is what keeps the per-user namespace
// invariant intact when a code crosses accounts.
//
// Any string not produced by Encode, and any payload missing a name or
// messages, fails with common.ErrCorruptCode.
func Decode(code string, importer *accounts.User) (*Conversation, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptCode, err)
	}

	conversation := &Conversation{}
	if err := json.Unmarshal(data, conversation); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptCode, err)
	}
	if strings.TrimSpace(conversation.Name) == "" || conversation.Messages == nil {
		return nil, fmt.Errorf("%w: missing name or messages", common.ErrCorruptCode)
	}

	conversation.ID = uuid.NewString()
	conversation.Timestamp = time.Now()
	conversation.Name += importedNameSuffix
	conversation.UserEmail = importer.Email
	return conversation, nil
}
