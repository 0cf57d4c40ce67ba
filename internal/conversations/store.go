package conversations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/wealthwise/internal/accounts"
	"github.com/dmitrijs2005/wealthwise/internal/common"
	"github.com/dmitrijs2005/wealthwise/internal/kv"
	"github.com/dmitrijs2005/wealthwise/internal/logging"
)

// SessionSource resolves the currently authenticated user. accounts.Manager
// satisfies it; tests can provide a stub.
type SessionSource interface {
	CurrentSession(ctx context.Context) (*accounts.User, error)
}

// Store persists conversations, scoped to the current session's email. Every
// operation fails with common.ErrNoSession when nobody is logged in.
type Store struct {
	kv      kv.Store
	session SessionSource
	log     logging.Logger
}

func NewStore(kvStore kv.Store, session SessionSource, log logging.Logger) *Store {
	return &Store{kv: kvStore, session: session, log: log}
}

func conversationKey(email, id string) string {
	return conversationPrefix(email) + id
}

func conversationPrefix(email string) string {
	return fmt.Sprintf("conversation:%s:", email)
}

func (s *Store) owner(ctx context.Context) (*accounts.User, error) {
	user, err := s.session.CurrentSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("session resolution error: %w", err)
	}
	if user == nil {
		return nil, common.ErrNoSession
	}
	return user, nil
}

// Save persists a new conversation under the current user's namespace and
// returns the stored record. A name is required, and the transcript must
// contain something beyond the seed greeting.
func (s *Store) Save(ctx context.Context, name string, messages []Message) (*Conversation, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: conversation name is required", common.ErrValidation)
	}
	if len(messages) <= 1 {
		return nil, fmt.Errorf("%w: nothing to save yet", common.ErrValidation)
	}

	conversation := NewConversation(name, messages, owner.Email)
	if err := s.put(ctx, conversation); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "conversation saved", "id", conversation.ID, "name", conversation.Name)
	return conversation, nil
}

// List returns the current user's conversations, most recent first. Records
// that fail to load or decode are skipped: one corrupt record must not take
// down the whole listing.
func (s *Store) List(ctx context.Context) ([]Conversation, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	keys, err := s.kv.List(ctx, conversationPrefix(owner.Email))
	if err != nil {
		return nil, fmt.Errorf("conversation list error: %w", err)
	}

	conversations := make([]Conversation, 0, len(keys))
	for _, key := range keys {
		data, err := s.kv.Get(ctx, key)
		if err != nil {
			s.log.Warn(ctx, "skipping unreadable conversation record", "key", key, "error", err)
			continue
		}

		var c Conversation
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			s.log.Warn(ctx, "skipping corrupt conversation record", "key", key, "error", err)
			continue
		}
		if c.UserEmail != owner.Email {
			s.log.Warn(ctx, "skipping mis-owned conversation record", "key", key, "owner", c.UserEmail)
			continue
		}
		conversations = append(conversations, c)
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].Timestamp.After(conversations[j].Timestamp)
	})
	return conversations, nil
}

// Load fetches one conversation by id within the current user's namespace.
func (s *Store) Load(ctx context.Context, id string) (*Conversation, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.kv.Get(ctx, conversationKey(owner.Email, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("conversation load error: %w", err)
	}

	conversation := &Conversation{}
	if err := json.Unmarshal([]byte(data), conversation); err != nil {
		return nil, fmt.Errorf("%w: corrupt conversation record", common.ErrInternal)
	}
	// The namespace invariant: a record read back must belong to the
	// namespace it was stored under.
	if conversation.UserEmail != owner.Email {
		return nil, common.ErrNotFound
	}
	return conversation, nil
}

// Delete removes a conversation. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	owner, err := s.owner(ctx)
	if err != nil {
		return err
	}

	if err := s.kv.Delete(ctx, conversationKey(owner.Email, id)); err != nil {
		return fmt.Errorf("conversation delete error: %w", err)
	}

	s.log.Info(ctx, "conversation deleted", "id", id)
	return nil
}

// Import decodes a transfer code, re-binds the conversation to the current
// user, and persists it as a fresh record.
func (s *Store) Import(ctx context.Context, code string) (*Conversation, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	conversation, err := Decode(code, owner)
	if err != nil {
		return nil, err
	}
	if err := s.put(ctx, conversation); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "conversation imported", "id", conversation.ID, "name", conversation.Name)
	return conversation, nil
}

func (s *Store) put(ctx context.Context, c *Conversation) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("conversation encode error: %w", err)
	}
	if err := s.kv.Set(ctx, conversationKey(c.UserEmail, c.ID), string(data)); err != nil {
		return fmt.Errorf("conversation save error: %w", err)
	}
	return nil
}
