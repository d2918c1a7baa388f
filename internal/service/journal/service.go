// Package journal persists mood check-ins in the key-value store,
// keyed by user and timestamp.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindmate-ai/backend/internal/kv"
	"github.com/mindmate-ai/backend/internal/model/mood"
)

var ErrMoodRequired = errors.New("mood is required")

// defaultUserID stands in when a save request names no user; the
// service assumes a single fixed pseudo-identity.
const defaultUserID = "guest"

// keyTimeLayout renders the timestamp at millisecond precision in UTC.
// Fixed-width ISO-8601 keys sort lexicographically in chronological
// order, which history retrieval relies on. Two saves for the same
// user within the same millisecond produce the same key and overwrite.
const keyTimeLayout = "2006-01-02T15:04:05.000Z"

// Service stores and retrieves mood entries.
type Service struct {
	store kv.Store
	clock func() time.Time
}

// NewService creates a journal over the supplied store.
func NewService(store kv.Store) *Service {
	return &Service{store: store, clock: time.Now}
}

// Save validates and persists one mood check-in with the current
// instant. Validation happens before any write is attempted.
func (s *Service) Save(ctx context.Context, userID, moodValue, note string) error {
	if strings.TrimSpace(moodValue) == "" {
		return ErrMoodRequired
	}
	if userID == "" {
		userID = defaultUserID
	}

	now := s.clock().UTC().Truncate(time.Millisecond)
	entry := mood.Entry{
		UserID:    userID,
		Mood:      moodValue,
		Note:      note,
		Timestamp: now,
	}

	key := entryKey(userID, now)
	if err := s.store.Set(ctx, key, entry); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("mood write failed")
		return fmt.Errorf("save mood: %w", err)
	}
	return nil
}

// History returns the user's mood entries sorted newest first. The
// sort is applied here regardless of any ordering the store provides.
// A user with no entries gets an empty slice, not an error.
func (s *Service) History(ctx context.Context, userID string) ([]mood.Entry, error) {
	if userID == "" {
		userID = defaultUserID
	}

	docs, err := s.store.GetByPrefix(ctx, userPrefix(userID))
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("mood scan failed")
		return nil, fmt.Errorf("fetch mood history: %w", err)
	}

	entries := make([]mood.Entry, 0, len(docs))
	for _, doc := range docs {
		var entry mood.Entry
		if err := json.Unmarshal(doc, &entry); err != nil {
			return nil, fmt.Errorf("decode mood entry: %w", err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func userPrefix(userID string) string {
	return "mood:" + userID + ":"
}

func entryKey(userID string, ts time.Time) string {
	return userPrefix(userID) + ts.Format(keyTimeLayout)
}
