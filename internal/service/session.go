package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
)

// SessionStore persists per-user session state as string-keyed JSON blobs in
// Redis. Writes are best-effort: failures are logged and swallowed, because
// the in-memory model stays authoritative for the session. Loads tolerate
// missing or malformed data and report ok=false instead of failing.
type SessionStore struct {
	rdb *redis.Client
}

// NewSessionStore creates a session store. A nil client disables persistence,
// which unit tests rely on.
func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func profileKey(userID uuid.UUID) string { return fmt.Sprintf("dalilscan:%s:profile", userID) }
func logKey(userID uuid.UUID) string     { return fmt.Sprintf("dalilscan:%s:log", userID) }
func authKey(userID uuid.UUID) string    { return fmt.Sprintf("dalilscan:%s:auth", userID) }
func langKey(userID uuid.UUID) string    { return fmt.Sprintf("dalilscan:%s:lang", userID) }

// SaveProfile writes the profile blob through to Redis.
func (s *SessionStore) SaveProfile(ctx context.Context, userID uuid.UUID, profile models.Profile) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		log.Printf("[SessionStore] Failed to marshal profile for %s: %v", userID, err)
		return
	}
	if err := s.rdb.Set(ctx, profileKey(userID), data, 0).Err(); err != nil {
		log.Printf("[SessionStore] Failed to persist profile for %s: %v", userID, err)
	}
}

// LoadProfile reads the profile blob back. Malformed data falls back to
// ok=false so the caller starts from a default profile.
func (s *SessionStore) LoadProfile(ctx context.Context, userID uuid.UUID) (models.Profile, bool) {
	var profile models.Profile
	if s.rdb == nil {
		return profile, false
	}
	data, err := s.rdb.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[SessionStore] Failed to load profile for %s: %v", userID, err)
		}
		return profile, false
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("[SessionStore] Malformed stored profile for %s, using defaults: %v", userID, err)
		return models.Profile{}, false
	}
	return profile, true
}

// SaveLog writes the full entry log through to Redis.
func (s *SessionStore) SaveLog(ctx context.Context, userID uuid.UUID, entries models.EntryList) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("[SessionStore] Failed to marshal log for %s: %v", userID, err)
		return
	}
	if err := s.rdb.Set(ctx, logKey(userID), data, 0).Err(); err != nil {
		log.Printf("[SessionStore] Failed to persist log for %s: %v", userID, err)
	}
}

// LoadLog reads the entry log back. Malformed data falls back to an empty log.
func (s *SessionStore) LoadLog(ctx context.Context, userID uuid.UUID) (models.EntryList, bool) {
	if s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, logKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[SessionStore] Failed to load log for %s: %v", userID, err)
		}
		return nil, false
	}
	var entries models.EntryList
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[SessionStore] Malformed stored log for %s, starting empty: %v", userID, err)
		return nil, false
	}
	return entries, true
}

// SetAuthenticated records the boolean-as-string auth flag.
func (s *SessionStore) SetAuthenticated(ctx context.Context, userID uuid.UUID, authenticated bool) {
	if s.rdb == nil {
		return
	}
	value := "false"
	if authenticated {
		value = "true"
	}
	if err := s.rdb.Set(ctx, authKey(userID), value, 0).Err(); err != nil {
		log.Printf("[SessionStore] Failed to persist auth flag for %s: %v", userID, err)
	}
}

// SetLanguage records the user's two-letter UI language code.
func (s *SessionStore) SetLanguage(ctx context.Context, userID uuid.UUID, code string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Set(ctx, langKey(userID), code, 0).Err(); err != nil {
		log.Printf("[SessionStore] Failed to persist language for %s: %v", userID, err)
	}
}

// Language returns the stored language code, or empty when unset.
func (s *SessionStore) Language(ctx context.Context, userID uuid.UUID) string {
	if s.rdb == nil {
		return ""
	}
	code, err := s.rdb.Get(ctx, langKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[SessionStore] Failed to load language for %s: %v", userID, err)
		}
		return ""
	}
	return code
}

// Clear removes all session keys for the user. The auth flag goes last so a
// partial failure never leaves an authenticated flag over wiped data.
func (s *SessionStore) Clear(ctx context.Context, userID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, profileKey(userID), logKey(userID), langKey(userID)).Err(); err != nil {
		log.Printf("[SessionStore] Failed to clear session data for %s: %v", userID, err)
	}
	if err := s.rdb.Del(ctx, authKey(userID)).Err(); err != nil {
		log.Printf("[SessionStore] Failed to clear auth flag for %s: %v", userID, err)
	}
}
