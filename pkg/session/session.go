// Package session holds the client-side source of truth for "who is
// logged in", persisted across restarts through a Storage
// implementation and restored by a one-time hydrate step.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Snapshot is an immutable view of the session at a point in time.
// Authenticated holds exactly when both the user and token are present.
// Hydrated flips to true after the first read of durable storage and
// never flips back; route guards must not redirect before then.
type Snapshot struct {
	User          *User
	Token         string
	Authenticated bool
	Hydrated      bool
}

// Store owns the current Snapshot and the transitions between
// snapshots. All methods are safe for concurrent use; each returns the
// snapshot the store holds after the transition.
type Store struct {
	mu      sync.Mutex
	api     API
	storage Storage
	log     zerolog.Logger
	snap    Snapshot
}

func NewStore(api API, storage Storage, log zerolog.Logger) *Store {
	return &Store{api: api, storage: storage, log: log}
}

// Current returns the snapshot as of the last transition.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Token returns the current bearer token, or "" when logged out.
// Intended as a gateway token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Token
}

// Hydrate restores the persisted session. It runs at most once: later
// calls return the current snapshot unchanged. Absent or corrupt
// storage means "no session", never an error.
func (s *Store) Hydrate() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Hydrated {
		return s.snap
	}

	creds := s.readStored()
	if creds != nil {
		s.snap = Snapshot{
			User:          creds.User,
			Token:         creds.Token,
			Authenticated: true,
			Hydrated:      true,
		}
		return s.snap
	}

	s.snap = Snapshot{Hydrated: true}
	return s.snap
}

// Login authenticates against the API and persists the result. Storage
// and in-memory state change together: if persisting fails, the prior
// snapshot is retained and the error returned.
func (s *Store) Login(ctx context.Context, email, password string) (Snapshot, error) {
	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		return s.Current(), err
	}
	return s.commit(creds)
}

// Register creates an account and establishes a session, with the same
// atomicity contract as Login. The ADMIN check duplicates the server's;
// it exists so a bad payload never leaves the client.
func (s *Store) Register(ctx context.Context, payload RegisterPayload) (Snapshot, error) {
	if payload.Role == RoleAdmin {
		return s.Current(), ErrRoleNotAllowed
	}

	creds, err := s.api.Register(ctx, payload)
	if err != nil {
		return s.Current(), err
	}
	return s.commit(creds)
}

// Logout clears the session unconditionally. The server-side revocation
// is best effort: a dead network must never leave the client logged in.
func (s *Store) Logout(ctx context.Context) Snapshot {
	s.mu.Lock()
	token := s.snap.Token
	s.mu.Unlock()

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("server-side logout failed")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clearing stored session failed")
	}
	s.snap = Snapshot{Hydrated: s.snap.Hydrated}
	return s.snap
}

func (s *Store) commit(creds *Credentials) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(creds)
	if err != nil {
		return s.snap, err
	}
	if err := s.storage.Save(data); err != nil {
		return s.snap, err
	}

	s.snap = Snapshot{
		User:          creds.User,
		Token:         creds.Token,
		Authenticated: true,
		Hydrated:      true,
	}
	return s.snap, nil
}

// readStored decodes the persisted credentials, treating every failure
// mode as "nothing stored".
func (s *Store) readStored() *Credentials {
	data, err := s.storage.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("reading stored session failed")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.log.Warn().Err(err).Msg("stored session is corrupt")
		return nil
	}
	if creds.User == nil || creds.Token == "" {
		return nil
	}
	return &creds
}
