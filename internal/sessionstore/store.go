// Package sessionstore owns the durable account list and the single active
// session. State lives in memory and is mirrored into an injected key-value
// store so it survives restarts; a failed write never rolls back an
// otherwise successful in-memory transition, it is only reported through
// the logger.
package sessionstore

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/loanmo/crm/internal/common"
	"github.com/loanmo/crm/internal/logging"
	"github.com/loanmo/crm/internal/models"
	"github.com/loanmo/crm/internal/repositories/kv"
)

// Persisted key layout, mirroring the browser app's localStorage.
const (
	keyUsers   = "users"
	keySession = "user"
)

// Default admin account seeded by BootstrapDefaultAdmin.
const (
	DefaultAdminEmail    = "admin@loanmo.com"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Admin User"
)

const minPasswordLen = 6

// emailPattern is a basic local@domain.tld shape check, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProfileUpdate carries the fields UpdateProfile may change. Nil means
// leave unchanged. Role is deliberately not updatable.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// Store manages registered accounts and the active session.
//
// All mutating operations run synchronously on the calling goroutine; the
// store performs no background work and needs no locking under the
// single-caller contract.
type Store struct {
	kv  kv.Repository
	log logging.Logger

	accounts []models.Account
	session  *models.Session
	loaded   bool

	// now is a test seam for account timestamps.
	now func() time.Time
}

// New constructs a Store over the given persistence capability.
func New(repo kv.Repository, log logging.Logger) *Store {
	return &Store{kv: repo, log: log, now: time.Now}
}

// ensureLoaded reads the persisted account list on first use. A read or
// decode failure is demoted to a warning and an empty list: from that point
// the in-memory state is authoritative for the process lifetime.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := s.kv.Get(ctx, keyUsers)
	if err != nil {
		s.log.Warn(ctx, "account list not readable, starting empty", "key", keyUsers, "error", err)
		return
	}
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, &s.accounts); err != nil {
		s.log.Warn(ctx, "account list corrupt, starting empty", "key", keyUsers, "error", err)
		s.accounts = nil
	}
}

// BootstrapDefaultAdmin seeds the default admin account unless one with
// that email already exists. Safe to call on every startup.
func (s *Store) BootstrapDefaultAdmin(ctx context.Context) {
	s.ensureLoaded(ctx)

	if s.findAccount(DefaultAdminEmail) != nil {
		return
	}

	s.accounts = append(s.accounts, models.Account{
		Name:      defaultAdminName,
		Email:     DefaultAdminEmail,
		Password:  defaultAdminPassword,
		Role:      models.RoleAdmin,
		CreatedAt: s.now().UTC(),
	})
	s.persistUsers(ctx)
}

// Register validates the form and appends a new user account. The new user
// is not logged in. The duplicate-email check is case-sensitive byte
// equality, matching the source system's behavior.
func (s *Store) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	s.ensureLoaded(ctx)

	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return &common.ValidationError{Field: "form", Reason: "all fields are required"}
	}
	if password != confirmPassword {
		return &common.ValidationError{Field: "confirmPassword", Reason: "passwords do not match"}
	}
	if len(password) < minPasswordLen {
		return &common.ValidationError{Field: "password", Reason: "password must be at least 6 characters long"}
	}
	if !emailPattern.MatchString(email) {
		return &common.ValidationError{Field: "email", Reason: "invalid email address"}
	}
	if s.findAccount(email) != nil {
		return common.ErrDuplicateEmail
	}

	s.accounts = append(s.accounts, models.Account{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      models.RoleUser,
		CreatedAt: s.now().UTC(),
	})
	s.persistUsers(ctx)
	return nil
}

// Login authenticates by email and exact password match and establishes
// the active session. Unknown email and wrong password are distinct
// failures so the form can show a specific message.
func (s *Store) Login(ctx context.Context, email, password string) (models.Session, error) {
	s.ensureLoaded(ctx)

	acc := s.findAccount(email)
	if acc == nil {
		return models.Session{}, common.ErrUserNotFound
	}
	if acc.Password != password {
		return models.Session{}, common.ErrInvalidPassword
	}

	sess := models.SessionOf(*acc)
	s.session = &sess
	s.persistSession(ctx)
	return sess, nil
}

// Logout clears the active session and its persisted encoding. Calling it
// while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.session = nil
	if err := s.kv.Delete(ctx, keySession); err != nil {
		s.log.Warn(ctx, "persisted session not cleared", "key", keySession, "error", err)
	}
}

// RestoreSession revalidates any persisted session at startup. A session
// whose account no longer exists (or that fails to decode) is silently
// demoted to logged-out and its stale key removed; that is expected state
// drift, not an error.
func (s *Store) RestoreSession(ctx context.Context) *models.Session {
	s.ensureLoaded(ctx)

	data, err := s.kv.Get(ctx, keySession)
	if err != nil {
		s.log.Warn(ctx, "persisted session not readable", "key", keySession, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(ctx, "persisted session corrupt, clearing", "key", keySession, "error", err)
		s.clearStaleSession(ctx)
		return nil
	}

	if s.findAccount(sess.Email) == nil {
		s.clearStaleSession(ctx)
		return nil
	}

	s.session = &sess
	out := sess
	return &out
}

// UpdateProfile merges the given fields into the active session and its
// backing account, then re-persists both in one write.
func (s *Store) UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.Session, error) {
	s.ensureLoaded(ctx)

	if s.session == nil {
		return models.Session{}, common.ErrNoActiveSession
	}

	acc := s.findAccount(s.session.Email)
	if upd.Name != nil {
		s.session.Name = *upd.Name
		if acc != nil {
			acc.Name = *upd.Name
		}
	}
	if upd.Email != nil {
		s.session.Email = *upd.Email
		if acc != nil {
			acc.Email = *upd.Email
		}
	}

	usersData, err := json.Marshal(s.accounts)
	if err != nil {
		s.log.Warn(ctx, "account list not encodable", "key", keyUsers, "error", err)
		return *s.session, nil
	}
	sessData, err := json.Marshal(s.session)
	if err != nil {
		s.log.Warn(ctx, "session not encodable", "key", keySession, "error", err)
		return *s.session, nil
	}
	if err := s.kv.SetAll(ctx, map[string][]byte{
		keyUsers:   usersData,
		keySession: sessData,
	}); err != nil {
		s.log.Warn(ctx, "profile update not persisted", "error", err)
	}
	return *s.session, nil
}

// CurrentSession returns the active session, or nil when logged out. The
// presentation layer polls this instead of subscribing to changes.
func (s *Store) CurrentSession() *models.Session {
	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

func (s *Store) findAccount(email string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Store) clearStaleSession(ctx context.Context) {
	if err := s.kv.Delete(ctx, keySession); err != nil {
		s.log.Warn(ctx, "stale session not cleared", "key", keySession, "error", err)
	}
}

func (s *Store) persistUsers(ctx context.Context) {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		s.log.Warn(ctx, "account list not encodable", "key", keyUsers, "error", err)
		return
	}
	if err := s.kv.Set(ctx, keyUsers, data); err != nil {
		s.log.Warn(ctx, "account list not persisted", "key", keyUsers, "error", err)
	}
}

func (s *Store) persistSession(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		s.log.Warn(ctx, "session not encodable", "key", keySession, "error", err)
		return
	}
	if err := s.kv.Set(ctx, keySession, data); err != nil {
		s.log.Warn(ctx, "session not persisted", "key", keySession, "error", err)
	}
}
