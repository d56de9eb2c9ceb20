// Package theme persists the display settings blob. The core only stores
// and round-trips it; all theming behavior lives in the presentation layer.
package theme

import (
	"context"
	"strconv"

	"github.com/loanmo/crm/internal/logging"
	"github.com/loanmo/crm/internal/models"
	"github.com/loanmo/crm/internal/repositories/kv"
)

// Persisted keys hold the strings "true"/"false", as the browser app did.
const (
	keyDarkMode    = "darkMode"
	keyCompactMode = "compactMode"
)

// Store holds the current theme settings and mirrors them into the
// key-value store best-effort: a failed write keeps the in-memory value
// and logs a warning.
type Store struct {
	kv  kv.Repository
	log logging.Logger

	settings models.ThemeSettings
}

func New(repo kv.Repository, log logging.Logger) *Store {
	return &Store{kv: repo, log: log}
}

// Load reads the persisted flags. Absent or unparseable values default to
// false, matching a first run.
func (s *Store) Load(ctx context.Context) models.ThemeSettings {
	s.settings = models.ThemeSettings{
		DarkMode:    s.readBool(ctx, keyDarkMode),
		CompactMode: s.readBool(ctx, keyCompactMode),
	}
	return s.settings
}

// Current returns the settings as last loaded or updated.
func (s *Store) Current() models.ThemeSettings {
	return s.settings
}

// ToggleDarkMode flips the dark-mode flag and persists it.
func (s *Store) ToggleDarkMode(ctx context.Context) models.ThemeSettings {
	s.settings.DarkMode = !s.settings.DarkMode
	s.writeBool(ctx, keyDarkMode, s.settings.DarkMode)
	return s.settings
}

// ToggleCompactMode flips the compact-mode flag and persists it.
func (s *Store) ToggleCompactMode(ctx context.Context) models.ThemeSettings {
	s.settings.CompactMode = !s.settings.CompactMode
	s.writeBool(ctx, keyCompactMode, s.settings.CompactMode)
	return s.settings
}

// Update replaces both flags and persists them.
func (s *Store) Update(ctx context.Context, settings models.ThemeSettings) models.ThemeSettings {
	s.settings = settings
	s.writeBool(ctx, keyDarkMode, settings.DarkMode)
	s.writeBool(ctx, keyCompactMode, settings.CompactMode)
	return s.settings
}

func (s *Store) readBool(ctx context.Context, key string) bool {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "theme flag not readable", "key", key, "error", err)
		return false
	}
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return false
	}
	return v
}

func (s *Store) writeBool(ctx context.Context, key string, v bool) {
	if err := s.kv.Set(ctx, key, []byte(strconv.FormatBool(v))); err != nil {
		s.log.Warn(ctx, "theme flag not persisted", "key", key, "error", err)
	}
}
