package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanmo/crm/internal/logging"
	"github.com/loanmo/crm/internal/models"
)

type fakeKV struct {
	data   map[string][]byte
	GetErr error
	SetErr error
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string][]byte{}} }

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.data[key], nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) SetAll(ctx context.Context, values map[string][]byte) error {
	for k, v := range values {
		if err := f.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

func TestLoad_DefaultsToFalseOnFirstRun(t *testing.T) {
	s := New(newFakeKV(), nopLogger{})

	got := s.Load(context.Background())
	assert.Equal(t, models.ThemeSettings{}, got)
}

func TestToggle_PersistsStringBooleans(t *testing.T) {
	fkv := newFakeKV()
	s := New(fkv, nopLogger{})
	ctx := context.Background()
	s.Load(ctx)

	got := s.ToggleDarkMode(ctx)
	assert.True(t, got.DarkMode)
	assert.Equal(t, []byte("true"), fkv.data["darkMode"])

	got = s.ToggleDarkMode(ctx)
	assert.False(t, got.DarkMode)
	assert.Equal(t, []byte("false"), fkv.data["darkMode"])
}

func TestLoad_RoundTripsThroughStore(t *testing.T) {
	fkv := newFakeKV()
	ctx := context.Background()

	first := New(fkv, nopLogger{})
	first.Load(ctx)
	first.Update(ctx, models.ThemeSettings{DarkMode: true, CompactMode: true})

	second := New(fkv, nopLogger{})
	got := second.Load(ctx)
	assert.Equal(t, models.ThemeSettings{DarkMode: true, CompactMode: true}, got)
}

func TestLoad_GarbageValueFallsBackToFalse(t *testing.T) {
	fkv := newFakeKV()
	fkv.data["darkMode"] = []byte("maybe")

	s := New(fkv, nopLogger{})
	got := s.Load(context.Background())
	assert.False(t, got.DarkMode)
}

func TestWriteFailure_KeepsInMemoryValue(t *testing.T) {
	fkv := newFakeKV()
	fkv.SetErr = errors.New("disk full")

	s := New(fkv, nopLogger{})
	ctx := context.Background()
	s.Load(ctx)

	got := s.ToggleCompactMode(ctx)
	require.True(t, got.CompactMode)
	assert.True(t, s.Current().CompactMode)
}
