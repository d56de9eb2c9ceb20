package enquiries

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanmo/crm/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE enquiries (
  sequence_no  INTEGER PRIMARY KEY,
  name         TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  model_name   TEXT NOT NULL,
  location     TEXT NOT NULL,
  status       TEXT NOT NULL,
  created_at   TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sample(name string) models.EnquiryRecord {
	return models.EnquiryRecord{
		Name:        name,
		PhoneNumber: "8920669974",
		ModelName:   "HF DELUXE KICK",
		Location:    "NIHAL VIHAR WEST DELHI",
		Status:      models.StatusInterested,
		CreatedAt:   time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdd_AssignsSequentialNumbers(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first, err := r.Add(ctx, sample("A"))
	require.NoError(t, err)
	second, err := r.Add(ctx, sample("B"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.SequenceNo)
	assert.Equal(t, 2, second.SequenceNo)
}

func TestGetAll_RoundTripsFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	want, err := r.Add(ctx, sample("MR. Jitendra Jitendra"))
	require.NoError(t, err)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestGetAll_EmptyTable(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAll_OrderedBySequenceNo(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// insert out of order on purpose
	_, err := db.Exec(`INSERT INTO enquiries VALUES
		(2, 'B', '1', 'M', 'L', 'Followup', '2025-02-26'),
		(1, 'A', '2', 'M', 'L', 'Interested', '2025-02-27')`)
	require.NoError(t, err)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].SequenceNo)
	assert.Equal(t, 2, got[1].SequenceNo)
}
