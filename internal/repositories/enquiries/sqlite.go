package enquiries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loanmo/crm/internal/dbx"
	"github.com/loanmo/crm/internal/models"
)

// dateLayout is how enquiry dates are stored; display formatting is the
// presentation layer's concern.
const dateLayout = "2006-01-02"

// SQLiteRepository implements Repository over the enquiries table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DB.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetAll lists all enquiry records ordered by sequence number.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.EnquiryRecord, error) {
	query := `SELECT sequence_no, name, phone_number, model_name, location, status, created_at
		FROM enquiries ORDER BY sequence_no`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select enquiries: %w", err)
	}
	defer rows.Close()

	var result []models.EnquiryRecord
	for rows.Next() {
		var rec models.EnquiryRecord
		var createdAt string
		if err := rows.Scan(&rec.SequenceNo, &rec.Name, &rec.PhoneNumber,
			&rec.ModelName, &rec.Location, &rec.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan enquiry row: %w", err)
		}
		rec.CreatedAt, err = time.Parse(dateLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse enquiry date %q: %w", createdAt, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enquiry rows: %w", err)
	}
	return result, nil
}

// Add inserts a record with the next free sequence number. Sequence
// assignment and insert run in one transaction so concurrent processes
// cannot claim the same number.
func (r *SQLiteRepository) Add(ctx context.Context, rec models.EnquiryRecord) (models.EnquiryRecord, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(sequence_no), 0) + 1 FROM enquiries`)
		if err := row.Scan(&rec.SequenceNo); err != nil {
			return fmt.Errorf("failed to allocate sequence number: %w", err)
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO enquiries (sequence_no, name, phone_number, model_name, location, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.SequenceNo, rec.Name, rec.PhoneNumber, rec.ModelName,
			rec.Location, rec.Status, rec.CreatedAt.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("failed to insert enquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.EnquiryRecord{}, err
	}
	return rec, nil
}
