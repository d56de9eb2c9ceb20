package followups

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loanmo/crm/internal/models"
)

const dateTimeLayout = "2006-01-02 15:04"

// SQLiteRepository implements Repository over the followups table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.FollowUp, error) {
	query := `SELECT id, details, status, sub_status, field_officer, next_follow_up, created_by
		FROM followups ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select followups: %w", err)
	}
	defer rows.Close()

	var result []models.FollowUp
	for rows.Next() {
		var f models.FollowUp
		var next string
		if err := rows.Scan(&f.ID, &f.Details, &f.Status, &f.SubStatus,
			&f.FieldOfficer, &next, &f.CreatedByUser); err != nil {
			return nil, fmt.Errorf("failed to scan followup row: %w", err)
		}
		f.NextFollowUp, err = time.Parse(dateTimeLayout, next)
		if err != nil {
			return nil, fmt.Errorf("failed to parse followup date %q: %w", next, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate followup rows: %w", err)
	}
	return result, nil
}
