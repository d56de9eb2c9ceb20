// Package enquiries persists the enquiry record collection.
package enquiries

import (
	"context"

	"github.com/loanmo/crm/internal/models"
)

// Repository is the durable enquiry store.
type Repository interface {
	// GetAll lists every record in insertion order.
	GetAll(ctx context.Context) ([]models.EnquiryRecord, error)

	// Add inserts a record, assigning the next free sequence number.
	// The stored record is returned.
	Add(ctx context.Context, r models.EnquiryRecord) (models.EnquiryRecord, error)
}
