// Package followups persists the follow-up history shown on an enquiry.
package followups

import (
	"context"

	"github.com/loanmo/crm/internal/models"
)

// Repository is the durable follow-up store. History is read-only in this
// core; rows are seeded by migration.
type Repository interface {
	GetAll(ctx context.Context) ([]models.FollowUp, error)
}
