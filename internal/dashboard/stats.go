// Package dashboard computes the headline counters shown above the
// enquiry table.
package dashboard

import "github.com/loanmo/crm/internal/models"

// Stats holds per-status enquiry counts.
type Stats struct {
	Total         int
	Interested    int
	Followup      int
	NotInterested int
}

// Summarize counts records by status.
func Summarize(records []models.EnquiryRecord) Stats {
	var s Stats
	for _, r := range records {
		s.Total++
		switch r.Status {
		case models.StatusInterested:
			s.Interested++
		case models.StatusFollowup:
			s.Followup++
		case models.StatusNotInterested:
			s.NotInterested++
		}
	}
	return s
}
