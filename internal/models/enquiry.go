package models

import "time"

// Status classifies the outcome of a customer enquiry.
type Status string

const (
	StatusInterested    Status = "Interested"
	StatusFollowup      Status = "Followup"
	StatusNotInterested Status = "Not Interested"
)

// EnquiryRecord is a single row of the enquiry table. Records are immutable
// for the lifetime of a session; SequenceNo is unique within the collection
// and carries the display number, not the display order.
type EnquiryRecord struct {
	SequenceNo  int       `json:"slNo"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"number"`
	ModelName   string    `json:"modelName"`
	Location    string    `json:"location"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowUp is one entry of an enquiry's follow-up history.
type FollowUp struct {
	ID            int
	Details       string
	Status        Status
	SubStatus     string
	FieldOfficer  string
	NextFollowUp  time.Time
	CreatedByUser string
}
