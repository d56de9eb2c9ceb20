package models

// SortField names a sortable column of the enquiry table.
type SortField string

const (
	SortBySequenceNo SortField = "slNo"
	SortByName       SortField = "name"
	SortByNumber     SortField = "number"
	SortByModelName  SortField = "modelName"
	SortByLocation   SortField = "location"
	SortByStatus     SortField = "status"
	SortByCreatedAt  SortField = "createdAt"
)

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query describes the view a caller wants over the enquiry collection.
// It is transient: the caller owns the current query state and hands a
// fresh copy to the engine on every view request.
//
// An empty SearchText or filter field disables that predicate. Page is
// zero-based; callers must reset Page to 0 whenever they change PageSize.
type Query struct {
	SearchText   string
	NameFilter   string
	NumberFilter string
	StatusFilter Status

	SortField     SortField
	SortDirection SortDirection

	Page     int
	PageSize int
}

// ViewResult is the computed page of the enquiry table. Rows holds at most
// PageSize records; TotalMatched counts every record passing the filters,
// independent of pagination.
type ViewResult struct {
	Rows         []EnquiryRecord
	TotalMatched int
	Page         int
	PageSize     int
}
