// Package tableengine derives filtered, sorted, paginated views over the
// enquiry collection. A view computation has no side effects and no hidden
// state: the same records and query always produce the same result, so
// concurrent calls over one snapshot are safe.
package tableengine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/loanmo/crm/internal/common"
	"github.com/loanmo/crm/internal/models"
)

// Engine holds an immutable snapshot of enquiry records and answers view
// requests against it. The caller owns the query state.
type Engine struct {
	records []models.EnquiryRecord
}

// New copies records into a fresh Engine snapshot.
func New(records []models.EnquiryRecord) *Engine {
	snapshot := make([]models.EnquiryRecord, len(records))
	copy(snapshot, records)
	return &Engine{records: snapshot}
}

// Records returns a copy of the underlying snapshot.
func (e *Engine) Records() []models.EnquiryRecord {
	out := make([]models.EnquiryRecord, len(e.records))
	copy(out, e.records)
	return out
}

// View filters, sorts, and paginates the snapshot per q.
//
// An unknown sort field is a caller contract violation and returns
// common.ErrInvalidSortField. An out-of-range page is not an error: it
// yields empty rows with the correct TotalMatched.
func (e *Engine) View(q models.Query) (models.ViewResult, error) {
	if q.PageSize <= 0 {
		return models.ViewResult{}, &common.ValidationError{Field: "pageSize", Reason: "must be positive"}
	}
	if q.Page < 0 {
		return models.ViewResult{}, &common.ValidationError{Field: "page", Reason: "must not be negative"}
	}

	less, err := lessFunc(q.SortField, q.SortDirection)
	if err != nil {
		return models.ViewResult{}, err
	}

	filtered := make([]models.EnquiryRecord, 0, len(e.records))
	for _, r := range e.records {
		if matches(r, q) {
			filtered = append(filtered, r)
		}
	}

	// Stable sort with a direction-aware comparator. Descending flips the
	// comparator, not the sorted sequence, so equal keys keep their
	// original relative order either way.
	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j])
	})

	total := len(filtered)
	start := q.Page * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	rows := make([]models.EnquiryRecord, end-start)
	copy(rows, filtered[start:end])

	return models.ViewResult{
		Rows:         rows,
		TotalMatched: total,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}, nil
}

// matches applies the global search term and the per-field filters. All
// active predicates are ANDed.
func matches(r models.EnquiryRecord, q models.Query) bool {
	if q.SearchText != "" {
		hit := containsFold(r.Name, q.SearchText) ||
			strings.Contains(r.PhoneNumber, q.SearchText) ||
			containsFold(r.ModelName, q.SearchText) ||
			containsFold(r.Location, q.SearchText)
		if !hit {
			return false
		}
	}
	if q.NameFilter != "" && !containsFold(r.Name, q.NameFilter) {
		return false
	}
	if q.NumberFilter != "" && !strings.Contains(r.PhoneNumber, q.NumberFilter) {
		return false
	}
	if q.StatusFilter != "" && r.Status != q.StatusFilter {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// lessFunc builds the direction-aware comparator for the given field.
// String columns compare locale-aware, numeric and date columns by value.
func lessFunc(field models.SortField, dir models.SortDirection) (func(a, b models.EnquiryRecord) bool, error) {
	var cmp func(a, b models.EnquiryRecord) int

	switch field {
	case models.SortBySequenceNo:
		cmp = func(a, b models.EnquiryRecord) int {
			return compareInt(a.SequenceNo, b.SequenceNo)
		}
	case models.SortByCreatedAt:
		cmp = func(a, b models.EnquiryRecord) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case models.SortByName, models.SortByNumber, models.SortByModelName,
		models.SortByLocation, models.SortByStatus:
		// collate.Collator keeps internal buffers, so build one per view
		// rather than sharing across concurrent calls.
		coll := collate.New(language.English)
		key := stringKey(field)
		cmp = func(a, b models.EnquiryRecord) int {
			return coll.CompareString(key(a), key(b))
		}
	default:
		return nil, common.ErrInvalidSortField
	}

	if dir == models.SortDesc {
		inner := cmp
		cmp = func(a, b models.EnquiryRecord) int {
			return -inner(a, b)
		}
	}

	return func(a, b models.EnquiryRecord) bool {
		return cmp(a, b) < 0
	}, nil
}

func stringKey(field models.SortField) func(models.EnquiryRecord) string {
	switch field {
	case models.SortByName:
		return func(r models.EnquiryRecord) string { return r.Name }
	case models.SortByNumber:
		return func(r models.EnquiryRecord) string { return r.PhoneNumber }
	case models.SortByModelName:
		return func(r models.EnquiryRecord) string { return r.ModelName }
	case models.SortByLocation:
		return func(r models.EnquiryRecord) string { return r.Location }
	default:
		return func(r models.EnquiryRecord) string { return string(r.Status) }
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
