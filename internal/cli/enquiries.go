package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/loanmo/crm/internal/models"
)

// List renders the enquiry table for the current query.
func (a *App) List(ctx context.Context) error {
	res, err := a.engine.View(a.query)
	if err != nil {
		fmt.Fprintln(a.out, "View failed:", err.Error())
		return err
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SL No.\tName\tNumber\tModel Name\tLocation\tStatus\tCreated at")
	for _, r := range res.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.SequenceNo, r.Name, r.PhoneNumber, r.ModelName, r.Location,
			r.Status, r.CreatedAt.Format("02-01-2006"))
	}
	w.Flush()

	from := res.Page*res.PageSize + 1
	to := res.Page*res.PageSize + len(res.Rows)
	if len(res.Rows) == 0 {
		from = 0
	}
	fmt.Fprintf(a.out, "Showing %d to %d of %d entries (page %d, %d per page)\n",
		from, to, res.TotalMatched, res.Page+1, res.PageSize)
	return nil
}

// Search sets the global search text. No argument clears it. Changing the
// search resets to the first page, as the web table did.
func (a *App) Search(ctx context.Context, args []string) error {
	a.query.SearchText = strings.Join(args, " ")
	a.query.Page = 0
	return a.List(ctx)
}

// Filter manages the per-field filters:
//
//	filter name <text> | number <digits> | status <status> | clear
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: filter name|number|status <value>, or 'filter clear'")
		return nil
	}

	switch args[0] {
	case "clear":
		a.query.NameFilter = ""
		a.query.NumberFilter = ""
		a.query.StatusFilter = ""
	case "name":
		a.query.NameFilter = strings.Join(args[1:], " ")
	case "number":
		a.query.NumberFilter = strings.Join(args[1:], "")
	case "status":
		status := models.Status(strings.Join(args[1:], " "))
		switch status {
		case "", models.StatusInterested, models.StatusFollowup, models.StatusNotInterested:
			a.query.StatusFilter = status
		default:
			fmt.Fprintln(a.out, "Unknown status; use Interested, Followup or 'Not Interested'")
			return nil
		}
	default:
		fmt.Fprintln(a.out, "Unknown filter:", args[0])
		return nil
	}

	a.query.Page = 0
	return a.List(ctx)
}

// Sort sets the sort column and direction: sort <field> [asc|desc].
// Repeating the current field flips the direction, like clicking a column
// header.
func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: sort slNo|name|number|modelName|location|status|createdAt [asc|desc]")
		return nil
	}

	field := models.SortField(args[0])
	if len(args) > 1 {
		a.query.SortField = field
		a.query.SortDirection = models.SortDirection(args[1])
	} else if a.query.SortField == field {
		if a.query.SortDirection == models.SortAsc {
			a.query.SortDirection = models.SortDesc
		} else {
			a.query.SortDirection = models.SortAsc
		}
	} else {
		a.query.SortField = field
		a.query.SortDirection = models.SortAsc
	}

	return a.List(ctx)
}

// Page moves through result pages: page <n> | next | prev.
func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: page <n> | next | prev")
		return nil
	}

	switch args[0] {
	case "next":
		a.query.Page++
	case "prev":
		if a.query.Page > 0 {
			a.query.Page--
		}
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Page must be a positive number")
			return nil
		}
		a.query.Page = n - 1
	}

	return a.List(ctx)
}

// PageSize changes the rows-per-page and, per the engine's usage contract,
// resets to the first page.
func (a *App) PageSize(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: pagesize <n>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(a.out, "Page size must be a positive number")
		return nil
	}

	a.query.PageSize = n
	a.query.Page = 0
	return a.List(ctx)
}

// AddEnquiry prompts for a new enquiry and stores it.
func (a *App) AddEnquiry(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Customer name", a.out)
	if err != nil {
		return err
	}
	number, err := GetSimpleText(a.reader, "Phone number", a.out)
	if err != nil {
		return err
	}
	model, err := GetSimpleText(a.reader, "Model name", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}

	rec, err := a.enquiries.Add(ctx, models.EnquiryRecord{
		Name:        name,
		PhoneNumber: number,
		ModelName:   model,
		Location:    location,
		Status:      models.StatusFollowup,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not save enquiry:", err.Error())
		return err
	}

	if err := a.reloadRecords(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Enquiry #%d saved\n", rec.SequenceNo)
	return nil
}
