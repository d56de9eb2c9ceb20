package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/loanmo/crm/internal/common"
	"github.com/loanmo/crm/internal/dashboard"
	"github.com/loanmo/crm/internal/models"
)

// Dashboard prints the headline enquiry counters.
func (a *App) Dashboard(ctx context.Context) error {
	stats := dashboard.Summarize(a.engine.Records())

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total Enquiry\t%d\n", stats.Total)
	fmt.Fprintf(w, "Interested\t%d\n", stats.Interested)
	fmt.Fprintf(w, "Followup\t%d\n", stats.Followup)
	fmt.Fprintf(w, "Not Interested\t%d\n", stats.NotInterested)
	w.Flush()
	return nil
}

// FollowUps prints the follow-up history.
func (a *App) FollowUps(ctx context.Context) error {
	items, err := a.followups.GetAll(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load follow-ups:", err.Error())
		return err
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tStatus\tSubstatus\tField Officer\tNext Follow Up\tCreated By")
	for _, f := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Status, f.SubStatus, f.FieldOfficer,
			f.NextFollowUp.Format("02/01/2006 15:04"), f.CreatedByUser)
	}
	w.Flush()
	return nil
}

// Chat lists the contacts, or shows one conversation: chat [contact#].
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tName\tPresence\tUnread")
		for _, c := range a.chats.Contacts() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ID, c.Name, c.Presence, c.Unread)
		}
		w.Flush()
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: chat [contact#]")
		return nil
	}

	msgs, err := a.chats.Conversation(id)
	if err != nil {
		fmt.Fprintln(a.out, "No such contact")
		return err
	}

	for _, m := range msgs {
		who := "them"
		if m.Outgoing {
			who = "you"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.SentAt.Format("3:04 pm"), who, m.Text)
	}
	return nil
}

// Send appends an outgoing chat message: send <contact#> <text...>.
func (a *App) Send(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: send <contact#> <message>")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: send <contact#> <message>")
		return nil
	}

	text := ""
	for i, part := range args[1:] {
		if i > 0 {
			text += " "
		}
		text += part
	}

	if _, err := a.chats.Send(id, text); err != nil {
		switch {
		case errors.Is(err, common.ErrContactNotFound):
			fmt.Fprintln(a.out, "No such contact")
		case errors.Is(err, common.ErrEmptyMessage):
			fmt.Fprintln(a.out, "Cannot send an empty message")
		default:
			fmt.Fprintln(a.out, "Send failed:", err.Error())
		}
		return err
	}

	fmt.Fprintln(a.out, "Sent")
	return nil
}

// Theme shows or toggles display settings: theme [dark|compact].
func (a *App) Theme(ctx context.Context, args []string) error {
	var settings models.ThemeSettings
	if len(args) == 0 {
		settings = a.themes.Current()
	} else {
		switch args[0] {
		case "dark":
			settings = a.themes.ToggleDarkMode(ctx)
		case "compact":
			settings = a.themes.ToggleCompactMode(ctx)
		default:
			fmt.Fprintln(a.out, "Usage: theme [dark|compact]")
			return nil
		}
	}

	fmt.Fprintf(a.out, "darkMode=%t compactMode=%t\n", settings.DarkMode, settings.CompactMode)
	return nil
}
