// Package cli is the terminal presentation layer of the CRM dashboard:
// a REPL over the session store, the table engine, and the chat service.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/loanmo/crm/internal/chat"
	"github.com/loanmo/crm/internal/config"
	"github.com/loanmo/crm/internal/logging"
	"github.com/loanmo/crm/internal/models"
	"github.com/loanmo/crm/internal/repositories/enquiries"
	"github.com/loanmo/crm/internal/repositories/followups"
	"github.com/loanmo/crm/internal/sessionstore"
	"github.com/loanmo/crm/internal/storage"
	"github.com/loanmo/crm/internal/tableengine"
	"github.com/loanmo/crm/internal/theme"
)

// App wires the stores and services behind the REPL. It also owns the
// current table Query: the engine is stateless, the presentation layer is
// the system of record for filter/sort/page state.
type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	sessions  *sessionstore.Store
	themes    *theme.Store
	chats     *chat.Service
	enquiries enquiries.Repository
	followups followups.Repository

	engine *tableengine.Engine
	query  models.Query

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and constructs the application.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, repos, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		sessions:  sessionstore.New(repos.KV, log),
		themes:    theme.New(repos.KV, log),
		chats:     chat.NewService(),
		enquiries: repos.Enquiries,
		followups: repos.FollowUps,
		query:     defaultQuery(cfg.PageSize),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func defaultQuery(pageSize int) models.Query {
	return models.Query{
		SortField:     models.SortBySequenceNo,
		SortDirection: models.SortAsc,
		Page:          0,
		PageSize:      pageSize,
	}
}

// Run bootstraps startup state and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	a.sessions.BootstrapDefaultAdmin(ctx)
	a.themes.Load(ctx)

	if sess := a.sessions.RestoreSession(ctx); sess != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", sess.Name)
	}

	if err := a.reloadRecords(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to LoanMo CRM (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

// reloadRecords refreshes the engine snapshot from the enquiry store.
func (a *App) reloadRecords(ctx context.Context) error {
	records, err := a.enquiries.GetAll(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading enquiries", "error", err)
		return err
	}
	a.engine = tableengine.New(records)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.CurrentSession() != nil
}

func (a *App) getStatus() string {
	sess := a.sessions.CurrentSession()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.Email, sess.Role)
}
