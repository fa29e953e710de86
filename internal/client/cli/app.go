package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/postboard/internal/client/client"
	"github.com/dmitrijs2005/postboard/internal/client/config"
	"github.com/dmitrijs2005/postboard/internal/client/nav"
	sessionrepo "github.com/dmitrijs2005/postboard/internal/client/repositories/session"
	"github.com/dmitrijs2005/postboard/internal/client/services"
	"github.com/dmitrijs2005/postboard/internal/client/session"
	"github.com/dmitrijs2005/postboard/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	api    client.Client
	store  *session.Store
	board  *services.Board
	report *services.Report

	reader *bufio.Reader
	out    io.Writer
	view   nav.View
}

var (
	_ nav.Navigator      = (*App)(nil)
	_ services.Confirmer = (*App)(nil)
	_ execIface          = (*App)(nil)
)

// NewApp opens the local database and wires the API client, the session
// store and the services. The API client reads its bearer token from the
// session store on every request.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := &App{
		config: c,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		view:   nav.ViewEntry,
	}

	a.api = client.NewHTTPClient(c.APIBaseURL, client.TokenFunc(func() string { return a.store.Token() }), c.RequestTimeout, logger)
	a.store = session.NewStore(a.api, sessionrepo.NewSQLiteRepository(db), a, logger)
	a.board = services.NewBoard(a.api, a.store, a, logger)
	a.report = services.NewReport(a.api, logger)

	return a, nil
}

// Run restores the previous session and blocks in the REPL until the user
// exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.store.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session not restored", "error", err)
	}
	if a.store.IsAuthenticated() {
		a.view = nav.ViewPosts
	}

	fmt.Fprintln(a.out, "Postboard CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Navigate implements nav.Navigator.
func (a *App) Navigate(v nav.View) {
	if a.view != v {
		a.logger.Debug(context.Background(), "view changed", "from", a.view, "to", v)
	}
	a.view = v
}

// Confirm implements services.Confirmer with a y/N prompt.
func (a *App) Confirm(prompt string) bool {
	return getConfirmation(a.reader, prompt, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) status() string {
	s := string(a.view)
	if u := a.store.User(); u != nil {
		s = u.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
