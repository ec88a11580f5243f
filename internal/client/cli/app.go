// Package cli implements the interactive shell of the AuthShell client.
// It is a consumer of the session manager: it observes the session state
// and switches between the unauthenticated and authenticated command sets.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/identity"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *session.Manager
	store   *storage.CredentialStore
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	logger := logging.NewSlogLogger(sl)

	kv, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	store := storage.NewCredentialStore(kv)

	api := identity.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	mgr := session.NewManager(store, api, logger)

	return &App{
		config:  c,
		session: mgr,
		store:   store,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run rehydrates the session and enters the command loop. Rehydration
// happens before the first prompt, so the loop never observes the
// initializing phase.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}
