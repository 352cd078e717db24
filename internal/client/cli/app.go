package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/bootstrap"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	store       *session.Store
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closeFn     func() error
}

// NewApp builds an App reading from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	comps, err := bootstrap.Build(ctx, c, log)
	if err != nil {
		log.Error(ctx, "error initializing client", "error", err)
		return nil, err
	}

	a := newApp(comps.Auth, comps.Store, log, os.Stdin, os.Stdout)
	a.config = c
	a.closeFn = comps.Close
	return a, nil
}

func newApp(as services.AuthService, s *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		store:       s,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run restores the stored session and serves commands until exit.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closeFn != nil {
			if err := a.closeFn(); err != nil {
				a.log.Warn(ctx, "close token store", "error", err)
			}
		}
	}()

	fmt.Fprintln(a.out, "Welcome to gophauth (type 'help' for commands)")

	if err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		fmt.Fprintln(a.out, client.UserMessage(err))
	} else if p := a.authService.CurrentUser(); p != nil {
		fmt.Fprintf(a.out, "Signed in as %s.\n", p.DisplayName())
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	switch a.store.State() {
	case session.StateAuthenticated:
		if p := a.store.Profile(); p != nil {
			return fmt.Sprintf("(%s)", p.Email)
		}
		return "(signed in)"
	case session.StateLoading:
		return "(loading)"
	default:
		return ""
	}
}
