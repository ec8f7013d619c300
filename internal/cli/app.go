// Package cli provides the interactive banking command-line client.
//
// It wires configuration, the ledger service, and an interactive REPL.
// Typical flow: open or log into an account, then run balance operations
// (deposit, withdraw, transfer, interest), inspect or export the history,
// and close the account or log out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/dlevasseur/banque/internal/config"
	"github.com/dlevasseur/banque/internal/logging"
	"github.com/dlevasseur/banque/internal/services"
)

// session is the account the user is currently logged into.
type session struct {
	number string
	holder string
	kind   bank.Kind
}

type App struct {
	config  *config.Config
	service *services.LedgerService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	session *session
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	svc, err := services.NewLedgerService(c.LedgerFile, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		service: svc,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the banking CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isSavings() bool {
	return a.session != nil && a.session.kind == bank.Savings
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf(" (%s %s)", a.session.number, a.session.holder)
}
