package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/dlevasseur/banque/internal/services"
)

// Login prompts for an account number and password and opens a session on
// the matching account. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	number, err := getSimpleText(a.reader, "Account number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)

	acc, err := a.service.Authenticate(ctx, number, string(password))
	if err != nil {
		switch {
		case errors.Is(err, bank.ErrAccountNotFound):
			fmt.Fprintln(a.out, "No account with that number.")
		case errors.Is(err, services.ErrInvalidPassword):
			fmt.Fprintln(a.out, "Wrong password.")
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	a.session = &session{number: acc.Number(), holder: acc.Holder(), kind: acc.Kind()}
	fmt.Fprintf(a.out, "Welcome, %s. Balance: %.2f\n", acc.Holder(), acc.Balance())
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
