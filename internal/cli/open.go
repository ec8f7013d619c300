package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/dlevasseur/banque/internal/services"
)

// Defaults of the variant parameters when the user leaves them empty.
const (
	defaultInterestRate   = 0.01
	defaultOverdraftLimit = 500.0
)

// Open prompts for the new account's parameters and registers it.
//
// The password is entered twice without echo and both copies are wiped
// before returning. The account type decides which extra parameter is
// requested: the interest rate for savings, the overdraft limit for
// business.
func (a *App) Open(ctx context.Context) error {
	holder, err := getSimpleText(a.reader, "Holder name", a.out)
	if err != nil {
		return err
	}
	number, err := getSimpleText(a.reader, "Account number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer wipe(confirm)

	if !bytes.Equal(password, confirm) {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return nil
	}

	kindStr, err := getSimpleText(a.reader, "Account type (standard / savings / business)", a.out)
	if err != nil {
		return err
	}

	initial, err := getAmount(a.reader, "Initial balance (default 0)", 0, a.out)
	if err != nil {
		return err
	}

	params := services.OpenAccountParams{
		Holder:         holder,
		Number:         number,
		Password:       string(password),
		InitialBalance: initial,
	}

	switch kindStr {
	case "savings":
		params.Kind = bank.Savings
		rate, err := getAmount(a.reader, "Interest rate (e.g. 0.02 for 2%, default 0.01)", defaultInterestRate, a.out)
		if err != nil {
			return err
		}
		params.InterestRate = rate
	case "business":
		params.Kind = bank.Business
		limit, err := getAmount(a.reader, "Overdraft limit (default 500)", defaultOverdraftLimit, a.out)
		if err != nil {
			return err
		}
		params.OverdraftLimit = limit
	default:
		params.Kind = bank.Standard
	}

	acc, err := a.service.OpenAccount(ctx, params)
	if err != nil {
		fmt.Fprintf(a.out, "Could not open account: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Account %s opened for %s (balance %.2f).\n", acc.Number(), acc.Holder(), acc.Balance())
	return nil
}
