package cli

import (
	"context"
	"fmt"
)

// Transfer prompts for a destination account and an amount and moves the
// funds from the session's account. Failures leave both accounts untouched.
func (a *App) Transfer(ctx context.Context) error {
	to, err := getSimpleText(a.reader, "Destination account number", a.out)
	if err != nil {
		return err
	}

	amount, err := getAmount(a.reader, "Amount to transfer", 0, a.out)
	if err != nil {
		return err
	}

	if err := a.service.Transfer(ctx, a.session.number, to, amount); err != nil {
		fmt.Fprintf(a.out, "Transfer failed: %v\n", err)
		return err
	}

	acc, err := a.service.Account(a.session.number)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Transfer done. New balance: %.2f\n", acc.Balance())
	return nil
}
