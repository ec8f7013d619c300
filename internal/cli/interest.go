package cli

import (
	"context"
	"fmt"
)

// Interest posts the yearly interest on the session's savings account.
func (a *App) Interest(ctx context.Context) error {
	interest, err := a.service.ApplyInterest(ctx, a.session.number)
	if err != nil {
		fmt.Fprintf(a.out, "Could not apply interest: %v\n", err)
		return err
	}

	acc, err := a.service.Account(a.session.number)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Interest of %.2f applied. New balance: %.2f\n", interest, acc.Balance())
	return nil
}
