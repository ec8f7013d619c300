package cli

import (
	"context"
	"fmt"
)

func (a *App) Deposit(ctx context.Context) error {
	amount, err := getAmount(a.reader, "Amount to deposit", 0, a.out)
	if err != nil {
		return err
	}

	balance, err := a.service.Deposit(ctx, a.session.number, amount)
	if err != nil {
		fmt.Fprintf(a.out, "Deposit failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Deposit done. New balance: %.2f\n", balance)
	return nil
}
