package cli

import (
	"context"
	"fmt"
)

func (a *App) Withdraw(ctx context.Context) error {
	amount, err := getAmount(a.reader, "Amount to withdraw", 0, a.out)
	if err != nil {
		return err
	}

	balance, err := a.service.Withdraw(ctx, a.session.number, amount)
	if err != nil {
		fmt.Fprintf(a.out, "Withdrawal failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Withdrawal done. New balance: %.2f\n", balance)
	return nil
}
