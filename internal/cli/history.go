package cli

import (
	"context"
	"fmt"
)

// History prints the session account's transaction log, oldest first.
func (a *App) History(ctx context.Context) error {
	entries, err := a.service.History(a.session.number)
	if err != nil {
		fmt.Fprintf(a.out, "Could not read history: %v\n", err)
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return nil
	}

	for i, t := range entries {
		fmt.Fprintf(a.out, "%3d. %s  %-28s  %10.2f  balance %.2f\n",
			i+1, t.Date.Format("2006-01-02 15:04:05"), t.Label(), t.Amount, t.BalanceAfter)
	}
	return nil
}
