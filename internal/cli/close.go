package cli

import (
	"context"
	"fmt"
)

// Close deletes the session's account after an explicit confirmation. The
// deletion is irrevocable and takes the history with it.
func (a *App) Close(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete this account for good? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.service.CloseAccount(ctx, a.session.number); err != nil {
		fmt.Fprintf(a.out, "Could not close account: %v\n", err)
		return err
	}

	a.session = nil
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}
