package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlevasseur/banque/internal/report"
)

// Statement exports the session account's history as a PDF or XLSX file in
// the configured statement directory.
func (a *App) Statement(ctx context.Context, format string) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	name := fmt.Sprintf("statement_%s.%s", a.session.number, f)
	path := filepath.Join(a.config.StatementDir, name)

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create %s: %v\n", path, err)
		return err
	}
	defer file.Close()

	if err := a.service.Statement(ctx, a.session.number, f, file); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Statement written to %s\n", path)
	return nil
}
