package config

import (
	"flag"
	"os"

	"github.com/dlevasseur/banque/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the ledger snapshot file (default from Config)
//	-s string   directory for exported statements (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LedgerFile, "f", cfg.LedgerFile, "path of the ledger snapshot file")
	fs.StringVar(&cfg.StatementDir, "s", cfg.StatementDir, "directory for exported statements")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
