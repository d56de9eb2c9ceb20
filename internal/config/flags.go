package config

import (
	"flag"
	"os"

	"github.com/loanmo/crm/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-p int      initial page size for the enquiry table (default from Config)
//
// Args are filtered down to the flags handled here via flagx.FilterArgs so
// the parse does not interfere with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "initial page size for the enquiry table")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
