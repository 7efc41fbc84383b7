package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bruntbrus/minidom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minidom",
		Short: "Query and inspect HTML documents",
		Long: `Minidom is a small DOM toolkit for Go.

It parses HTML documents into a live tree and exposes the same
facade the library offers: CSS selector queries, class and data
attribute access, and markup extraction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		queryCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FromError(err, errors.CodeCLIInput).Format())
		os.Exit(1)
	}
}
