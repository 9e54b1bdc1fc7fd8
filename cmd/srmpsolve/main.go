package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// debug is defined globally, the way cmd/olm/main.go defines its flags, so
// it is reachable from PersistentPreRunE without threading it through a
// closure.
var debug = pflag.Bool("debug", false, "enable debug logging")

func main() {
	rootCmd := &cobra.Command{
		Use:   "srmpsolve",
		Short: "srmpsolve",
		Long:  `A CLI tool to solve cost function networks via sequential reweighted message passing.`,

		// PersistentPreRunE, not PreRunE: every subcommand here does real
		// work (solve, version), so the debug flag must take effect
		// whichever one is actually invoked.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().AddFlag(pflag.Lookup("debug"))

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
