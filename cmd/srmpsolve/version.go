package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srmp/cfn/uai"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the srmpsolve version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "srmpsolve %s\n", uai.FormatVersion)
			return nil
		},
	}
}
