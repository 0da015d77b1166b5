package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/gutterpad"
)

func newVersionCommand(build gutterpad.Build) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "gutterpad", build.String())
			return err
		},
	}
}
