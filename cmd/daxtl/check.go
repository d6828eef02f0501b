package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify timeline consistency and print its fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if err := a.timeline.Check(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok boundaries=%d fingerprint=%s\n",
				a.timeline.Len(), a.timeline.Fingerprint())
			return nil
		},
	}
}
