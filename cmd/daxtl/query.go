package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brettviren/daxutil"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query TICK...",
		Short: "Print the epoch in effect at each tick",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticks, err := parseTicks(args)
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range ticks {
				if n, ok := a.timeline.Epoch(t); ok {
					fmt.Fprintf(out, "%d %d\n", t, n)
				} else {
					fmt.Fprintf(out, "%d none\n", t)
				}
			}
			return nil
		},
	}
}

func newActiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active TICK...",
		Short: "Print every epoch active at each tick, largest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticks, err := parseTicks(args)
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range ticks {
				active := a.timeline.Active(t)
				if len(active) == 0 {
					fmt.Fprintf(out, "%d none\n", t)
					continue
				}
				fmt.Fprintf(out, "%d", t)
				for _, n := range active {
					fmt.Fprintf(out, " %d", n)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func parseTicks(args []string) ([]daxutil.Tick, error) {
	ticks := make([]daxutil.Tick, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tick %q: %w", arg, err)
		}
		ticks = append(ticks, daxutil.Tick(v))
	}
	return ticks, nil
}
