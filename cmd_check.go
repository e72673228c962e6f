// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/pep440"
)

func init() {
	var flags struct {
		Quiet bool
	}
	cmd := &cobra.Command{
		Use:   "check [flags] SPECIFIERS VERSION...",
		Short: "Check whether versions satisfy a specifier set",
		Long: "Evaluate each VERSION against SPECIFIERS (a comma-separated set of " +
			"clauses, like \"~= 0.9, != 0.9.4\").  The exit status is 0 if every " +
			"VERSION satisfies SPECIFIERS, and 1 otherwise.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			specs, err := pep440.ParseSpecifiers(args[0])
			if err != nil {
				return err
			}

			allOK := true
			for _, verStr := range args[1:] {
				ver, err := pep440.ParseVersion(verStr)
				if err != nil {
					return err
				}
				ok, err := specs.SatisfiedBy(*ver)
				if err != nil {
					return err
				}
				dlog.Debugf(ctx, "%q satisfies %q: %v", ver, specs, ok)
				if !flags.Quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", ver, ok)
				}
				if !ok {
					allOK = false
				}
			}
			if !allOK {
				return fmt.Errorf("not all versions satisfy %q", specs)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Don't print a line per version; only report through the exit status")
	argparser.AddCommand(cmd)
}
