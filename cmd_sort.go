// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/pep440"
)

func init() {
	var flags struct {
		Reverse       bool
		IgnoreInvalid bool
	}
	cmd := &cobra.Command{
		Use:   "sort [flags] [VERSION...]",
		Short: "Sort versions in to the PEP 440 ordering",
		Long: "Sort the given versions from lowest to highest.  If no VERSION " +
			"arguments are given, read one version per line from stdin.  Each " +
			"version is echoed back as it was spelled, not normalized.",
		Args: cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inputs := args
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						inputs = append(inputs, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			type entry struct {
				Str string
				Ver pep440.Version
			}
			entries := make([]entry, 0, len(inputs))
			for _, str := range inputs {
				ver, err := pep440.ParseVersion(str)
				if err != nil {
					if flags.IgnoreInvalid {
						dlog.Warnf(ctx, "skipping %q: %v", str, err)
						continue
					}
					return err
				}
				entries = append(entries, entry{Str: str, Ver: *ver})
			}

			sort.SliceStable(entries, func(i, j int) bool {
				if flags.Reverse {
					i, j = j, i
				}
				return entries[i].Ver.Cmp(entries[j].Ver) < 0
			})

			for _, ent := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), ent.Str)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&flags.Reverse, "reverse", "r", false,
		"Sort highest to lowest instead of lowest to highest")
	cmd.Flags().BoolVar(&flags.IgnoreInvalid, "ignore-invalid", false,
		"Skip inputs that are not valid versions instead of erroring")
	argparser.AddCommand(cmd)
}
