// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/datawire/pyver/pkg/cliutil"
	"github.com/datawire/pyver/pkg/pep440"
)

type outputFormat string

const (
	outputFormatText outputFormat = "text"
	outputFormatYAML outputFormat = "yaml"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(val string) error {
	switch outputFormat(val) {
	case outputFormatText, outputFormatYAML:
		*f = outputFormat(val)
		return nil
	default:
		return fmt.Errorf("invalid output format %q; valid formats are %q and %q",
			val, outputFormatText, outputFormatYAML)
	}
}

func (f *outputFormat) Type() string { return "text|yaml" }

var _ pflag.Value = (*outputFormat)(nil)

func init() {
	flagOutput := outputFormatText
	cmd := &cobra.Command{
		Use:   "ranges [flags] SPECIFIERS",
		Short: "Show the version ranges that a specifier set compiles to",
		Long: "Compile each clause of SPECIFIERS in to its union of half-open " +
			"[low, high) ranges over the version ordering.  A version satisfies a " +
			"clause if it falls in any of the clause's ranges, and satisfies " +
			"SPECIFIERS if it satisfies every clause.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := pep440.ParseSpecifiers(args[0])
			if err != nil {
				return err
			}

			type rangeDoc struct {
				Low  string `yaml:"low"`
				High string `yaml:"high"`
			}
			type clauseDoc struct {
				Specifier string     `yaml:"specifier"`
				Ranges    []rangeDoc `yaml:"ranges"`
			}

			docs := make([]clauseDoc, 0, len(specs))
			for _, spec := range specs {
				ranges, err := spec.Op.ToRanges(spec.Value)
				if err != nil {
					return err
				}
				doc := clauseDoc{Specifier: spec.String()}
				for _, r := range ranges {
					doc.Ranges = append(doc.Ranges, rangeDoc{
						Low:  r.Low.String(),
						High: r.High.String(),
					})
				}
				docs = append(docs, doc)
			}

			switch flagOutput {
			case outputFormatYAML:
				bs, err := yaml.Marshal(docs)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(bs); err != nil {
					return err
				}
			default:
				for _, doc := range docs {
					strs := make([]string, 0, len(doc.Ranges))
					for _, r := range doc.Ranges {
						strs = append(strs, fmt.Sprintf("[%s, %s)", r.Low, r.High))
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n",
						doc.Specifier, strings.Join(strs, " or "))
				}
			}
			return nil
		},
	}
	cmd.Flags().Var(&flagOutput, "output",
		"Write the ranges as lines of text or as a YAML document")
	argparser.AddCommand(cmd)
}
