// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/skaff/scaffolder"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scaffolders and project definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		registerScaffolders(viper.GetString("static_dir"))
		return runList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(out io.Writer) error {
	fmt.Fprintln(out, "Scaffolders:")
	for _, name := range scaffolder.Names() {
		s, _ := scaffolder.Get(name)
		fmt.Fprintf(out, "  %-12s %s\n", name, s.Description())

		for _, q := range s.Questions() {
			fmt.Fprintf(out, "    %s (%s): %s\n", q.Name, q.Kind, q.Prompt)
		}
	}

	fmt.Fprintln(out, "Definitions:")
	for _, name := range defaultDefinitions().Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
