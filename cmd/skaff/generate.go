// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/skaff/engine"
	"github.com/albertocavalcante/skaff/scaffolder"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate scaffolding into a project root",
	Example: `  # Scaffold a new command into a Go module
  skaff generate --path . --name "sqlite parser" --scaffolder goproject \
      --attr module_path=example.com/forensics \
      --attr "description=a timeline event parser" \
      --attr with_tests=true

  # Attributes from a file
  skaff generate --path . --name "sqlite parser" --attr-file attrs.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generateOptions{
			Path:       viper.GetString("path"),
			Name:       mustFlag(cmd, "name"),
			Scaffolder: viper.GetString("scaffolder"),
			Attrs:      mustFlagSlice(cmd, "attr"),
			AttrFile:   mustFlag(cmd, "attr-file"),
		}
		registerScaffolders(viper.GetString("static_dir"))
		return runGenerate(opts, newLogger(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("path", "p", ".", "project root path")
	generateCmd.Flags().StringP("name", "n", "", "module name (e.g. \"sqlite parser\")")
	generateCmd.Flags().StringP("scaffolder", "s", "", "scaffolder to use")
	generateCmd.Flags().StringArray("attr", nil, "scaffolder attribute as name=value (repeatable)")
	generateCmd.Flags().String("attr-file", "", "yaml file with scaffolder attributes")
	generateCmd.Flags().String("static-dir", "", "directory with static assets to copy")
	_ = generateCmd.MarkFlagRequired("name")

	_ = viper.BindPFlag("path", generateCmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("scaffolder", generateCmd.Flags().Lookup("scaffolder"))
	_ = viper.BindPFlag("static_dir", generateCmd.Flags().Lookup("static-dir"))
}

// generateOptions carries the resolved generate flags.
type generateOptions struct {
	Path       string
	Name       string
	Scaffolder string
	Attrs      []string
	AttrFile   string
}

// runGenerate configures an engine from opts and drains its file
// generation, printing each written path to out.
func runGenerate(opts generateOptions, log zerolog.Logger, out io.Writer) error {
	s, ok := scaffolder.Get(opts.Scaffolder)
	if !ok {
		return fmt.Errorf("unknown scaffolder %q (see \"skaff list\")", opts.Scaffolder)
	}

	eng := engine.New(defaultDefinitions(), engine.WithLogger(log))

	if err := eng.SetProjectRootPath(opts.Path); err != nil {
		return fmt.Errorf("project root %q: %w", opts.Path, err)
	}
	eng.SetModuleName(opts.Name)
	eng.SetScaffolder(s)

	attrs, err := resolveAttrs(s.Questions(), opts.Attrs, opts.AttrFile)
	if err != nil {
		return err
	}
	for _, a := range attrs {
		if err := eng.StoreScaffolderAttribute(a.Name, a.Value, a.Kind); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}

	log.Info().
		Str("definition", eng.Definition()).
		Str("scaffolder", s.Name()).
		Str("prefix", eng.FilePrefix()).
		Msg("generating files")

	seq, err := eng.GenerateFiles()
	if err != nil {
		return err
	}
	for path, err := range seq {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}
	return nil
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustFlagSlice(cmd *cobra.Command, name string) []string {
	v, _ := cmd.Flags().GetStringArray(name)
	return v
}
