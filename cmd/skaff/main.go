// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command skaff scaffolds project files into an existing project tree.
//
// Usage:
//
//	skaff generate --path DIR --name NAME --scaffolder ID [--attr k=v]...
//	skaff list
//
// Configuration is read from .skaff.yaml in the working directory or
// ~/.config/skaff/config.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/skaff/definition"
	"github.com/albertocavalcante/skaff/scaffolder"
	"github.com/albertocavalcante/skaff/scaffolders/docs"
	"github.com/albertocavalcante/skaff/scaffolders/goproject"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "skaff",
	Short: "Scaffold project files into an existing project tree",
	Long: `skaff copies static template files and generates parametrized
source files into a recognized project root. Project types are detected
by definitions (scaffold.yaml manifest, go.mod, .git); the file set is
produced by the chosen scaffolder.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig loads the optional config file.
//
// Lookup order:
//  1. .skaff.yaml (current directory)
//  2. ~/.config/skaff/config.yaml
func initConfig() {
	viper.SetDefault("scaffolder", "goproject")
	viper.SetDefault("static_dir", "")

	if _, err := os.Stat(".skaff.yaml"); err == nil {
		viper.SetConfigFile(".skaff.yaml")
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "skaff"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the stderr logger from the configured level.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// defaultDefinitions assembles the definition registry. The manifest
// marker is the most specific signal, so it is scanned first.
func defaultDefinitions() *definition.Registry {
	return definition.NewRegistry(
		definition.Manifest{},
		definition.GoModule{},
		definition.Git{},
	)
}

// registerScaffolders populates the scaffolder registry. The static
// directory is resolved to an absolute path here because copy sources
// are looked up through a filesystem rooted at /.
func registerScaffolders(staticDir string) {
	if staticDir != "" {
		if abs, err := filepath.Abs(staticDir); err == nil {
			staticDir = abs
		}
	}
	scaffolder.Reset()
	scaffolder.Register(func() scaffolder.Scaffolder {
		return goproject.New(goproject.Config{StaticDir: staticDir})
	})
	scaffolder.Register(func() scaffolder.Scaffolder { return docs.New() })
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
