// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package goproject scaffolds a new command inside an existing Go module:
// a main package under cmd/ and an implementation package under
// internal/, plus optional static assets copied from a template
// directory.
package goproject

import (
	"embed"
	"fmt"
	"go/format"
	"iter"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/albertocavalcante/skaff/internal/naming"
	"github.com/albertocavalcante/skaff/scaffolder"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// staticAssets are copied from the configured static directory when
// present there. Absent assets are skipped by the engine.
var staticAssets = []string{".gitignore", "Makefile", "LICENSE"}

// Config contains goproject scaffolder configuration.
type Config struct {
	// StaticDir holds static assets to copy verbatim into the project
	// root. Empty means no static files.
	StaticDir string
}

// Scaffolder generates a Go command skeleton.
type Scaffolder struct {
	scaffolder.Base
	staticDir string
}

// New creates a goproject scaffolder.
func New(cfg Config) *Scaffolder {
	return &Scaffolder{
		Base: scaffolder.NewBase([]scaffolder.Question{
			{Name: "module_path", Prompt: "Go module import path of the target project", Kind: scaffolder.TypeString},
			{Name: "description", Prompt: "One-line description of the command", Kind: scaffolder.TypeString},
			{Name: "with_tests", Prompt: "Generate a test file", Kind: scaffolder.TypeBool},
		}),
		staticDir: cfg.StaticDir,
	}
}

// Name returns "goproject".
func (s *Scaffolder) Name() string { return "goproject" }

// Description returns a human-readable description.
func (s *Scaffolder) Description() string {
	return "Generate a Go command skeleton (cmd/ and internal/ packages)"
}

// FilesToCopy lists the static assets found under the configured static
// directory.
func (s *Scaffolder) FilesToCopy() []scaffolder.CopyPair {
	if s.staticDir == "" {
		return nil
	}
	pairs := make([]scaffolder.CopyPair, 0, len(staticAssets))
	for _, name := range staticAssets {
		pairs = append(pairs, scaffolder.CopyPair{
			Source:      filepath.Join(s.staticDir, name),
			Destination: name,
		})
	}
	return pairs
}

// templateData is the parameter set rendered into the templates.
type templateData struct {
	Prefix      string
	Package     string
	Display     string
	ModulePath  string
	Description string
}

// GenerateFiles renders the command skeleton. Go sources are formatted
// with go/format before they are produced.
func (s *Scaffolder) GenerateFiles() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		prefix := s.OutputName()
		data := templateData{
			Prefix:      prefix,
			Package:     strings.ReplaceAll(prefix, "_", ""),
			Display:     naming.DisplayName(prefix),
			ModulePath:  s.StringAttr("module_path"),
			Description: s.StringAttr("description"),
		}

		files := []struct {
			tmpl string
			dest string
		}{
			{"main.go.tmpl", filepath.Join("cmd", prefix, "main.go")},
			{"impl.go.tmpl", filepath.Join("internal", prefix, prefix+".go")},
		}
		if s.BoolAttr("with_tests") {
			files = append(files, struct{ tmpl, dest string }{
				"impl_test.go.tmpl", filepath.Join("internal", prefix, prefix+"_test.go"),
			})
		}

		for _, f := range files {
			if !yield(f.dest, s.render(f.tmpl, data)) {
				return
			}
		}
	}
}

// render executes an embedded template and gofmt-formats the result.
// The templates are embedded and parse-checked by tests, so a render
// failure is a programming error.
func (s *Scaffolder) render(name string, data templateData) string {
	tmpl, err := template.New(name).ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		panic(fmt.Sprintf("goproject: parse template %s: %v", name, err))
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("goproject: execute template %s: %v", name, err))
	}

	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		// A template producing unparseable Go still yields its raw
		// output so the user has something to fix on disk.
		return buf.String()
	}
	return string(formatted)
}
