// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"errors"
	"iter"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/albertocavalcante/skaff/definition"
	"github.com/albertocavalcante/skaff/scaffolder"
)

// fakeDefinition validates any path with the given suffix.
type fakeDefinition struct {
	name   string
	suffix string
}

func (f fakeDefinition) Name() string { return f.name }

func (f fakeDefinition) ValidatePath(path string) bool {
	return strings.HasSuffix(path, f.suffix)
}

// fakeScaffolder is a minimal Scaffolder backed by fixed file lists.
type fakeScaffolder struct {
	scaffolder.Base
	copies    []scaffolder.CopyPair
	generated [][2]string // (relative path, content)
	notReady  bool
}

func (f *fakeScaffolder) Name() string        { return "fake" }
func (f *fakeScaffolder) Description() string { return "Fake scaffolder for engine tests" }

func (f *fakeScaffolder) Ready() error {
	if f.notReady {
		return scaffolder.ErrNotConfigured
	}
	return f.Base.Ready()
}

func (f *fakeScaffolder) FilesToCopy() []scaffolder.CopyPair { return f.copies }

func (f *fakeScaffolder) GenerateFiles() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, g := range f.generated {
			if !yield(g[0], g[1]) {
				return
			}
		}
	}
}

func newTestEngine(fs billy.Filesystem, opts ...Option) *Engine {
	reg := definition.NewRegistry(fakeDefinition{name: "project", suffix: "/project"})
	opts = append([]Option{WithFilesystem(fs)}, opts...)
	return New(reg, opts...)
}

// configure sets root, module name and scaffolder on e.
func configure(t *testing.T, e *Engine, s scaffolder.Scaffolder) {
	t.Helper()
	if err := e.SetProjectRootPath("/project"); err != nil {
		t.Fatalf("SetProjectRootPath: %v", err)
	}
	e.SetModuleName("my cool module")
	e.SetScaffolder(s)
}

// drain collects all written paths, failing the test on a yielded error.
func drain(t *testing.T, seq iter.Seq2[string, error]) []string {
	t.Helper()
	var written []string
	for path, err := range seq {
		if err != nil {
			t.Fatalf("generation error: %v", err)
		}
		written = append(written, path)
	}
	return written
}

func TestSetProjectRootPath(t *testing.T) {
	reg := definition.NewRegistry(
		fakeDefinition{name: "never", suffix: "/nope"},
		fakeDefinition{name: "broad", suffix: ""},
	)
	e := New(reg, WithFilesystem(memfs.New()))

	t.Run("first matching definition wins", func(t *testing.T) {
		if err := e.SetProjectRootPath("/any/path"); err != nil {
			t.Fatalf("SetProjectRootPath: %v", err)
		}
		if got := e.Definition(); got != "broad" {
			t.Errorf("got definition %q, want %q", got, "broad")
		}
		if got := e.RootPath(); got != "/any/path" {
			t.Errorf("got root path %q, want %q", got, "/any/path")
		}
	})

	t.Run("no match leaves prior state unchanged", func(t *testing.T) {
		empty := New(definition.NewRegistry(), WithFilesystem(memfs.New()))

		if err := empty.SetProjectRootPath("/first"); !errors.Is(err, ErrNoValidDefinition) {
			t.Fatalf("got %v, want ErrNoValidDefinition", err)
		}
		if got := empty.RootPath(); got != "" {
			t.Errorf("root path set despite failure: %q", got)
		}

		// Same against an engine with a previously accepted root.
		if err := e.SetProjectRootPath("/any/path"); err != nil {
			t.Fatal(err)
		}
		reg2 := definition.NewRegistry(fakeDefinition{name: "narrow", suffix: "/only"})
		e2 := New(reg2, WithFilesystem(memfs.New()))
		if err := e2.SetProjectRootPath("/only"); err != nil {
			t.Fatal(err)
		}
		if err := e2.SetProjectRootPath("/rejected"); !errors.Is(err, ErrNoValidDefinition) {
			t.Fatalf("got %v, want ErrNoValidDefinition", err)
		}
		if got := e2.RootPath(); got != "/only" {
			t.Errorf("prior root path lost: %q", got)
		}
		if got := e2.Definition(); got != "narrow" {
			t.Errorf("prior definition lost: %q", got)
		}
	})
}

func TestSetProjectRootPathRelative(t *testing.T) {
	t.Chdir(t.TempDir())

	reg := definition.NewRegistry(fakeDefinition{name: "any", suffix: ""})
	fs := memfs.New()
	e := New(reg, WithFilesystem(fs))

	if err := e.SetProjectRootPath("."); err != nil {
		t.Fatalf("SetProjectRootPath: %v", err)
	}

	want, err := filepath.Abs(".")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.RootPath(); got != want {
		t.Errorf("got root path %q, want absolute %q", got, want)
	}

	// A relative root must never reach the file writer: writes land
	// under the resolved working directory, not under /.
	e.SetModuleName("rel tool")
	e.SetScaffolder(&fakeScaffolder{
		Base:      scaffolder.NewBase(nil),
		generated: [][2]string{{"gen.txt", "g"}},
	})

	seq, err := e.GenerateFiles()
	if err != nil {
		t.Fatalf("GenerateFiles: %v", err)
	}
	written := drain(t, seq)

	wantPath := filepath.Join(want, "gen.txt")
	if len(written) != 1 || written[0] != wantPath {
		t.Errorf("got written %v, want [%s]", written, wantPath)
	}
	if _, err := fs.Stat(wantPath); err != nil {
		t.Errorf("file missing at %s: %v", wantPath, err)
	}
}

func TestSetModuleName(t *testing.T) {
	e := newTestEngine(memfs.New())

	e.SetModuleName("my cool module")
	if got := e.FilePrefix(); got != "my_cool_module" {
		t.Errorf("got prefix %q, want %q", got, "my_cool_module")
	}
	if got := e.ModuleName(); got != "MyCoolModule" {
		t.Errorf("got module name %q, want %q", got, "MyCoolModule")
	}

	t.Run("second call overwrites both derived fields", func(t *testing.T) {
		e.SetModuleName("Other Name")
		if got := e.FilePrefix(); got != "other_name" {
			t.Errorf("got prefix %q, want %q", got, "other_name")
		}
		if got := e.ModuleName(); got != "OtherName" {
			t.Errorf("got module name %q, want %q", got, "OtherName")
		}
	})
}

func TestStoreScaffolderAttribute(t *testing.T) {
	e := newTestEngine(memfs.New())

	t.Run("before scaffolder is set", func(t *testing.T) {
		err := e.StoreScaffolderAttribute("name", "value", scaffolder.TypeString)
		if !errors.Is(err, ErrNoScaffolder) {
			t.Errorf("got %v, want ErrNoScaffolder", err)
		}
	})

	t.Run("forwards to scaffolder", func(t *testing.T) {
		s := &fakeScaffolder{Base: scaffolder.NewBase([]scaffolder.Question{
			{Name: "author", Prompt: "Author name", Kind: scaffolder.TypeString},
		})}
		e.SetScaffolder(s)

		if err := e.StoreScaffolderAttribute("author", "someone", scaffolder.TypeString); err != nil {
			t.Fatalf("StoreScaffolderAttribute: %v", err)
		}
		if got := s.StringAttr("author"); got != "someone" {
			t.Errorf("got %q, want %q", got, "someone")
		}

		// Scaffolder-owned validation surfaces unchanged.
		err := e.StoreScaffolderAttribute("color", "red", scaffolder.TypeString)
		if !errors.Is(err, scaffolder.ErrUnknownAttribute) {
			t.Errorf("got %v, want scaffolder.ErrUnknownAttribute", err)
		}
	})
}

func TestGenerateFilesNotConfigured(t *testing.T) {
	tests := []struct {
		name      string
		configure func(e *Engine)
	}{
		{"nothing set", func(e *Engine) {}},
		{"missing root path", func(e *Engine) {
			e.SetModuleName("name")
			e.SetScaffolder(&fakeScaffolder{Base: scaffolder.NewBase(nil)})
		}},
		{"missing module name", func(e *Engine) {
			_ = e.SetProjectRootPath("/project")
			e.SetScaffolder(&fakeScaffolder{Base: scaffolder.NewBase(nil)})
		}},
		{"missing scaffolder", func(e *Engine) {
			_ = e.SetProjectRootPath("/project")
			e.SetModuleName("name")
		}},
		{"scaffolder not ready", func(e *Engine) {
			_ = e.SetProjectRootPath("/project")
			e.SetModuleName("name")
			e.SetScaffolder(&fakeScaffolder{Base: scaffolder.NewBase(nil), notReady: true})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memfs.New()
			e := newTestEngine(fs)
			tt.configure(e)

			seq, err := e.GenerateFiles()
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("got %v, want ErrNotConfigured", err)
			}
			if seq != nil {
				t.Error("expected nil sequence on configuration failure")
			}

			// No I/O may happen before the readiness check passes.
			entries, readErr := fs.ReadDir("/")
			if readErr == nil && len(entries) != 0 {
				t.Errorf("filesystem touched despite configuration failure: %v", entries)
			}
		})
	}
}

func TestGenerateFilesScaffolderReadinessWrapped(t *testing.T) {
	e := newTestEngine(memfs.New())
	configure(t, e, &fakeScaffolder{Base: scaffolder.NewBase(nil), notReady: true})

	_, err := e.GenerateFiles()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
	if !errors.Is(err, scaffolder.ErrNotConfigured) {
		t.Fatalf("scaffolder readiness failure not wrapped: %v", err)
	}
}

func TestGenerateFiles(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "/templates/init.tmpl", []byte("static\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &fakeScaffolder{
		Base: scaffolder.NewBase(nil),
		copies: []scaffolder.CopyPair{
			{Source: "/templates/init.tmpl", Destination: "init.tmpl"},
			{Source: "/templates/missing.tmpl", Destination: "missing.tmpl"},
		},
		generated: [][2]string{
			{"parser.go", "package parser\n"},
			{"docs/readme.md", "# Readme\n"},
		},
	}

	e := newTestEngine(fs)
	configure(t, e, s)

	seq, err := e.GenerateFiles()
	if err != nil {
		t.Fatalf("GenerateFiles: %v", err)
	}
	written := drain(t, seq)

	// Copy phase first, missing source silently skipped, then the
	// generated files in production order.
	want := []string{
		"/project/init.tmpl",
		"/project/parser.go",
		"/project/docs/readme.md",
	}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("written paths mismatch (-want +got):\n%s", diff)
	}

	t.Run("output name set from prefix", func(t *testing.T) {
		if got := s.OutputName(); got != "my_cool_module" {
			t.Errorf("got output name %q, want %q", got, "my_cool_module")
		}
	})

	t.Run("contents on disk", func(t *testing.T) {
		got, err := util.ReadFile(fs, "/project/parser.go")
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "package parser\n" {
			t.Errorf("got %q, want %q", got, "package parser\n")
		}
	})
}

func TestGenerateFilesCopyFailureSkipped(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "/templates/a.tmpl", []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := util.WriteFile(fs, "/templates/b.tmpl", []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A file occupying the destination directory path makes the first
	// copy fail while leaving the second one viable.
	if err := util.WriteFile(fs, "/project/blocked", []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	s := &fakeScaffolder{
		Base: scaffolder.NewBase(nil),
		copies: []scaffolder.CopyPair{
			{Source: "/templates/a.tmpl", Destination: "blocked/a.tmpl"},
			{Source: "/templates/b.tmpl", Destination: "b.tmpl"},
		},
		generated: [][2]string{{"gen.txt", "generated\n"}},
	}

	e := newTestEngine(fs, WithLogger(log))
	configure(t, e, s)

	seq, err := e.GenerateFiles()
	if err != nil {
		t.Fatalf("GenerateFiles: %v", err)
	}
	written := drain(t, seq)

	want := []string{"/project/b.tmpl", "/project/gen.txt"}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("written paths mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(logBuf.String(), "unable to copy file") {
		t.Errorf("copy failure not logged: %s", logBuf.String())
	}
}

func TestGenerateFilesLazy(t *testing.T) {
	fs := memfs.New()
	s := &fakeScaffolder{
		Base: scaffolder.NewBase(nil),
		generated: [][2]string{
			{"first.txt", "1"},
			{"second.txt", "2"},
		},
	}

	e := newTestEngine(fs)
	configure(t, e, s)

	seq, err := e.GenerateFiles()
	if err != nil {
		t.Fatalf("GenerateFiles: %v", err)
	}

	// Stop after the first yielded path; the second write must not
	// have happened.
	for path, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		if path != "/project/first.txt" {
			t.Fatalf("got %q, want /project/first.txt", path)
		}
		break
	}

	if _, err := fs.Stat("/project/first.txt"); err != nil {
		t.Error("first file not written")
	}
	if _, err := fs.Stat("/project/second.txt"); err == nil {
		t.Error("second file written despite early stop")
	}
}
