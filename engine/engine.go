// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package engine orchestrates project scaffolding.
//
// The engine holds the configured project root, module name, and active
// scaffolder, and streams the scaffolder's files through the file writer.
// It is intended for a single configure-then-generate cycle; file writes
// are not transactional and a failed copy does not roll back prior writes.
package engine

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/albertocavalcante/skaff/definition"
	"github.com/albertocavalcante/skaff/internal/filehandler"
	"github.com/albertocavalcante/skaff/internal/naming"
	"github.com/albertocavalcante/skaff/scaffolder"
)

// Engine configuration errors.
var (
	// ErrNotConfigured is returned by GenerateFiles while a prerequisite
	// is missing. Scaffolder readiness failures are wrapped into it.
	ErrNotConfigured = errors.New("engine not configured")

	// ErrNoValidDefinition is returned when a root path matches no
	// registered project-type definition.
	ErrNoValidDefinition = errors.New("no valid definition identified")

	// ErrNoScaffolder is returned when an attribute is stored before a
	// scaffolder has been set.
	ErrNoScaffolder = errors.New("scaffolder not yet set")
)

// Engine coordinates definitions, a scaffolder, and the file writer.
type Engine struct {
	definitions *definition.Registry
	files       *filehandler.Handler
	log         zerolog.Logger

	definition string
	rootPath   string
	moduleName string
	filePrefix string
	scaffolder scaffolder.Scaffolder
}

// Option configures an Engine.
type Option func(*Engine)

// WithFilesystem routes all file writes through fs instead of the
// operating system filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(e *Engine) {
		e.files = filehandler.New(fs)
	}
}

// WithLogger sets the logger used to report skipped copy failures.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an engine that recognizes project roots against the given
// definition registry.
func New(definitions *definition.Registry, opts ...Option) *Engine {
	e := &Engine{
		definitions: definitions,
		files:       filehandler.NewOS(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetProjectRootPath validates path against the registered definitions and
// adopts the first one that accepts it. The root is stored as an absolute
// path: destinations joined onto it later go through a filesystem rooted
// at /, which would resolve a relative root against / instead of the
// working directory. On failure the previously configured root, if any,
// is left untouched.
func (e *Engine) SetProjectRootPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve project root %s: %w", path, err)
	}
	d, ok := e.definitions.FindByPath(abs)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoValidDefinition, path)
	}
	e.definition = d.Name()
	e.rootPath = abs
	return nil
}

// SetModuleName derives the file-name prefix and the display name from
// the raw module name. Both are always recomputed together; calling again
// overwrites both.
func (e *Engine) SetModuleName(name string) {
	e.filePrefix = naming.FilePrefix(name)
	e.moduleName = naming.DisplayName(name)
}

// SetScaffolder stores the scaffolder the engine will generate files
// with. Any previously set scaffolder is replaced.
func (e *Engine) SetScaffolder(s scaffolder.Scaffolder) {
	e.scaffolder = s
}

// StoreScaffolderAttribute forwards a typed attribute to the active
// scaffolder, which owns collision and type validation.
func (e *Engine) StoreScaffolderAttribute(name string, value any, kind scaffolder.AttributeType) error {
	if e.scaffolder == nil {
		return ErrNoScaffolder
	}
	return e.scaffolder.SetAttribute(name, value, kind)
}

// Definition returns the name of the adopted project-type definition.
func (e *Engine) Definition() string { return e.definition }

// RootPath returns the configured project root path.
func (e *Engine) RootPath() string { return e.rootPath }

// ModuleName returns the derived display name of the module.
func (e *Engine) ModuleName() string { return e.moduleName }

// FilePrefix returns the derived file-name prefix.
func (e *Engine) FilePrefix() string { return e.filePrefix }

// GenerateFiles produces the scaffolder's files under the project root
// and returns the sequence of written paths.
//
// The configuration check runs before any filesystem side effect; its
// failure is returned directly. Draining the sequence performs the actual
// writes: first the static copies (a missing source is skipped, a failed
// copy is logged and skipped), then the generated content (a failed write
// is yielded as an error and aborts the sequence). The sequence is a
// single pass and is not restartable; every call writes to disk again.
func (e *Engine) GenerateFiles() (iter.Seq2[string, error], error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}

	return func(yield func(string, error) bool) {
		e.scaffolder.SetOutputName(e.filePrefix)

		for _, pair := range e.scaffolder.FilesToCopy() {
			if !e.files.IsFile(pair.Source) {
				continue
			}
			dest := filepath.Join(e.rootPath, pair.Destination)
			written, err := e.files.CopyFile(pair.Source, dest)
			if err != nil {
				e.log.Error().
					Err(err).
					Str("source", pair.Source).
					Str("destination", dest).
					Msg("unable to copy file")
				continue
			}
			if !yield(written, nil) {
				return
			}
		}

		for path, content := range e.scaffolder.GenerateFiles() {
			dest := filepath.Join(e.rootPath, path)
			written, err := e.files.AddContent(dest, content)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(written, nil) {
				return
			}
		}
	}, nil
}

// checkReady verifies that all prerequisites for file generation are set.
func (e *Engine) checkReady() error {
	if e.rootPath == "" {
		return fmt.Errorf("%w: project root path not set", ErrNotConfigured)
	}
	if e.moduleName == "" {
		return fmt.Errorf("%w: module name not set", ErrNotConfigured)
	}
	if e.scaffolder == nil {
		return fmt.Errorf("%w: scaffolder not set", ErrNotConfigured)
	}
	if err := e.scaffolder.Ready(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}
	return nil
}
