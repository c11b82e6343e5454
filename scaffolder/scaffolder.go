// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package scaffolder defines the interface for project scaffolders.
//
// A scaffolder knows which static files to copy into a project tree and
// what parametrized content to generate for it. The engine configures a
// scaffolder through typed attributes and an output-name prefix, then
// streams its files to disk.
package scaffolder

import (
	"errors"
	"iter"
)

// ErrNotConfigured is returned by [Scaffolder.Ready] while required
// attributes are missing.
var ErrNotConfigured = errors.New("scaffolder not configured")

// CopyPair describes one static file to copy: an absolute source path on
// disk, and a destination path relative to the project root. Sources must
// be absolute because the engine's file writes go through a filesystem
// rooted at /, which does not resolve paths against the working directory.
type CopyPair struct {
	Source      string
	Destination string
}

// Scaffolder is the interface that all scaffolders must implement.
type Scaffolder interface {
	// Name is the short identifier (e.g., "goproject", "docs").
	Name() string

	// Description is a human-readable description.
	Description() string

	// Questions lists the typed attributes this scaffolder requires.
	Questions() []Question

	// SetOutputName sets the file-name prefix for generated files.
	SetOutputName(name string)

	// SetAttribute stores a typed attribute. It rejects names not
	// declared by Questions, attributes that are already set, and
	// values whose type does not match the declaration.
	SetAttribute(name string, value any, kind AttributeType) error

	// Ready reports whether the scaffolder can generate files. The
	// returned error wraps [ErrNotConfigured].
	Ready() error

	// FilesToCopy lists static files to copy into the project tree.
	FilesToCopy() []CopyPair

	// GenerateFiles lazily produces (relative path, content) pairs.
	// The sequence is single-pass; content is rendered as it is pulled.
	GenerateFiles() iter.Seq2[string, string]
}
