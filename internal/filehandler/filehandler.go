// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package filehandler performs the filesystem writes behind scaffolding.
//
// All operations go through a [billy.Filesystem] so that production code
// writes to the real filesystem while tests run against an in-memory one.
package filehandler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Handler copies and writes files for the scaffolder engine.
type Handler struct {
	fs billy.Filesystem
}

// New creates a handler backed by the given filesystem.
func New(fs billy.Filesystem) *Handler {
	return &Handler{fs: fs}
}

// NewOS creates a handler backed by the operating system filesystem.
// The filesystem is rooted at /, so callers must pass absolute paths;
// a relative path would resolve against / rather than the working
// directory.
func NewOS() *Handler {
	return &Handler{fs: osfs.New("/")}
}

// IsFile reports whether path exists and is a regular file.
func (h *Handler) IsFile(path string) bool {
	info, err := h.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// CopyFile copies source to destination, creating parent directories as
// needed, and returns the path that was written.
func (h *Handler) CopyFile(source, destination string) (string, error) {
	src, err := h.fs.Open(source)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", source, err)
	}
	defer src.Close()

	if err := h.fs.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", destination, err)
	}

	dst, err := h.fs.Create(destination)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", destination, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copy %s to %s: %w", source, destination, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", destination, err)
	}

	return destination, nil
}

// AddContent appends content to destination, creating the file and its
// parent directories as needed, and returns the path that was written.
func (h *Handler) AddContent(destination, content string) (string, error) {
	if err := h.fs.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", destination, err)
	}

	f, err := h.fs.OpenFile(destination, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", destination, err)
	}

	if _, err := f.Write([]byte(content)); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", destination, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", destination, err)
	}

	return destination, nil
}
