// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package definition

import (
	"os"
	"path/filepath"
)

// GoModule recognizes a Go module root by the presence of a go.mod file.
type GoModule struct{}

// Name returns "gomodule".
func (GoModule) Name() string { return "gomodule" }

// ValidatePath reports whether path contains a go.mod file.
func (GoModule) ValidatePath(path string) bool {
	return isFile(filepath.Join(path, "go.mod"))
}

// Git recognizes a git working tree root by the presence of a .git
// directory.
type Git struct{}

// Name returns "git".
func (Git) Name() string { return "git" }

// ValidatePath reports whether path contains a .git directory.
func (Git) ValidatePath(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
