// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package definition recognizes project types by inspecting a root path.
//
// A definition validates whether a directory is the root of its project
// type. Definitions are assembled into an explicit [Registry] that the
// engine consults when a project root is configured; the first definition
// to accept a path wins.
package definition

// Definition identifies one project type.
type Definition interface {
	// Name is the short identifier (e.g., "gomodule", "git").
	Name() string

	// ValidatePath reports whether path is a root of this project type.
	ValidatePath(path string) bool
}
