// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package definition

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the marker file the Manifest definition looks for.
const ManifestFile = "scaffold.yaml"

// Manifest recognizes a project root by a scaffold.yaml marker file
// declaring the project name. An unreadable or malformed marker does not
// validate.
type Manifest struct{}

type manifest struct {
	Project string `yaml:"project"`
}

// Name returns "manifest".
func (Manifest) Name() string { return "manifest" }

// ValidatePath reports whether path contains a parseable scaffold.yaml
// with a non-empty project field.
func (Manifest) ValidatePath(path string) bool {
	data, err := os.ReadFile(filepath.Join(path, ManifestFile))
	if err != nil {
		return false
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return false
	}
	return m.Project != ""
}
