// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package definition

import "fmt"

// Registry is an ordered collection of definitions. Unlike a global
// registry, it is assembled explicitly and passed to whoever needs it;
// scan order is registration order.
type Registry struct {
	defs  []Definition
	names map[string]bool
}

// NewRegistry creates a registry holding the given definitions, in order.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{names: make(map[string]bool)}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register appends a definition to the scan order.
func (r *Registry) Register(d Definition) {
	name := d.Name()
	if r.names[name] {
		panic(fmt.Sprintf("definition %q already registered", name))
	}
	r.names[name] = true
	r.defs = append(r.defs, d)
}

// Definitions returns the registered definitions in scan order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Names returns the registered definition names in scan order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for _, d := range r.defs {
		names = append(names, d.Name())
	}
	return names
}

// FindByPath returns the first definition that validates path.
func (r *Registry) FindByPath(path string) (Definition, bool) {
	for _, d := range r.defs {
		if d.ValidatePath(path) {
			return d, true
		}
	}
	return nil, false
}
