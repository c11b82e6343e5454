// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package scaffolder

import (
	"fmt"
	"slices"
	"sync"
)

// Factory constructs a fresh scaffolder. The registry stores factories
// rather than instances: a scaffolder accumulates attribute state, so
// every Get hands out a clean one.
type Factory func() Scaffolder

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a scaffolder factory under the name its product reports.
func Register(f Factory) {
	name := f().Name()
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("scaffolder %q already registered", name))
	}
	factories[name] = f
}

// Get constructs a new scaffolder by name.
func Get(name string) (Scaffolder, bool) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns all registered scaffolder names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
}
