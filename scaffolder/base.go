// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package scaffolder

import "fmt"

// Base implements the attribute bookkeeping shared by scaffolders.
// Concrete scaffolders embed it and declare their questions at
// construction time.
type Base struct {
	questions  []Question
	attributes map[string]any
	outputName string
}

// NewBase creates attribute storage for the given questions.
func NewBase(questions []Question) Base {
	return Base{
		questions:  questions,
		attributes: make(map[string]any),
	}
}

// Questions lists the declared attributes.
func (b *Base) Questions() []Question {
	return b.questions
}

// SetOutputName sets the file-name prefix for generated files.
func (b *Base) SetOutputName(name string) {
	b.outputName = name
}

// OutputName returns the configured file-name prefix.
func (b *Base) OutputName() string {
	return b.outputName
}

// SetAttribute stores a typed attribute value.
func (b *Base) SetAttribute(name string, value any, kind AttributeType) error {
	q, ok := b.question(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if q.Kind != kind {
		return fmt.Errorf("%w: %q declared as %s, got %s", ErrWrongType, name, q.Kind, kind)
	}
	if err := kind.check(value); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	if _, exists := b.attributes[name]; exists {
		return fmt.Errorf("%w: %q", ErrAttributeSet, name)
	}
	b.attributes[name] = value
	return nil
}

// Ready returns an error wrapping [ErrNotConfigured] while any declared
// attribute is unset.
func (b *Base) Ready() error {
	for _, q := range b.questions {
		if _, ok := b.attributes[q.Name]; !ok {
			return fmt.Errorf("%w: attribute %q not set", ErrNotConfigured, q.Name)
		}
	}
	return nil
}

// StringAttr returns a string attribute, or "" if unset.
func (b *Base) StringAttr(name string) string {
	v, _ := b.attributes[name].(string)
	return v
}

// BoolAttr returns a bool attribute, or false if unset.
func (b *Base) BoolAttr(name string) bool {
	v, _ := b.attributes[name].(bool)
	return v
}

// IntAttr returns an int attribute, or 0 if unset.
func (b *Base) IntAttr(name string) int {
	v, _ := b.attributes[name].(int)
	return v
}

// StringListAttr returns a string-list attribute, or nil if unset.
func (b *Base) StringListAttr(name string) []string {
	v, _ := b.attributes[name].([]string)
	return v
}

func (b *Base) question(name string) (Question, bool) {
	for _, q := range b.questions {
		if q.Name == name {
			return q, true
		}
	}
	return Question{}, false
}
