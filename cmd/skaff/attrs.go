// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/skaff/scaffolder"
)

// attr is a typed attribute ready to be stored on the engine.
type attr struct {
	Name  string
	Value any
	Kind  scaffolder.AttributeType
}

// resolveAttrs combines attributes from a yaml file and name=value
// flags, in that order, typed against the scaffolder's questions. Flag
// values win over file values by being applied later: the scaffolder
// rejects redefinition, so a collision surfaces as an error rather than
// a silent override.
func resolveAttrs(questions []scaffolder.Question, flags []string, file string) ([]attr, error) {
	var attrs []attr

	if file != "" {
		fromFile, err := fileAttrs(questions, file)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, fromFile...)
	}

	for _, spec := range flags {
		a, err := flagAttr(questions, spec)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	return attrs, nil
}

// flagAttr parses one name=value flag, converting the value to the type
// the scaffolder declared for it.
func flagAttr(questions []scaffolder.Question, spec string) (attr, error) {
	name, raw, ok := strings.Cut(spec, "=")
	if !ok {
		return attr{}, fmt.Errorf("attribute %q: want name=value", spec)
	}

	q, ok := findQuestion(questions, name)
	if !ok {
		return attr{}, fmt.Errorf("%w: %q", scaffolder.ErrUnknownAttribute, name)
	}

	switch q.Kind {
	case scaffolder.TypeString:
		return attr{Name: name, Value: raw, Kind: q.Kind}, nil
	case scaffolder.TypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return attr{}, fmt.Errorf("attribute %q: %q is not a bool", name, raw)
		}
		return attr{Name: name, Value: v, Kind: q.Kind}, nil
	case scaffolder.TypeInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return attr{}, fmt.Errorf("attribute %q: %q is not an int", name, raw)
		}
		return attr{Name: name, Value: v, Kind: q.Kind}, nil
	case scaffolder.TypeStringList:
		return attr{Name: name, Value: strings.Split(raw, ","), Kind: q.Kind}, nil
	default:
		return attr{}, fmt.Errorf("attribute %q: unsupported type %s", name, q.Kind)
	}
}

// fileAttrs reads a yaml mapping of attribute values, typed against the
// scaffolder's questions.
func fileAttrs(questions []scaffolder.Question, path string) ([]attr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attribute file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse attribute file %s: %w", path, err)
	}

	// Deterministic application order: declared question order.
	var attrs []attr
	for _, q := range questions {
		value, ok := raw[q.Name]
		if !ok {
			continue
		}
		typed, err := yamlValue(q, value)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{Name: q.Name, Value: typed, Kind: q.Kind})
		delete(raw, q.Name)
	}

	for name := range raw {
		return nil, fmt.Errorf("%w: %q in %s", scaffolder.ErrUnknownAttribute, name, path)
	}
	return attrs, nil
}

// yamlValue coerces a decoded yaml value to the question's type.
func yamlValue(q scaffolder.Question, value any) (any, error) {
	switch q.Kind {
	case scaffolder.TypeString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case scaffolder.TypeBool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case scaffolder.TypeInt:
		if v, ok := value.(int); ok {
			return v, nil
		}
	case scaffolder.TypeStringList:
		items, ok := value.([]any)
		if !ok {
			break
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("attribute %q: list item %v is not a string", q.Name, item)
			}
			list = append(list, s)
		}
		return list, nil
	}
	return nil, fmt.Errorf("attribute %q: %v is not a %s", q.Name, value, q.Kind)
}

func findQuestion(questions []scaffolder.Question, name string) (scaffolder.Question, bool) {
	for _, q := range questions {
		if q.Name == name {
			return q, true
		}
	}
	return scaffolder.Question{}, false
}
