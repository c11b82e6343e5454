// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package scaffolder

import (
	"errors"
	"fmt"
)

// Attribute storage errors.
var (
	// ErrUnknownAttribute is returned when an attribute name was not
	// declared by the scaffolder's questions.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrAttributeSet is returned when an attribute is set twice.
	ErrAttributeSet = errors.New("attribute already set")

	// ErrWrongType is returned when a value or declared kind does not
	// match the question's type.
	ErrWrongType = errors.New("wrong attribute type")
)

// AttributeType identifies the type of a scaffolder attribute.
type AttributeType int

const (
	TypeString AttributeType = iota
	TypeBool
	TypeInt
	TypeStringList
)

func (t AttributeType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// check validates that value matches the attribute type.
func (t AttributeType) check(value any) error {
	var ok bool
	switch t {
	case TypeString:
		_, ok = value.(string)
	case TypeBool:
		_, ok = value.(bool)
	case TypeInt:
		_, ok = value.(int)
	case TypeStringList:
		_, ok = value.([]string)
	}
	if !ok {
		return fmt.Errorf("%w: %T is not a %s", ErrWrongType, value, t)
	}
	return nil
}

// Question declares one attribute a scaffolder needs before it can
// generate files. The prompt is shown by interactive front ends.
type Question struct {
	Name   string
	Prompt string
	Kind   AttributeType
}
