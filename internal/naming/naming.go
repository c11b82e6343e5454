// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming derives output naming conventions from a raw module name.
//
// A single user-supplied name produces two forms that must always be
// computed together: the file-name prefix used for generated file names
// and the display name used inside generated content.
package naming

import (
	"strings"
	"unicode"
)

// FilePrefix returns the file-name form of a module name: spaces replaced
// with underscores, lowercased.
func FilePrefix(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// DisplayName returns the display form of a module name: each word of the
// file prefix title-cased and joined without separators.
//
// The word boundary rule matches title-casing: a letter that follows a
// non-letter starts a new word. "my cool module" becomes "MyCoolModule"
// and "version2 parser" becomes "Version2Parser".
func DisplayName(name string) string {
	prefix := FilePrefix(name)

	var b strings.Builder
	b.Grow(len(prefix))
	prevLetter := false
	for _, r := range prefix {
		if r == '_' {
			prevLetter = false
			continue
		}
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
