// Copyright (C) 2020  Ambassador Labs (for Telepresence)
// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"strings"
)

// Wrap word-wraps the string `s` to a maximum width `w`.  Pass `w` == 0 to do
// no wrapping.
//
// In order to have some room for slop to avoid things like a short word being
// on a line by itself, most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent word-wraps the string `s` to a maximum width `w` with leading
// indent `i`.  The first line is not indented (this is assumed to be done by
// caller).  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being
// on a line by itself, most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, str string) string {
	if width <= 0 {
		return str
	}
	limit := width - 5 - indent
	if limit <= 0 {
		return str
	}

	var ret strings.Builder
	prefix := strings.Repeat(" ", indent)
	for i, paragraph := range strings.Split(str, "\n") {
		if i > 0 {
			ret.WriteString("\n")
			ret.WriteString(prefix)
		}
		wrapLine(&ret, prefix, limit, paragraph)
	}
	return ret.String()
}

// wrapLine wraps a single newline-free line, breaking at runs of spaces.  The
// spacing within a kept run is preserved, so sentence-separating double
// spaces survive wrapping.
func wrapLine(ret *strings.Builder, prefix string, limit int, line string) {
	lineLen := 0
	for len(line) > 0 {
		wordStart := strings.IndexFunc(line, func(r rune) bool { return r != ' ' })
		if wordStart < 0 {
			break
		}
		wordEnd := strings.IndexRune(line[wordStart:], ' ')
		if wordEnd < 0 {
			wordEnd = len(line)
		} else {
			wordEnd += wordStart
		}
		if lineLen > 0 && lineLen+(wordEnd-wordStart)+1 >= limit {
			ret.WriteString("\n")
			ret.WriteString(prefix)
			ret.WriteString(line[wordStart:wordEnd])
			lineLen = wordEnd - wordStart
		} else {
			if lineLen > 0 {
				ret.WriteString(line[:wordEnd])
				lineLen += wordEnd
			} else {
				ret.WriteString(line[wordStart:wordEnd])
				lineLen = wordEnd - wordStart
			}
		}
		line = line[wordEnd:]
	}
}
