// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
)

// ParseError indicates text that is not syntactically valid as a PEP 440
// version identifier or version specifier.
type ParseError struct {
	Kind   string // "version" or "specifier"
	Input  string
	Detail string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", err.Kind, err.Input, err.Detail)
}

// SemanticError indicates a specifier clause that is syntactically fine but
// violates one of the PEP's compilation rules, such as a wildcard used with
// an ordered operator.  It carries the offending operator and right-hand-side
// text so that callers can produce a precise diagnostic.
type SemanticError struct {
	Op     CmpOp
	Value  string
	Detail string
}

func (err *SemanticError) Error() string {
	return fmt.Sprintf("%v%s: %s", err.Op, err.Value, err.Detail)
}
