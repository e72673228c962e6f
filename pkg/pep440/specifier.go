// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strings"
)

// CmpOp is a version specifier's comparison operator.  The set of operators
// is closed; ToRanges handles every member explicitly.
type CmpOp int

const (
	CmpOpCompatible CmpOp = iota // ~=
	CmpOpEQ                      // ==
	CmpOpNE                      // !=
	CmpOpLE                      // <=
	CmpOpGE                      // >=
	CmpOpLT                      // <
	CmpOpGT                      // >
	_CmpOpEnd
)

// String implements fmt.Stringer.
func (op CmpOp) String() string {
	str, ok := map[CmpOp]string{
		CmpOpCompatible: "~=",
		CmpOpEQ:         "==",
		CmpOpNE:         "!=",
		CmpOpLE:         "<=",
		CmpOpGE:         ">=",
		CmpOpLT:         "<",
		CmpOpGT:         ">",
	}[op]
	if !ok {
		panic(fmt.Errorf("invalid CmpOp: %d", int(op)))
	}
	return str
}

// Specifier is a single version clause: a comparison operator and its
// right-hand side.  The right-hand side is kept as raw text rather than as a
// parsed Version because == and != accept wildcard forms ("1.2.*") that are
// not themselves valid versions; everything beyond operator recognition is
// validated by ToRanges, at evaluation time.
type Specifier struct {
	Op    CmpOp
	Value string
}

// String implements fmt.Stringer.
func (spec Specifier) String() string {
	return spec.Op.String() + spec.Value
}

// SatisfiedBy reports whether ver is in the set of versions that the clause
// accepts.  A clause that cannot be compiled (see SemanticError) returns that
// failure rather than a boolean.
func (spec Specifier) SatisfiedBy(ver Version) (bool, error) {
	ranges, err := spec.Op.ToRanges(spec.Value)
	if err != nil {
		return false, err
	}
	for _, r := range ranges {
		if r.Contains(ver) {
			return true, nil
		}
	}
	return false, nil
}

// Specifiers is a series of version clauses.  The comma separating clauses
// in the textual form is a logical "and": a candidate version must match
// every clause.  Clause order never affects the result, only how soon a
// non-match short-circuits.
type Specifiers []Specifier

// ParseSpecifiers parses a version specifier like "~= 0.9, != 0.9.4" in to
// its clause list.  Whitespace around operators, versions, and commas is
// ignored; empty clauses are skipped, so "" parses to no clauses (which
// every version satisfies).
func ParseSpecifiers(str string) (Specifiers, error) {
	clauseStrs := strings.FieldsFunc(str, func(r rune) bool { return r == ',' })
	ret := make(Specifiers, 0, len(clauseStrs))
	for _, clauseStr := range clauseStrs {
		clauseStr = strings.TrimSpace(clauseStr)
		if clauseStr == "" {
			continue
		}
		clause, err := parseSpecifier(clauseStr)
		if err != nil {
			return nil, fmt.Errorf("pep440.ParseSpecifiers: %w", err)
		}
		ret = append(ret, clause)
	}
	return ret, nil
}

func parseSpecifier(str string) (Specifier, error) {
	var ret Specifier
	var rest string
	switch {
	case strings.HasPrefix(str, "~="):
		ret.Op, rest = CmpOpCompatible, str[2:]
	case strings.HasPrefix(str, "==="):
		return ret, &ParseError{Kind: "specifier", Input: str,
			Detail: "=== (arbitrary equality) is not supported; versions must be PEP 440 compliant"}
	case strings.HasPrefix(str, "=="):
		ret.Op, rest = CmpOpEQ, str[2:]
	case strings.HasPrefix(str, "!="):
		ret.Op, rest = CmpOpNE, str[2:]
	case strings.HasPrefix(str, "<="):
		ret.Op, rest = CmpOpLE, str[2:]
	case strings.HasPrefix(str, ">="):
		ret.Op, rest = CmpOpGE, str[2:]
	case strings.HasPrefix(str, "<"):
		ret.Op, rest = CmpOpLT, str[1:]
	case strings.HasPrefix(str, ">"):
		ret.Op, rest = CmpOpGT, str[1:]
	default:
		return ret, &ParseError{Kind: "specifier", Input: str,
			Detail: "missing comparison operator"}
	}
	ret.Value = strings.TrimSpace(rest)
	if ret.Value == "" {
		return ret, &ParseError{Kind: "specifier", Input: str,
			Detail: "missing version after comparison operator"}
	}
	return ret, nil
}

// String implements fmt.Stringer.
func (specs Specifiers) String() string {
	clauses := make([]string, 0, len(specs))
	for _, spec := range specs {
		clauses = append(clauses, spec.String())
	}
	return strings.Join(clauses, ",")
}

// SatisfiedBy reports whether ver satisfies every clause in the collection.
// The first clause that fails to compile aborts evaluation and is returned
// as the error.
func (specs Specifiers) SatisfiedBy(ver Version) (bool, error) {
	for _, spec := range specs {
		ok, err := spec.SatisfiedBy(ver)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
