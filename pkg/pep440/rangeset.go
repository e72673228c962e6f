// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strings"
)

// Range is a half-open interval [Low, High) over the version ordering.  A
// compiled specifier clause is a union of Ranges; membership in any one of
// them satisfies the clause.  Only != compiles to more than one Range.
type Range struct {
	Low  Version
	High Version
}

// Contains reports whether Low <= ver < High.
func (r Range) Contains(ver Version) bool {
	return r.Low.Cmp(ver) <= 0 && ver.Cmp(r.High) < 0
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Low, r.High)
}

// parseVersionWildcard parses a clause's right-hand side, which is either a
// version or a version followed by the ".*" wildcard suffix.
func parseVersionWildcard(value string) (*Version, bool, error) {
	vstr, wildcard := value, false
	if strings.HasSuffix(vstr, ".*") {
		vstr = strings.TrimSuffix(vstr, ".*")
		wildcard = true
	}
	ver, err := parseVersion(vstr)
	if err != nil {
		return nil, false, err
	}
	return ver, wildcard, nil
}

// ToRanges compiles a comparison like ">= 1.2" in to a union of half-open
// ranges over the version ordering.  It takes the right-hand side as a
// string, not a Version, because == and != accept wildcards, which are not
// valid versions.
//
// Syntactic failures surface as a ParseError, rule violations (wildcards
// with an ordered operator, a local version on the right-hand side of an
// ordered operator, "~=" with a single release segment) as a SemanticError.
func (op CmpOp) ToRanges(value string) ([]Range, error) {
	ret, err := op.toRanges(value)
	if err != nil {
		return nil, fmt.Errorf("pep440.CmpOp.ToRanges: %w", err)
	}
	return ret, nil
}

func (op CmpOp) toRanges(value string) ([]Range, error) {
	ver, wildcard, err := parseVersionWildcard(value)
	if err != nil {
		return nil, err
	}
	if wildcard {
		return op.wildcardToRanges(*ver, value)
	}

	// Local versions may appear only in equality-style clauses; the ordering
	// against a local version is deliberately left undefined by the PEP.
	if op != CmpOpEQ && op != CmpOpNE && len(ver.Local) > 0 {
		return nil, &SemanticError{Op: op, Value: value,
			Detail: "ordered comparison against a local version (+ suffix) is undefined"}
	}

	switch op {
	case CmpOpLE:
		return []Range{{Low: Zero, High: ver.Next()}}, nil
	case CmpOpGE:
		return []Range{{Low: *ver, High: Infinity}}, nil
	case CmpOpEQ:
		return []Range{{Low: *ver, High: ver.Next()}}, nil
	case CmpOpNE:
		// The two ranges are the complement of the == range; OR semantics
		// across the union make them one clause.
		return []Range{
			{Low: Zero, High: *ver},
			{Low: ver.Next(), High: Infinity},
		}, nil
	case CmpOpGT:
		// "The exclusive ordered comparison >V MUST NOT allow a post-release
		// of the given version unless V itself is a post release."
		low := ver.clone()
		switch {
		case low.Dev != nil:
			*low.Dev++
		case low.Post != nil:
			*low.Post++
		default:
			// Start after every possible post-release of V.  There is no
			// "last" release segment to increment (X.Y is shorthand for
			// X.Y.0.0...), so tack on a post-release number that sorts
			// after any real one.
			low.Post = intPtr(maxSegment)
		}
		return []Range{{Low: low, High: Infinity}}, nil
	case CmpOpLT:
		// "The exclusive ordered comparison <V MUST NOT allow a pre-release
		// of the specified version unless the specified version is itself a
		// pre-release."
		if ver.Pre == nil && ver.Dev == nil {
			high := ver.clone()
			high.Dev = intPtr(0)
			high.Post = nil
			high.Local = nil
			return []Range{{Low: Zero, High: high}}, nil
		}
		// V is itself some kind of pre-release, so the strict bound alone
		// already excludes what it should.
		return []Range{{Low: Zero, High: ver.clone()}}, nil
	case CmpOpCompatible:
		// ~= X.Y.suffixes is the same as >= X.Y.suffixes, == X.*; i.e. the
		// half-open range [X.Y.suffixes, (X+1).dev0).
		if len(ver.Release) < 2 {
			return nil, &SemanticError{Op: op, Value: value,
				Detail: "requires a version with at least two release segments (X.Y)"}
		}
		high := Version{PublicVersion: PublicVersion{
			Epoch:   ver.Epoch,
			Release: append([]int(nil), ver.Release...),
			Dev:     intPtr(0),
		}}
		high.Release = high.Release[:len(high.Release)-1]
		high.Release[len(high.Release)-1]++
		return []Range{{Low: *ver, High: high}}, nil
	default:
		panic(fmt.Errorf("invalid CmpOp: %d", int(op)))
	}
}

// wildcardToRanges handles the "== X.*" and "!= X.*" prefix-match forms.
// X.* corresponds to the half-open range [X.dev0, (X+1).dev0), where "X+1"
// increments X's last maturity segment: ".*" may legitimately follow a
// .postN or pre-release segment, not just a release segment.
func (op CmpOp) wildcardToRanges(ver Version, value string) ([]Range, error) {
	if ver.Dev != nil || len(ver.Local) > 0 {
		return nil, &SemanticError{Op: op, Value: value,
			Detail: "version wildcards cannot have dev or local suffixes"}
	}

	low := ver.clone()
	low.Dev = intPtr(0)

	high := ver.clone()
	switch {
	case high.Post != nil:
		*high.Post++
	case high.Pre != nil:
		high.Pre.N++
	default:
		high.Release[len(high.Release)-1]++
	}
	high.Dev = intPtr(0)

	switch op {
	case CmpOpEQ:
		return []Range{{Low: low, High: high}}, nil
	case CmpOpNE:
		return []Range{
			{Low: Zero, High: low},
			{Low: high, High: Infinity},
		}, nil
	default:
		return nil, &SemanticError{Op: op, Value: value,
			Detail: "operator does not support wildcards"}
	}
}
