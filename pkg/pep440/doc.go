// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package pep440 implements PEP 440 -- Version Identification and Dependency
// Specification: parsing and ordering of version identifiers, and compilation
// of version specifier clauses in to half-open ranges of versions.
//
// https://www.python.org/dev/peps/pep-0440/
//
// The unusual part of this package, relative to other implementations of the
// PEP, is that a specifier clause such as ">=1.2" is not evaluated by ad-hoc
// comparisons; it is compiled by CmpOp.ToRanges in to an explicit union of
// half-open intervals [low, high) over the version ordering, and a candidate
// version matches if it is a member of any interval.  That makes each
// operator's interacting special cases (pre/post/dev exclusions, wildcards,
// the compatible-release operator) visible as concrete interval endpoints
// that can be printed and tested.
package pep440
