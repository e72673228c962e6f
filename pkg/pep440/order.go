// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"math"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// This file implements the total ordering over version identifiers.  The
// sort keys, most-significant first:
//
//  1. epoch
//  2. release, compared element-wise with implicit zero-padding
//  3. maturity: .devN < aN < bN < rcN < <no suffix> < .postN
//  4. post-release number
//  5. dev-release number
//  6. local version label (present > absent; element-wise within)

// maxSegment bounds every numeral in a parsed version; ParseVersion rejects
// anything larger.  It stays within int32 both because local-version
// numerals are stored as int32 (intstr) and so that the subtraction-style
// comparison helpers below cannot overflow.  It is also the value the
// package uses when it needs a numeral that sorts after all real ones (the
// ">" post-release trick).
const maxSegment = math.MaxInt32

// Zero sorts less than or equal to every valid version; Infinity sorts
// strictly greater than every valid version (its epoch is above maxSegment,
// so the first sort key already decides).  They serve as the endpoints of
// unbounded ranges.  Both are process-wide immutable values.
//
//nolint:gochecknoglobals // Would be 'const'.
var (
	Zero     = Version{PublicVersion: PublicVersion{Release: []int{0}, Dev: intPtr(0)}}
	Infinity = Version{PublicVersion: PublicVersion{Epoch: math.MaxInt, Release: []int{maxSegment}}}
)

func cmpEpoch(a, b PublicVersion) int {
	return a.Epoch - b.Epoch
}

func cmpRelease(a, b PublicVersion) int {
	for i := 0; i < len(a.Release) || i < len(b.Release); i++ {
		if d := a.releaseSegment(i) - b.releaseSegment(i); d != 0 {
			return d
		}
	}
	return 0
}

// preReleaseRank maps a pre-release phase to its position among the maturity
// suffixes; a version with no pre-release phase ranks 0, and a version whose
// only suffix is .devN ranks below every phase.
//
//nolint:gochecknoglobals // Would be 'const'.
var preReleaseRank = map[string]int{
	"a":  -3,
	"b":  -2,
	"rc": -1,
	// absent: 0
}

const rankDevOnly = -4

func cmpPreRelease(a, b PublicVersion) int {
	var aL, aN, bL, bN int
	var ok bool
	if a.Pre != nil {
		aL, ok = preReleaseRank[a.Pre.L]
		if !ok {
			panic(fmt.Errorf("invalid pre-release phase: %q", a.Pre.L))
		}
		aN = a.Pre.N
	} else if a.Dev != nil && a.Post == nil {
		aL = rankDevOnly
	}
	if b.Pre != nil {
		bL, ok = preReleaseRank[b.Pre.L]
		if !ok {
			panic(fmt.Errorf("invalid pre-release phase: %q", b.Pre.L))
		}
		bN = b.Pre.N
	} else if b.Dev != nil && b.Post == nil {
		bL = rankDevOnly
	}
	if aL != bL {
		return aL - bL
	}
	return aN - bN
}

func cmpPostRelease(a, b PublicVersion) int {
	// Post-releases sort immediately after the corresponding release, so
	// "absent" gets a value below every real post-release number.
	aPost := -1
	if a.Post != nil {
		aPost = *a.Post
	}
	bPost := -1
	if b.Post != nil {
		bPost = *b.Post
	}
	return aPost - bPost
}

func cmpDevRelease(a, b PublicVersion) int {
	// Dev releases sort immediately before the corresponding release, so
	// "absent" sorts above every real dev-release number.
	switch {
	case a.Dev == nil && b.Dev == nil:
		return 0
	case a.Dev == nil:
		return 1
	case b.Dev == nil:
		return -1
	default:
		return (*a.Dev) - (*b.Dev)
	}
}

func cmpLocalSegment(a, b *intstr.IntOrString) int {
	// A local version with more segments sorts after one whose segments are
	// a prefix of it, so "absent" sorts below every segment.
	switch {
	case a == nil && b == nil:
		panic("should not happen: cmpLocal compared two absent segments")
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch {
	case a.Type == intstr.Int && b.Type == intstr.Int:
		return int(a.IntVal - b.IntVal)
	case a.Type == intstr.String && b.Type == intstr.String:
		switch {
		case a.StrVal < b.StrVal:
			return -1
		case a.StrVal > b.StrVal:
			return 1
		}
		return 0
	case a.Type == intstr.Int && b.Type == intstr.String:
		// A numeric segment always sorts after an alphanumeric one.
		return 1
	case a.Type == intstr.String && b.Type == intstr.Int:
		return -1
	default:
		panic("should not happen: invalid intstr.IntOrString")
	}
}

func cmpLocal(a, b LocalVersion) int {
	for i := 0; i < len(a.Local) || i < len(b.Local); i++ {
		var aSeg, bSeg *intstr.IntOrString
		if i < len(a.Local) {
			aSeg = &(a.Local[i])
		}
		if i < len(b.Local) {
			bSeg = &(b.Local[i])
		}
		if d := cmpLocalSegment(aSeg, bSeg); d != 0 {
			return d
		}
	}
	return 0
}

// Cmp returns a number < 0 if version 'a' is less than version 'b', > 0 if
// 'a' is greater than 'b', or 0 if they are equal; like the C-language
// strcmp.  Only the sign of the result is defined.
func (a PublicVersion) Cmp(b PublicVersion) int {
	if d := cmpEpoch(a, b); d != 0 {
		return d
	}
	if d := cmpRelease(a, b); d != 0 {
		return d
	}
	if d := cmpPreRelease(a, b); d != 0 {
		return d
	}
	if d := cmpPostRelease(a, b); d != 0 {
		return d
	}
	return cmpDevRelease(a, b)
}

// Cmp returns a number < 0 if version 'a' is less than version 'b', > 0 if
// 'a' is greater than 'b', or 0 if they are equal.  The local version label
// is the final tie-break; two versions whose meaningful fields agree after
// release-padding compare equal.
func (a LocalVersion) Cmp(b LocalVersion) int {
	if d := a.PublicVersion.Cmp(b.PublicVersion); d != 0 {
		return d
	}
	return cmpLocal(a, b)
}

// Equal reports whether the two versions occupy the same position in the
// ordering; it is the equality that is consistent with Cmp.
func (a LocalVersion) Equal(b LocalVersion) bool {
	return a.Cmp(b) == 0
}

// Next returns the least version that sorts strictly after 'ver', in the
// sense that no parseable version identifier sorts between the two.  It is
// what turns an inclusive bound in to a half-open one: "<= v" is the range
// [Zero, v.Next()).
//
// The successor is built by appending an empty alphanumeric segment to the
// local version label.  A longer local version whose prefix matches sorts
// after the shorter one, and the empty string sorts lexicographically before
// every segment the grammar can produce (alphanumeric sorts before numeric,
// and real segments are non-empty).  The result therefore has no spelling as
// a version string; it exists only as a range endpoint.
func (ver LocalVersion) Next() LocalVersion {
	next := ver.clone()
	next.Local = append(next.Local, intstr.FromString(""))
	return next
}
