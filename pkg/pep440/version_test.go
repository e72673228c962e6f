// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/pyver/pkg/pep440"
	"github.com/datawire/pyver/pkg/testutil"
)

func TestSort(t *testing.T) {
	t.Parallel()
	// Each table is sorted ascending.
	testcases := map[string][]string{
		"canonical": {
			"1.0.dev456",
			"1.0a1",
			"1.0a2.dev456",
			"1.0a12.dev456",
			"1.0a12",
			"1.0b1.dev456",
			"1.0b2",
			"1.0b2.post345.dev456",
			"1.0b2.post345",
			"1.0rc1.dev456",
			"1.0rc1",
			"1.0",
			"1.0+abc.5",
			"1.0+abc.7",
			"1.0+5",
			"1.0.post456.dev34",
			"1.0.post456",
			"1.1.dev1",
		},
		"epoch": {
			"1.0",
			"1.1",
			"2.0",
			"1!1.0",
			"1!1.1",
			"1!2.0",
		},
		"release-padding": {
			"0.9",
			"0.9.1",
			"0.9.2",
			"0.9.10",
			"0.9.11",
			"1.0",
			"1.0.1",
			"1.1",
			"2.0",
			"2.0.1",
		},
		"local-segments": {
			"1.0",
			"1.0+foo",
			"1.0+foo.bar",
			"1.0+foo.1",
			"1.0+ubuntu",
			"1.0+ubuntu.1",
			"1.0+1",
			"1.0+2",
			"1.0+10",
		},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			exp := make([]pep440.Version, 0, len(tcData))
			for _, str := range tcData {
				exp = append(exp, mustParseVersion(t, str))
			}
			act := make([]pep440.Version, len(exp))
			copy(act, exp)
			rand.Shuffle(len(act), func(i, j int) {
				act[i], act[j] = act[j], act[i]
			})
			sort.Slice(act, func(i, j int) bool {
				return act[i].Cmp(act[j]) < 0
			})
			testutil.AssertEqual(t, exp, act)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	testcases := map[string]string{
		// case sensitivity
		"1.1RC1":     "1.1rc1",
		"1.0.DEV456": "1.0.dev456",
		// integer normalization
		"01.0":      "1.0",
		"1.0a05":    "1.0a5",
		"1.0.post0": "1.0.post0",
		// pre-release spellings
		"1.0alpha1":   "1.0a1",
		"1.0beta2":    "1.0b2",
		"1.0c3":       "1.0rc3",
		"1.0pre4":     "1.0rc4",
		"1.0preview5": "1.0rc5",
		// pre-release separators
		"1.0-a1":  "1.0a1",
		"1.0_a.1": "1.0a1",
		"1.0a-1":  "1.0a1",
		// implicit pre-release number
		"1.0a": "1.0a0",
		// post-release spellings and separators
		"1.0-post1": "1.0.post1",
		"1.0_post1": "1.0.post1",
		"1.0post1":  "1.0.post1",
		"1.0rev2":   "1.0.post2",
		"1.0r3":     "1.0.post3",
		"1.0.post":  "1.0.post0",
		// implicit post releases
		"1.0-1": "1.0.post1",
		// dev-release separators
		"1.0-dev1": "1.0.dev1",
		"1.0dev2":  "1.0.dev2",
		"1.0.dev":  "1.0.dev0",
		// local version separators
		"1.0+ubuntu-1": "1.0+ubuntu.1",
		"1.0+ubuntu_1": "1.0+ubuntu.1",
		"1.0+Ubuntu":   "1.0+ubuntu",
		// local numeric segments
		"1.0+007":        "1.0+7",
		"1.0+2147483647": "1.0+2147483647",
		// preceding 'v'
		"v1.0": "1.0",
		// whitespace
		" 1.0\n": "1.0",
	}
	for input, exp := range testcases {
		input := input
		exp := exp
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			ver := mustParseVersion(t, input)
			assert.Equal(t, exp, ver.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	testcases := []string{
		"",
		"dog",
		"1.0+",
		"1.0+foo!",
		"1.0-",
		"1.0_1",
		"1!",
		"1.0.post1.dev2.dev3",
		"french toast",
		// numerals above the int32 bound, in every position
		"3000000000!1.0",
		"1.3000000000",
		"1.0a3000000000",
		"1.0.post3000000000",
		"1.0.dev3000000000",
		"1.0+4294967298",
		"99999999999999999999",
	}
	for _, input := range testcases {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			ver, err := pep440.ParseVersion(input)
			assert.Nil(t, ver)
			assert.Error(t, err)
			var parseErr *pep440.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestEquality(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t, func(ver pep440.Version) bool {
		reparsed, err := pep440.ParseVersion(ver.String())
		if err != nil {
			t.Logf("reparse %q: %v", ver.String(), err)
			return false
		}
		if ver.Cmp(*reparsed) != 0 {
			t.Logf("reparse %q: got %#v", ver.String(), *reparsed)
			return false
		}
		return true
	}, testutil.QuickConfig{})
}

func TestSymmetry(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t, func(a, b pep440.Version) bool {
		return a.Cmp(b) == -b.Cmp(a)
	}, testutil.QuickConfig{})
}

func TestNextAdjacency(t *testing.T) {
	t.Parallel()
	// next(a) sorts after a, but no parseable version fits strictly
	// between the two.
	testutil.QuickCheck(t, func(a, b pep440.Version) bool {
		next := a.Next()
		if a.Cmp(next) >= 0 {
			t.Logf("%q is not less than its successor", a)
			return false
		}
		if a.Cmp(b) < 0 && b.Cmp(next) < 0 {
			t.Logf("%q fits between %q and its successor", b, a)
			return false
		}
		return true
	}, testutil.QuickConfig{},
		[]interface{}{mustParseVersion(t, "1.0"), mustParseVersion(t, "1.0+a")},
		[]interface{}{mustParseVersion(t, "1.0"), mustParseVersion(t, "1.0.post0")},
		[]interface{}{mustParseVersion(t, "1.0.dev0"), mustParseVersion(t, "1.0.dev0+0")})
}

func TestZeroInfinity(t *testing.T) {
	t.Parallel()
	assert.Zero(t, pep440.Zero.Cmp(mustParseVersion(t, "0.dev0")))
	testutil.QuickCheck(t, func(ver pep440.Version) bool {
		return pep440.Zero.Cmp(ver) <= 0 && ver.Cmp(pep440.Infinity) < 0
	}, testutil.QuickConfig{},
		[]interface{}{pep440.Zero},
		[]interface{}{mustParseVersion(t, "0")},
		[]interface{}{mustParseVersion(t, "9999!9999")},
		// the largest literals that still parse
		[]interface{}{mustParseVersion(t, "2147483647!2147483647.2147483647")},
		[]interface{}{mustParseVersion(t, "2147483647!2147483647.post2147483647+2147483647")})
}

func TestUtilMethods(t *testing.T) {
	t.Parallel()
	type testcase struct {
		Input       string
		ExpMajor    int
		ExpMinor    int
		ExpMicro    int
		ExpIsFinal  bool
		ExpIsPreRel bool
	}
	testcases := []testcase{
		{"1", 1, 0, 0, true, false},
		{"1.2", 1, 2, 0, true, false},
		{"1.2.3", 1, 2, 3, true, false},
		{"1.2.3.4", 1, 2, 3, true, false},
		{"1.2a3", 1, 2, 0, false, true},
		{"1.2.post3", 1, 2, 0, false, false},
		{"1.2.dev3", 1, 2, 0, false, true},
		{"1.2+local", 1, 2, 0, false, false},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.Input, func(t *testing.T) {
			t.Parallel()
			ver := mustParseVersion(t, tc.Input)
			assert.Equal(t, tc.ExpMajor, ver.Major())
			assert.Equal(t, tc.ExpMinor, ver.Minor())
			assert.Equal(t, tc.ExpMicro, ver.Micro())
			assert.Equal(t, tc.ExpIsFinal, ver.IsFinal())
			assert.Equal(t, tc.ExpIsPreRel, ver.IsPreRelease())
		})
	}
}

func TestGoString(t *testing.T) {
	t.Parallel()
	ver := mustParseVersion(t, "1!2.3a4.post5.dev6+seven.8")
	require.NotEmpty(t, ver.GoString())
}
