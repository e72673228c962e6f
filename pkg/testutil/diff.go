// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

//nolint:gochecknoglobals // Would be 'const'.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// AssertEqual compares two arbitrary values, and on mismatch reports a
// unified diff of their dumped representations rather than testify's
// one-line summary.  Dumping with methods disabled matters here: version
// values have String methods that hide exactly the field-level differences
// (padding, pointers vs nil) that a failing comparison needs to show.
func AssertEqual(t *testing.T, exp, act interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(exp, act) {
		return true
	}
	expStr := spewConfig.Sdump(exp)
	actStr := spewConfig.Sdump(act)
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if len(msgAndArgs) > 0 {
		t.Errorf("Not equal (%v):\n%s", msgAndArgs, diff)
	} else {
		t.Errorf("Not equal:\n%s", diff)
	}
	return false
}
