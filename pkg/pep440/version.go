// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

// Version is a PEP 440 version identifier, possibly carrying a local version
// label ("1.0+ubuntu.1").
type Version = LocalVersion

// PublicVersion is a public version identifier:
//
//	[N!]N(.N)*[{a|b|rc}N][.postN][.devN]
//
// with up to five segments: epoch, release, pre-release, post-release, and
// developmental release.
type PublicVersion struct {
	Epoch   int
	Release []int
	Pre     *PreRelease
	Post    *int
	Dev     *int
}

// PreRelease is a pre-release segment.  The phase L is one of "a", "b", or
// "rc"; the alternate spellings ("alpha", "c", "preview", ...) are folded to
// those three at parse time.
type PreRelease struct {
	L string
	N int
}

// LocalVersion pairs a PublicVersion with its optional local version label.
// Each label segment is either numeric or alphanumeric (intstr.Int or
// intstr.String), which matters for ordering.
type LocalVersion struct {
	PublicVersion
	Local []intstr.IntOrString
}

// reVersion is the "permissive" regular expression from PEP 440 Appendix B;
// it accepts all of the alternate syntaxes that the PEP's normalization rules
// require parsers to accept.
//
//nolint:lll // regexp from the source specification
var reVersion = regexp.MustCompile(`(?i)^\s*` + `v?` +
	`(?:(?P<epoch>[0-9]+)!)?` + // epoch
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` + // release segment
	`(?:[-_\.]?(?P<pre_l>a|b|c|rc|alpha|beta|pre|preview)[-_\.]?(?P<pre_n>[0-9]+)?)?` + // pre-release
	`(?:(?:-(?P<post_n1>[0-9]+))|(?:[-_\.]?(?P<post_l>post|rev|r)[-_\.]?(?P<post_n2>[0-9]+)?))?` + // post release
	`(?:[-_\.]?(?P<dev_l>dev)[-_\.]?(?P<dev_n>[0-9]+)?)?` + // dev release
	`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?` + // local version
	`\s*$`)

// ParseVersion parses a string to a Version object, performing the
// normalizations that PEP 440 requires ("1.1RC1" => "1.1rc1", "1.0-r4" =>
// "1.0.post4", and so on).
func ParseVersion(str string) (*Version, error) {
	ver, err := parseVersion(str)
	if err != nil {
		return nil, fmt.Errorf("pep440.ParseVersion: %w", err)
	}
	return ver, nil
}

//nolint:gochecknoglobals // Would be 'const'.
var preSpellings = map[string]string{
	"a": "a", "alpha": "a",
	"b": "b", "beta": "b",
	"rc": "rc", "c": "rc", "pre": "rc", "preview": "rc",
}

func parseVersion(str string) (*Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, &ParseError{Kind: "version", Input: str,
			Detail: "does not match the PEP 440 version grammar"}
	}
	group := func(name string) string {
		return match[reVersion.SubexpIndex(name)]
	}
	parseN := func(numstr string) (int, error) {
		if numstr == "" {
			// implicit number ("1.2a" == "1.2a0")
			return 0, nil
		}
		n, err := strconv.Atoi(numstr)
		if err != nil || n > maxSegment {
			return 0, &ParseError{Kind: "version", Input: str,
				Detail: fmt.Sprintf("numeric component %q out of range", numstr)}
		}
		return n, nil
	}

	var ver Version
	var err error

	if ver.Epoch, err = parseN(group("epoch")); err != nil {
		return nil, err
	}

	for _, segStr := range strings.Split(group("release"), ".") {
		seg, err := parseN(segStr)
		if err != nil {
			return nil, err
		}
		ver.Release = append(ver.Release, seg)
	}

	if preL := strings.ToLower(group("pre_l")); preL != "" {
		preN, err := parseN(group("pre_n"))
		if err != nil {
			return nil, err
		}
		ver.Pre = &PreRelease{L: preSpellings[preL], N: preN}
	}

	// post_n1 is the implicit-post-release spelling ("1.0-1"); post_l/post_n2
	// are the explicit spellings.  At most one of the two alternates matched.
	if group("post_n1") != "" || group("post_l") != "" {
		postN, err := parseN(group("post_n1") + group("post_n2"))
		if err != nil {
			return nil, err
		}
		ver.Post = &postN
	}

	if group("dev_l") != "" {
		devN, err := parseN(group("dev_n"))
		if err != nil {
			return nil, err
		}
		ver.Dev = &devN
	}

	localParts := strings.FieldsFunc(group("local"), func(r rune) bool {
		return strings.ContainsRune("-_.", r)
	})
	for _, part := range localParts {
		part = strings.ToLower(part)
		// Numeric segments go through parseN rather than intstr.Parse,
		// which would silently truncate them to int32.
		if strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
			n, err := parseN(part)
			if err != nil {
				return nil, err
			}
			ver.Local = append(ver.Local, intstr.FromInt(n))
		} else {
			ver.Local = append(ver.Local, intstr.FromString(part))
		}
	}

	return &ver, nil
}

func (ver PublicVersion) writeTo(ret *strings.Builder) {
	if ver.Epoch > 0 {
		fmt.Fprintf(ret, "%d!", ver.Epoch)
	}
	if len(ver.Release) == 0 {
		panic("invalid version: no release segments")
	}
	fmt.Fprintf(ret, "%d", ver.Release[0])
	for _, segment := range ver.Release[1:] {
		fmt.Fprintf(ret, ".%d", segment)
	}
	if ver.Pre != nil {
		fmt.Fprintf(ret, "%s%d", ver.Pre.L, ver.Pre.N)
	}
	if ver.Post != nil {
		fmt.Fprintf(ret, ".post%d", *ver.Post)
	}
	if ver.Dev != nil {
		fmt.Fprintf(ret, ".dev%d", *ver.Dev)
	}
}

// String implements fmt.Stringer.  The result is in the normalized spelling,
// but String does not re-pad or otherwise canonicalize the parsed fields.
func (ver PublicVersion) String() string {
	var ret strings.Builder
	ver.writeTo(&ret)
	return ret.String()
}

// String implements fmt.Stringer.
func (ver LocalVersion) String() string {
	var ret strings.Builder
	ver.PublicVersion.writeTo(&ret)
	sep := "+"
	for _, local := range ver.Local {
		ret.WriteString(sep)
		ret.WriteString(local.String())
		sep = "."
	}
	return ret.String()
}

// GoString implements fmt.GoStringer.
func (ver PublicVersion) GoString() string {
	pre := "nil"
	if ver.Pre != nil {
		pre = fmt.Sprintf("&%#v", *ver.Pre)
	}
	post := "nil"
	if ver.Post != nil {
		post = fmt.Sprintf("intPtr(%#v)", *ver.Post)
	}
	dev := "nil"
	if ver.Dev != nil {
		dev = fmt.Sprintf("intPtr(%#v)", *ver.Dev)
	}
	return fmt.Sprintf("pep440.PublicVersion{Epoch:%d, Release:%#v, Pre:%s, Post:%s, Dev:%s}",
		ver.Epoch, ver.Release, pre, post, dev)
}

// GoString implements fmt.GoStringer.
func (ver LocalVersion) GoString() string {
	return fmt.Sprintf("pep440.LocalVersion{PublicVersion:%#v, Local:%#v}",
		ver.PublicVersion, ver.Local)
}

// Normalize re-parses the version's normalized spelling, canonicalizing any
// fields that were constructed by hand rather than by ParseVersion.
func (ver LocalVersion) Normalize() (*LocalVersion, error) {
	return ParseVersion(ver.String())
}

// IsFinal reports whether the version is a "final release": solely a release
// segment and optionally an epoch.
func (ver PublicVersion) IsFinal() bool {
	return ver.Pre == nil && ver.Post == nil && ver.Dev == nil
}

func (ver LocalVersion) IsFinal() bool {
	return ver.PublicVersion.IsFinal() && len(ver.Local) == 0
}

// IsPreRelease reports whether the version is a pre-release or developmental
// release; installation tools implicitly exclude such versions unless asked
// not to.
func (ver PublicVersion) IsPreRelease() bool {
	return ver.Pre != nil || ver.Dev != nil
}

// releaseSegment returns the n'th release segment, taking in to account the
// implicit zero-padding of short release segments.
func (ver PublicVersion) releaseSegment(n int) int {
	if n < len(ver.Release) {
		return ver.Release[n]
	}
	return 0
}

func (ver PublicVersion) Major() int { return ver.releaseSegment(0) }
func (ver PublicVersion) Minor() int { return ver.releaseSegment(1) }
func (ver PublicVersion) Micro() int { return ver.releaseSegment(2) }

func intPtr(n int) *int {
	return &n
}

// clone returns a deep copy, so that derived versions (range endpoints,
// successors) never alias the original's pointers or slices.
func (ver LocalVersion) clone() LocalVersion {
	ver.Release = append([]int(nil), ver.Release...)
	if ver.Pre != nil {
		pre := *ver.Pre
		ver.Pre = &pre
	}
	if ver.Post != nil {
		ver.Post = intPtr(*ver.Post)
	}
	if ver.Dev != nil {
		ver.Dev = intPtr(*ver.Dev)
	}
	ver.Local = append([]intstr.IntOrString(nil), ver.Local...)
	return ver
}
