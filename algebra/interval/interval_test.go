package interval

import (
	"math"
	"testing"

	"github.com/cs-au-dk/intervals/utils"

	"github.com/pkg/errors"
)

func TestConstruction(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (Interval, error)
		expected error
	}{
		{"closed", func() (Interval, error) { return Closed(0, 1) }, nil},
		{"degenerate", func() (Interval, error) { return Degenerate(3) }, nil},
		{"closed point", func() (Interval, error) { return Closed(3, 3) }, nil},
		{"open point", func() (Interval, error) { return Open(3, 3) }, ErrDegenerateNotClosed},
		{"closed-open point", func() (Interval, error) { return ClosedOpen(3, 3) }, ErrDegenerateNotClosed},
		{"open-closed point", func() (Interval, error) { return OpenClosed(3, 3) }, ErrDegenerateNotClosed},
		{"reversed", func() (Interval, error) { return Closed(2, 1) }, ErrReversed},
		{"reversed open", func() (Interval, error) { return Open(2, 1) }, ErrReversed},
		{"infinitesimal", func() (Interval, error) { return Closed(1, 1+1e-12) }, ErrInfinitesimal},
		{"large infinitesimal", func() (Interval, error) { return Open(1e12, 1e12+1) }, ErrInfinitesimal},
		{"tiny but not infinitesimal", func() (Interval, error) { return Closed(0, 1e-300) }, nil},
		{"inf-open", func() (Interval, error) { return InfOpen(0) }, nil},
		{"open-inf", func() (Interval, error) { return OpenInf(0) }, nil},
		{"inf-open at -∞", func() (Interval, error) { return InfOpen(math.Inf(-1)) }, ErrDegenerateNotClosed},
		{"raw", func() (Interval, error) {
			lower, _ := NewBound(4, BelongsLeft)
			upper, _ := NewBound(4, BelongsLeft)
			return New(lower, upper)
		}, ErrDegenerateNotClosed},
	}

	for _, test := range tests {
		iv, err := test.build()
		switch {
		case test.expected == nil && err != nil:
			t.Errorf("%s: unexpected error %v", test.name, err)
		case test.expected != nil && !errors.Is(err, test.expected):
			t.Errorf("%s: got %s, %v, expected %v", test.name, iv, err, test.expected)
		}
	}
}

func TestDegenerate(t *testing.T) {
	iv := pt(3)
	if iv.Length() != 0 {
		t.Errorf("Length of %s = %v, expected 0", iv, iv.Length())
	}
	if !iv.IsDegenerate() || iv.IsInfinitesimal() {
		t.Errorf("%s should be degenerate and not infinitesimal", iv)
	}
	if !iv.ContainsValue(3) || iv.ContainsValue(3.0000001) {
		t.Errorf("%s should contain exactly 3", iv)
	}
}

func TestInfinitesimalAfterWideningTolerance(t *testing.T) {
	iv := cc(1, 1.001)
	if iv.IsInfinitesimal() {
		t.Fatalf("%s is infinitesimal under the default tolerance", iv)
	}

	restore := opts.SetTolerance(0.01, 0)
	defer restore()

	if !iv.IsInfinitesimal() {
		t.Errorf("%s should be infinitesimal under a 1%% tolerance", iv)
	}
	if valid, defined := NewMulti(iv).IsValid(); valid || !defined {
		t.Errorf("IsValid() = %v, %v, expected false, true", valid, defined)
	}
	if m := NewMulti(iv, cc(0, 5), pt(1)).DeleteInfinitesimal(); m.Len() != 2 {
		t.Errorf("DeleteInfinitesimal left %s", m)
	}
}

func TestAccessors(t *testing.T) {
	iv := co(2, 6)
	if lower, err := iv.Index(0); err != nil || lower != iv.Lower() {
		t.Errorf("Index(0) = %s, %v", lower, err)
	}
	if upper, err := iv.Index(1); err != nil || upper != iv.Upper() {
		t.Errorf("Index(1) = %s, %v", upper, err)
	}
	for _, i := range []int{-1, 2} {
		if _, err := iv.Index(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Index(%d) = %v, expected %v", i, err, ErrIndexOutOfRange)
		}
	}

	if iv.Length() != 4 {
		t.Errorf("Length of %s = %v", iv, iv.Length())
	}
	for ratio, expected := range map[float64]float64{0: 2, 0.5: 4, 1: 6, -0.5: 0, 2: 10} {
		if res := iv.Interpolate(ratio); res != expected {
			t.Errorf("%s.Interpolate(%v) = %v, expected %v", iv, ratio, res, expected)
		}
	}

	if !Complete().IsComplete() || Must(ClosedInf(0)).IsComplete() {
		t.Error("IsComplete misbehaves")
	}
	if l := Complete().Length(); !math.IsInf(l, 1) {
		t.Errorf("Length of the complete interval = %v", l)
	}
}

func TestContains(t *testing.T) {
	b := func(v float64, s Side) Bound {
		res, _ := NewBound(v, s)
		return res
	}

	tests := []struct {
		iv            Interval
		value         float64
		expectedValue bool
		lower         Bound
		expectedLower bool
		upper         Bound
		expectedUpper bool
	}{
		{cc(0, 5), 0, true, b(0, BelongsRight), true, b(5, BelongsLeft), true},
		{oo(0, 5), 0, false, b(0, BelongsRight), false, b(5, BelongsLeft), false},
		{oo(0, 5), 5, false, b(0, BelongsLeft), true, b(5, BelongsRight), true},
		{co(0, 5), 5, false, b(5, BelongsRight), false, b(0, BelongsLeft), true},
		{oc(0, 5), 5, true, b(5, BelongsLeft), false, b(0, BelongsRight), false},
		{pt(2), 2, true, b(2, BelongsRight), true, b(2, BelongsLeft), true},
		{Complete(), math.Inf(1), true, NegativeInfinity, true, PositiveInfinity, true},
		{Must(InfOpen(3)), -1e308, true, b(3, BelongsRight), false, b(3, BelongsRight), true},
		{cc(0, 5), math.NaN(), false, b(6, BelongsRight), false, b(-1, BelongsLeft), false},
	}

	for _, test := range tests {
		if res := test.iv.ContainsValue(test.value); res != test.expectedValue {
			t.Errorf("%s contains %v = %v, expected %v", test.iv, test.value, res, test.expectedValue)
		}
		if res := test.iv.ContainsLowerBound(test.lower); res != test.expectedLower {
			t.Errorf("%s contains lower bound %s = %v, expected %v", test.iv, test.lower, res, test.expectedLower)
		}
		if res := test.iv.ContainsUpperBound(test.upper); res != test.expectedUpper {
			t.Errorf("%s contains upper bound %s = %v, expected %v", test.iv, test.upper, res, test.expectedUpper)
		}
	}
}

func TestContainsInterval(t *testing.T) {
	tests := []struct {
		a        Interval
		b        Region
		expected bool
	}{
		{cc(0, 10), cc(2, 3), true},
		{cc(0, 10), cc(0, 10), true},
		{oo(0, 10), cc(0, 10), false},
		{cc(0, 10), oo(0, 10), true},
		{cc(0, 10), NewMulti(cc(1, 2), oo(9, 10)), true},
		{cc(0, 10), NewMulti(cc(1, 2), cc(9, 11)), false},
		{cc(0, 10), NewMulti(), false},
		{Complete(), Must(InfClosed(0)), true},
	}

	for _, test := range tests {
		if res := test.a.ContainsInterval(test.b); res != test.expected {
			t.Errorf("%s contains %s = %v, expected %v", test.a, test.b, res, test.expected)
		}
	}
}

func TestStringAndParse(t *testing.T) {
	tests := []struct {
		iv       Interval
		expected string
	}{
		{cc(0, 10), "[0, 10]"},
		{oo(-1.5, 2), "(-1.5, 2)"},
		{co(0, 1e21), "[0, 1e+21)"},
		{oc(3, 4), "(3, 4]"},
		{pt(7), "[7, 7]"},
		{Complete(), "[-∞, +∞]"},
		{Must(InfOpen(0)), "[-∞, 0)"},
		{Must(OpenInf(0)), "(0, +∞]"},
	}

	for _, test := range tests {
		if res := test.iv.String(); res != test.expected {
			t.Errorf("String() = %q, expected %q", res, test.expected)
		}
		parsed, err := Parse(test.expected)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.expected, err)
		} else if parsed != test.iv {
			t.Errorf("Parse(%q) = %s, expected %s", test.expected, parsed, test.iv)
		}
	}

	for s, expected := range map[string]Interval{
		" ( -inf , 5 ] ": Must(InfClosed(5)),
		"[2.5, inf)":      Must(ClosedInf(2.5)),
		"[1,2]":           cc(1, 2),
	} {
		if res, err := Parse(s); err != nil || res != expected {
			t.Errorf("Parse(%q) = %s, %v, expected %s", s, res, err, expected)
		}
	}

	for s, expected := range map[string]error{
		"":         ErrSyntax,
		"[1, 2":    ErrSyntax,
		"{1, 2}":   ErrSyntax,
		"[1]":      ErrSyntax,
		"[a, 2]":   ErrSyntax,
		"[nan, 2]": ErrSyntax,
		"(3, 3)":   ErrDegenerateNotClosed,
		"[3, 2]":   ErrReversed,
	} {
		if _, err := Parse(s); !errors.Is(err, expected) {
			t.Errorf("Parse(%q) = %v, expected %v", s, err, expected)
		}
	}
}

func TestHashEqual(t *testing.T) {
	a, b := cc(0, 1), Must(Parse("[0, 1]"))
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("%s and %s should be equal with equal hashes", a, b)
	}
	if a.Equal(co(0, 1)) {
		t.Errorf("%s should differ from %s", a, co(0, 1))
	}
	if h := utils.HashableHasher[Interval](); !h.Equal(a, b) || h.Hash(a) != a.Hash() {
		t.Error("Interval hasher disagrees with Interval methods")
	}
}
