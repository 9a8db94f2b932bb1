package portfolio

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{-42.424, "-$42.42"},
		{0.005, "$0.01"},
	}
	for _, tc := range tests {
		if got := M(tc.in).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "-"},
		{761, "+$761.00"},
		{-12.5, "-$12.50"},
	}
	for _, tc := range tests {
		if got := M(tc.in).SignedString(); got != tc.want {
			t.Errorf("M(%v).SignedString() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	if got := M(0.1).Add(M(0.2)); !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
	if got := M(152.5).Mul(Q(20)); !got.Equal(M(3050)) {
		t.Errorf("152.5 * 20 = %s, want 3050", got)
	}
	if got := M(3050).Div(Q(20)); !got.Equal(M(152.5)) {
		t.Errorf("3050 / 20 = %s, want 152.5", got)
	}
	if got := M(761).Ratio(M(4300)); got < 0.1769 || got > 0.1770 {
		t.Errorf("761/4300 = %v, want about 0.17698", got)
	}
}

func TestPercent(t *testing.T) {
	if !Percent(17.69767).Equal(17.69770) {
		t.Error("percentages this close must compare equal")
	}
	if Percent(17.69).Equal(17.70) {
		t.Error("percentages this far apart must not compare equal")
	}
	if got := Percent(17.7).String(); got != "17.70%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(17.7).SignedString(); got != "+17.70%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
}
