package decimal

import (
	"testing"

	"bignum/internal/limb"
)

func TestFormatZero(t *testing.T) {
	s, err := Format(limb.NewNum(nil))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if s != "0" {
		t.Fatalf("Format(0) = %q, want \"0\"", s)
	}
}

func TestFormatRoundTripsThroughParse(t *testing.T) {
	cases := []string{"0", "1", "9", "65536", "123456789012345678901234567890"}
	for _, want := range cases {
		limbs := LimbsForDigits(len(want)) + 1
		dst := limb.NewSlot(make([]limb.Limb, limbs))
		scratch := limb.NewSlot(make([]limb.Limb, limbs))
		if err := Parse(dst, scratch, want); err != nil {
			t.Fatalf("Parse(%q): %v", want, err)
		}
		got, err := Format(dst.View())
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if got != want {
			t.Errorf("round trip %q -> %q", want, got)
		}
	}
}

func TestParseRejectsNonDigits(t *testing.T) {
	dst := limb.NewSlot(make([]limb.Limb, 4))
	scratch := limb.NewSlot(make([]limb.Limb, 4))
	if err := Parse(dst, scratch, "12a4"); err == nil {
		t.Fatalf("expected an error for a non-digit character")
	}
}

func TestFormatGrouped(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
	}
	for _, c := range cases {
		limbs := LimbsForDigits(len(c.in)) + 1
		dst := limb.NewSlot(make([]limb.Limb, limbs))
		scratch := limb.NewSlot(make([]limb.Limb, limbs))
		if err := Parse(dst, scratch, c.in); err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		got, err := FormatGrouped(dst.View())
		if err != nil {
			t.Fatalf("FormatGrouped: %v", err)
		}
		if got != c.want {
			t.Errorf("FormatGrouped(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
