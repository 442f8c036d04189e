package arith

import (
	"testing"

	"bignum/internal/limb"
)

func newDivResultForTest(t *testing.T, capacity int) *DivResult {
	t.Helper()
	buf := make([]limb.Limb, 4*capacity)
	d, err := NewDivResult(buf, capacity)
	if err != nil {
		t.Fatalf("NewDivResult: %v", err)
	}
	return d
}

func TestDiv(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 7},
		{6, 7},
		{7, 7},
		{100, 3},
		{987654321, 12345},
		{0xffffffff, 2},
	}
	for _, c := range cases {
		d := newDivResultForTest(t, 6)
		if err := Div(d, numFromUint64(c.a), numFromUint64(c.b)); err != nil {
			t.Fatalf("Div(%d, %d): %v", c.a, c.b, err)
		}
		wantQuot, wantRem := c.a/c.b, c.a%c.b
		gotQuot := bigFromNum(d.Quot.View())
		gotRem := bigFromNum(d.Rem.View())
		if gotQuot.Uint64() != wantQuot || gotRem.Uint64() != wantRem {
			t.Errorf("Div(%d, %d) = (%d, %d), want (%d, %d)", c.a, c.b, gotQuot, gotRem, wantQuot, wantRem)
		}
	}
}

func TestDivByZero(t *testing.T) {
	d := newDivResultForTest(t, 4)
	if err := Div(d, numFromUint64(5), numFromUint64(0)); err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestMod(t *testing.T) {
	r := limb.NewSlot(make([]limb.Limb, 4))
	if err := r.Assign(numFromUint64(100)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	d := newDivResultForTest(t, 4)
	if err := Mod(r, numFromUint64(7), d); err != nil {
		t.Fatalf("Mod: %v", err)
	}
	got := bigFromNum(r.View())
	if got.Uint64() != 2 {
		t.Fatalf("100 mod 7 = %d, want 2", got)
	}
}

func TestMulMod(t *testing.T) {
	r := limb.NewSlot(make([]limb.Limb, 6))
	d := newDivResultForTest(t, 6)
	if err := MulMod(r, numFromUint64(123456), numFromUint64(654321), numFromUint64(1000003), d); err != nil {
		t.Fatalf("MulMod: %v", err)
	}
	want := (123456 * 654321) % 1000003
	got := bigFromNum(r.View())
	if got.Uint64() != uint64(want) {
		t.Fatalf("MulMod = %d, want %d", got, want)
	}
}
