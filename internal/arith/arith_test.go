package arith

import (
	"math/big"
	"testing"

	"bignum/internal/limb"
)

func numFromUint64(v uint64) limb.Num {
	var limbs []limb.Limb
	for v > 0 {
		limbs = append(limbs, limb.Limb(v&0xffff))
		v >>= 16
	}
	return limb.NewNum(limbs)
}

func bigFromNum(n limb.Num) *big.Int {
	result := new(big.Int)
	base := big.NewInt(limb.Base)
	for i := n.Len() - 1; i >= 0; i-- {
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(n.At(i))))
	}
	return result
}

func TestAdd(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 0},
		{1, 1},
		{0xffff, 1},
		{0xffffffff, 1},
		{123456789, 987654321},
	}
	for _, c := range cases {
		r := limb.NewSlot(make([]limb.Limb, 6))
		if err := r.Assign(numFromUint64(c.a)); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		if err := Add(r, numFromUint64(c.b)); err != nil {
			t.Fatalf("Add(%d, %d): %v", c.a, c.b, err)
		}
		want := c.a + c.b
		got := bigFromNum(r.View())
		if got.Uint64() != want {
			t.Errorf("Add(%d, %d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

func TestAddSelfAliasingDoubles(t *testing.T) {
	r := limb.NewSlot(make([]limb.Limb, 4))
	if err := r.Assign(numFromUint64(12345)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := Add(r, r.View()); err != nil {
		t.Fatalf("Add(r, r): %v", err)
	}
	got := bigFromNum(r.View())
	if got.Uint64() != 24690 {
		t.Fatalf("doubled value = %d, want 24690", got)
	}
}

func TestAddCapacityExceeded(t *testing.T) {
	r := limb.NewSlot(make([]limb.Limb, 1))
	if err := r.Assign(numFromUint64(0xffff)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := Add(r, numFromUint64(1)); err == nil {
		t.Fatalf("expected capacity error")
	}
}

func TestSub(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{5, 5},
		{0x10000, 1},
		{987654321, 123456789},
	}
	for _, c := range cases {
		r := limb.NewSlot(make([]limb.Limb, 4))
		if err := r.Assign(numFromUint64(c.a)); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		if err := Sub(r, numFromUint64(c.b)); err != nil {
			t.Fatalf("Sub(%d, %d): %v", c.a, c.b, err)
		}
		want := c.a - c.b
		got := bigFromNum(r.View())
		if got.Uint64() != want {
			t.Errorf("Sub(%d, %d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct{ a, b uint64 }{
		{0, 5},
		{7, 6},
		{65535, 65535},
		{123456, 654321},
	}
	for _, c := range cases {
		r := limb.NewSlot(make([]limb.Limb, 6))
		if err := Mul(r, numFromUint64(c.a), numFromUint64(c.b)); err != nil {
			t.Fatalf("Mul(%d, %d): %v", c.a, c.b, err)
		}
		want := c.a * c.b
		got := bigFromNum(r.View())
		if got.Uint64() != want {
			t.Errorf("Mul(%d, %d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

func TestMulCapacityExceeded(t *testing.T) {
	r := limb.NewSlot(make([]limb.Limb, 1))
	if err := Mul(r, numFromUint64(0xffff), numFromUint64(0xffff)); err == nil {
		t.Fatalf("expected capacity error")
	}
}

func TestDivBy2(t *testing.T) {
	cases := []uint64{0, 1, 2, 3, 100, 0x10001, 0xffffffff}
	for _, v := range cases {
		s := limb.NewSlot(make([]limb.Limb, 4))
		if err := s.Assign(numFromUint64(v)); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		DivBy2(s)
		want := v / 2
		got := bigFromNum(s.View())
		if got.Uint64() != want {
			t.Errorf("DivBy2(%d) = %d, want %d", v, got, want)
		}
	}
}
