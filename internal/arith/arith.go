// Package arith implements the eight arithmetic primitives over
// internal/limb's View/Slot abstractions: equality and ordering live on
// limb.Num directly, and Add, Sub, Mul, DivBy2, Div, Mod, MulMod and
// PowMod live here. Every primitive writes into caller-supplied Slots and
// reports overflow as errors.Capacity rather than growing a buffer.
package arith

import (
	"bignum/internal/errors"
	"bignum/internal/limb"
)

// one is the canonical view of the integer 1, used by Div's +1 bisection
// bound and PowMod's multiplicative identity.
var oneLimbs = [1]limb.Limb{1}

func one() limb.Num { return limb.NewNum(oneLimbs[:]) }

// Add computes r <- r + n, extending r's used length as needed. r and n
// may alias (add(r, r) doubles r correctly): at digit index i, the addend
// digit and r's own pre-existing digit are both read from index i before
// index i is written, so self-aliasing never observes a partially updated
// value. It fails with errors.Capacity if the sum would not fit in r's
// capacity.
func Add(r *limb.Slot, n limb.Num) error {
	if n.Empty() {
		return nil
	}
	region, used := r.Raw()
	origUsed := *used
	nLen := n.Len()

	carry := 0
	i := 0
	for i < nLen || carry != 0 {
		if i >= len(region) {
			return errors.CapacityExceeded("arith.Add", "sum exceeds slot capacity")
		}
		sum := carry
		if i < nLen {
			sum += int(n.At(i))
		}
		if i < origUsed {
			sum += int(region[i])
		}
		carry = 0
		if sum >= limb.Base {
			sum -= limb.Base
			carry = 1
		}
		region[i] = limb.Limb(sum)
		if i+1 > *used {
			*used = i + 1
		}
		i++
	}
	return nil
}

// Sub computes r <- r - n. It requires r >= n; behavior on underflow is
// undefined. Trims trailing zero limbs afterward, since subtraction
// commonly creates them.
func Sub(r *limb.Slot, n limb.Num) error {
	if n.Empty() {
		return nil
	}
	region, used := r.Raw()
	origUsed := *used
	nLen := n.Len()

	borrow := 0
	i := 0
	for i < nLen || borrow != 0 {
		if i >= len(region) {
			return errors.CapacityExceeded("arith.Sub", "borrow exceeds slot capacity")
		}
		sum := -borrow
		if i < nLen {
			sum -= int(n.At(i))
		}
		if i < origUsed {
			sum += int(region[i])
		}
		borrow = 0
		if sum < 0 {
			sum += limb.Base
			borrow = 1
		}
		region[i] = limb.Limb(sum)
		i++
	}
	r.Trim()
	return nil
}

// Mul computes r <- a * b, out of place: r must not alias a or b. It
// clears r first, then accumulates a's contribution limb by limb via the
// shift-and-add helper below (the schoolbook algorithm).
func Mul(r *limb.Slot, a, b limb.Num) error {
	r.Clear()
	if a.Empty() || b.Empty() {
		return nil
	}
	for i := 0; i < a.Len(); i++ {
		if err := multiplyAndAdd(r, b, int(a.At(i)), i); err != nil {
			return err
		}
	}
	return nil
}

// multiplyAndAdd computes r <- r + (factor * b * Base^shift). Positions
// from r's used length up to shift are zero-filled first: Mul skips the
// call for a zero limb of a, so those positions may not have been written
// since r was cleared and can still hold the region's old limbs. Positions
// at or above shift are only ever read through the origUsed guard, so a
// position past r's used length is treated as zero.
func multiplyAndAdd(r *limb.Slot, b limb.Num, factor, shift int) error {
	if b.Empty() || factor == 0 {
		return nil
	}
	region, used := r.Raw()
	for *used < shift && *used < len(region) {
		region[*used] = 0
		*used++
	}
	origUsed := *used
	bLen := b.Len()

	overflow := 0
	i := 0
	for i < bLen || overflow != 0 {
		pos := shift + i
		if pos >= len(region) {
			return errors.CapacityExceeded("arith.Mul", "product exceeds slot capacity")
		}
		sum := overflow
		if i < bLen {
			sum += int(b.At(i)) * factor
		}
		if pos < origUsed {
			sum += int(region[pos])
		}
		overflow = sum / limb.Base
		region[pos] = limb.Limb(sum % limb.Base)
		if pos+1 > *used {
			*used = pos + 1
		}
		i++
	}
	return nil
}

// DivBy2 computes v <- floor(v/2) in place, walking from the most
// significant limb down so a higher limb's odd remainder (worth Base/2)
// carries into the next lower limb.
func DivBy2(v *limb.Slot) {
	region, used := v.Raw()
	overflow := 0
	for i := *used - 1; i >= 0; i-- {
		digit := int(region[i])
		sum := overflow + digit/2
		overflow = (digit % 2) * (limb.Base / 2)
		region[i] = limb.Limb(sum)
	}
	v.Trim()
}

// middle sets dst <- floor((a+b)/2), the bisection midpoint Div uses to
// search for the quotient.
func middle(dst *limb.Slot, a, b limb.Num) error {
	if err := dst.Assign(a); err != nil {
		return err
	}
	if err := Add(dst, b); err != nil {
		return err
	}
	DivBy2(dst)
	return nil
}
