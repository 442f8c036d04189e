package arith

import (
	"bignum/internal/errors"
	"bignum/internal/limb"
)

// DivResult bundles the four scratch slots Div needs: quot and rem hold
// the result, s1 and s2 are working storage for the bisection search. The
// four must be mutually non-aliasing and disjoint from any caller-visible
// input.
type DivResult struct {
	Quot *limb.Slot
	Rem  *limb.Slot
	S1   *limb.Slot
	S2   *limb.Slot
}

// NewDivResult carves buf into four equal-capacity slots. capacity should
// be sized generously relative to the largest dividend you intend to
// divide: Rem briefly holds dividend+1, and S2 briefly holds a full
// quot-candidate * divisor product, which can run to roughly twice the
// dividend's limb count. A capacity of 2*maxDividendLimbs+2 is a safe
// default. buf must have length 4*capacity.
func NewDivResult(buf []limb.Limb, capacity int) (*DivResult, error) {
	if len(buf) < 4*capacity {
		return nil, errors.Invalid("arith.NewDivResult", "backing buffer too small for the requested capacity")
	}
	return &DivResult{
		Quot: limb.NewSlot(buf[0*capacity : 1*capacity]),
		Rem:  limb.NewSlot(buf[1*capacity : 2*capacity]),
		S1:   limb.NewSlot(buf[2*capacity : 3*capacity]),
		S2:   limb.NewSlot(buf[3*capacity : 4*capacity]),
	}, nil
}

// Div computes d.Quot = floor(a/b) and d.Rem = a mod b by binary search on
// the quotient over [0, a+1]. b must be non-zero.
//
// Each iteration narrows [d.Quot, d.Rem) toward the true quotient: s1 is
// the midpoint, s2 = s1*b. If s2 overshoots a, rem tightens down to s1; if
// it undershoots, quot tightens up to s1; an exact hit returns immediately.
// The search terminates when the midpoint no longer moves, at which point
// quot is the final quotient and s2 still holds quot*b, so rem = a - s2.
func Div(d *DivResult, a, b limb.Num) error {
	if b.Empty() {
		return errors.Invalid("arith.Div", "division by zero")
	}

	d.Quot.Clear()
	if err := d.Rem.Assign(a); err != nil {
		return err
	}
	if err := Add(d.Rem, one()); err != nil {
		return err
	}

	for {
		if err := middle(d.S1, d.Quot.View(), d.Rem.View()); err != nil {
			return err
		}
		if err := Mul(d.S2, d.S1.View(), b); err != nil {
			return err
		}
		if limb.Equal(d.S1.View(), d.Quot.View()) {
			break
		}
		if limb.Equal(d.S2.View(), a) {
			if err := d.Quot.Assign(d.S1.View()); err != nil {
				return err
			}
			d.Rem.Clear()
			return nil
		}
		if limb.Less(d.S2.View(), a) {
			if err := d.Quot.Assign(d.S1.View()); err != nil {
				return err
			}
		} else {
			if err := d.Rem.Assign(d.S1.View()); err != nil {
				return err
			}
		}
	}

	if err := d.Rem.Assign(a); err != nil {
		return err
	}
	return Sub(d.Rem, d.S2.View())
}

// Mod computes r <- r mod m via a single Div call, using tmp as scratch.
func Mod(r *limb.Slot, m limb.Num, tmp *DivResult) error {
	if err := Div(tmp, r.View(), m); err != nil {
		return err
	}
	return r.Assign(tmp.Rem.View())
}

// MulMod computes r <- (a * b) mod m, using tmp as Mod's division scratch.
func MulMod(r *limb.Slot, a, b, m limb.Num, tmp *DivResult) error {
	if err := Mul(r, a, b); err != nil {
		return err
	}
	return Mod(r, m, tmp)
}
