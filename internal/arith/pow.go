package arith

import (
	"bignum/internal/errors"
	"bignum/internal/limb"
)

// PowResult bundles the scratch PowMod needs. Result and Base always hold
// values already reduced modulo the modulus, so both are sized to the
// modulus's own limb count (modCap). Exp holds a shrinking copy of the
// exponent, sized to the exponent's own limb count (expCap) since an
// exponent is not generally bounded by the modulus's size. Prod is where
// MulMod's multiply briefly produces an unreduced product before Mod
// folds it back down, so it must hold up to two modCap-sized operands'
// worth of digits: its capacity is 2*modCap. Div is a borrowed DivResult
// for PowMod's inner MulMod/Div calls. All four slots and Div's four must
// be mutually disjoint.
type PowResult struct {
	Result *limb.Slot
	Base   *limb.Slot
	Exp    *limb.Slot
	Prod   *limb.Slot
	Div    *DivResult
}

// NewPowResult carves buf into Result (modCap), Base (modCap), Exp
// (expCap), and Prod (2*modCap), then pairs them with an existing
// DivResult that PowMod's inner MulMod/Div calls reuse. buf must have
// length at least 2*modCap + expCap + 2*modCap.
func NewPowResult(buf []limb.Limb, modCap, expCap int, div *DivResult) (*PowResult, error) {
	prodCap := 2 * modCap
	total := modCap + modCap + expCap + prodCap
	if len(buf) < total {
		return nil, errors.Invalid("arith.NewPowResult", "backing buffer too small for the requested capacities")
	}
	i := 0
	next := func(n int) []limb.Limb {
		s := buf[i : i+n]
		i += n
		return s
	}
	return &PowResult{
		Result: limb.NewSlot(next(modCap)),
		Base:   limb.NewSlot(next(modCap)),
		Exp:    limb.NewSlot(next(expCap)),
		Prod:   limb.NewSlot(next(prodCap)),
		Div:    div,
	}, nil
}

// PowMod computes p.Result <- a^e mod m by square-and-multiply, driven by
// the binary expansion of e obtained through repeated DivBy2/Odd tests on
// p.Exp. a is reduced modulo m once up front (via p.Prod, which has room
// for a value larger than m), then p.Base carries the running squared
// base and p.Result the running product, both kept below m throughout.
func PowMod(p *PowResult, a, e, m limb.Num) error {
	if e.Empty() {
		p.Result.Clear()
		return nil
	}
	if m.Empty() {
		return errors.Invalid("arith.PowMod", "modulus is zero")
	}

	if err := p.Prod.Assign(a); err != nil {
		return err
	}
	if err := Mod(p.Prod, m, p.Div); err != nil {
		return err
	}
	if err := p.Base.Assign(p.Prod.View()); err != nil {
		return err
	}

	if err := p.Result.Assign(one()); err != nil {
		return err
	}
	if err := p.Exp.Assign(e); err != nil {
		return err
	}

	for !p.Exp.Empty() {
		if p.Exp.Odd() {
			if err := MulMod(p.Prod, p.Result.View(), p.Base.View(), m, p.Div); err != nil {
				return err
			}
			if err := p.Result.Assign(p.Prod.View()); err != nil {
				return err
			}
		}
		if err := MulMod(p.Prod, p.Base.View(), p.Base.View(), m, p.Div); err != nil {
			return err
		}
		if err := p.Base.Assign(p.Prod.View()); err != nil {
			return err
		}
		DivBy2(p.Exp)
	}
	return nil
}
