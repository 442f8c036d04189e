// Package decimal converts between a limb.Num and a base-10 string. It
// exists purely for the CLI's sake: cmd/bignum uses it to read operands
// typed on a command line and print results a human can read, and nothing
// in internal/arith or internal/rsa depends on it.
package decimal

import (
	"bignum/internal/arith"
	"bignum/internal/errors"
	"bignum/internal/limb"
)

// ten is the divisor Format repeatedly applies to peel off decimal digits.
var tenLimbs = [1]limb.Limb{10}

func ten() limb.Num { return limb.NewNum(tenLimbs[:]) }

// Format renders n in base 10. It allocates a DivResult and one working
// slot, both sized for n's limb count, as scratch; the output string itself
// is built up digit by digit.
func Format(n limb.Num) (string, error) {
	if n.Empty() {
		return "0", nil
	}

	cap := n.Len() + 1
	buf := make([]limb.Limb, 4*cap)
	div, err := arith.NewDivResult(buf, cap)
	if err != nil {
		return "", err
	}

	work := limb.NewSlot(make([]limb.Limb, cap))
	if err := work.Assign(n); err != nil {
		return "", err
	}

	var digits []byte
	for !work.Empty() {
		if err := arith.Div(div, work.View(), ten()); err != nil {
			return "", err
		}
		rem := div.Rem.View()
		d := byte('0')
		if !rem.Empty() {
			d += byte(rem.At(0))
		}
		digits = append(digits, d)
		if err := work.Assign(div.Quot.View()); err != nil {
			return "", err
		}
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// FormatGrouped renders n in base 10 with thousands separators, for
// human-facing output. Unlike humanize.Comma (which takes an int64
// and so cannot represent values outside that range), this groups the
// decimal string itself, so it stays correct at any magnitude Format can
// produce.
func FormatGrouped(n limb.Num) (string, error) {
	s, err := Format(n)
	if err != nil {
		return "", err
	}
	if len(s) <= 3 {
		return s, nil
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	groups := []string{s[:lead]}
	for i := lead; i < len(s); i += 3 {
		groups = append(groups, s[i:i+3])
	}
	out := groups[0]
	for _, g := range groups[1:] {
		out += "," + g
	}
	return out, nil
}

// LimbsForDigits returns a safe over-estimate of how many limbs a decimal
// string of the given length needs: a base-65536 limb holds a little over
// 4.8 decimal digits, so digits/4+2 always has room to spare.
func LimbsForDigits(digits int) int {
	return digits/4 + 2
}

// Parse reads a non-negative decimal string into dst via repeated
// multiply-by-ten-and-add. scratch must have capacity at least equal to
// dst's and must not alias dst; both are clobbered.
func Parse(dst, scratch *limb.Slot, s string) error {
	if s == "" {
		return errors.Invalid("decimal.Parse", "empty string")
	}
	dst.Clear()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return errors.BadFormat("decimal.Parse", "non-digit character in decimal string")
		}
		if err := arith.Mul(scratch, dst.View(), ten()); err != nil {
			return err
		}
		if err := dst.Assign(scratch.View()); err != nil {
			return err
		}
		digit := limb.Limb(c - '0')
		if digit != 0 {
			if err := arith.Add(dst, limb.NewNum([]limb.Limb{digit})); err != nil {
				return err
			}
		}
	}
	return nil
}
