// cmd/bignum/commands/arith.go
package commands

import (
	"fmt"

	"bignum/internal/arith"
	"bignum/internal/decimal"
	"bignum/internal/limb"

	pkgerrors "github.com/pkg/errors"
)

// AddCommand handles `bignum add A B`.
func AddCommand(args []string) error {
	if err := requireArgs("add", args, 2); err != nil {
		return err
	}
	a, b, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}

	result := limb.NewSlot(make([]limb.Limb, max(a.Cap, b.Cap)+1))
	if err := result.Assign(a.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "add")
	}
	if err := arith.Add(result, b.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "add")
	}
	return printResult(result.View())
}

// SubCommand handles `bignum sub A B` (requires A >= B).
func SubCommand(args []string) error {
	if err := requireArgs("sub", args, 2); err != nil {
		return err
	}
	a, b, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}
	if limb.Less(a.Slot.View(), b.Slot.View()) {
		return fmt.Errorf("sub: %s is less than %s, result would be negative", args[0], args[1])
	}

	result := limb.NewSlot(make([]limb.Limb, a.Cap))
	if err := result.Assign(a.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "sub")
	}
	if err := arith.Sub(result, b.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "sub")
	}
	return printResult(result.View())
}

// MulCommand handles `bignum mul A B`.
func MulCommand(args []string) error {
	if err := requireArgs("mul", args, 2); err != nil {
		return err
	}
	a, b, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}

	result := limb.NewSlot(make([]limb.Limb, a.Cap+b.Cap))
	if err := arith.Mul(result, a.Slot.View(), b.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "mul")
	}
	return printResult(result.View())
}

// DivCommand handles `bignum div A B`, printing the quotient.
func DivCommand(args []string) error {
	return divOrMod("div", args, false)
}

// ModCommand handles `bignum mod A B`, printing the remainder.
func ModCommand(args []string) error {
	return divOrMod("mod", args, true)
}

func divOrMod(op string, args []string, remainder bool) error {
	if err := requireArgs(op, args, 2); err != nil {
		return err
	}
	a, b, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}
	if b.Slot.Empty() {
		return fmt.Errorf("%s: division by zero", op)
	}

	divCap := 2*max(a.Cap, b.Cap) + 2
	buf := make([]limb.Limb, 4*divCap)
	div, err := arith.NewDivResult(buf, divCap)
	if err != nil {
		return pkgerrors.Wrap(err, op)
	}
	if err := arith.Div(div, a.Slot.View(), b.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, op)
	}
	if remainder {
		return printResult(div.Rem.View())
	}
	return printResult(div.Quot.View())
}

// PowCommand handles `bignum pow A E M`, printing A^E mod M.
func PowCommand(args []string) error {
	if err := requireArgs("pow", args, 3); err != nil {
		return err
	}
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	e, err := parseOperand(args[1])
	if err != nil {
		return err
	}
	m, err := parseOperand(args[2])
	if err != nil {
		return err
	}
	if m.Slot.Empty() {
		return fmt.Errorf("pow: modulus must be non-zero")
	}

	modCap, expCap := m.Cap, e.Cap
	divCap := 4*modCap + 4
	divBuf := make([]limb.Limb, 4*divCap)
	div, err := arith.NewDivResult(divBuf, divCap)
	if err != nil {
		return pkgerrors.Wrap(err, "pow")
	}

	powBuf := make([]limb.Limb, 4*modCap+expCap)
	pow, err := arith.NewPowResult(powBuf, modCap, expCap, div)
	if err != nil {
		return pkgerrors.Wrap(err, "pow")
	}

	if err := arith.PowMod(pow, a.Slot.View(), e.Slot.View(), m.Slot.View()); err != nil {
		return pkgerrors.Wrap(err, "pow")
	}
	return printResult(pow.Result.View())
}

func parsePair(as, bs string) (*operand, *operand, error) {
	a, err := parseOperand(as)
	if err != nil {
		return nil, nil, err
	}
	b, err := parseOperand(bs)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func printResult(n limb.Num) error {
	s, err := decimal.Format(n)
	if err != nil {
		return pkgerrors.Wrap(err, "formatting result")
	}
	fmt.Println(s)
	return nil
}
