// cmd/bignum/commands/parse.go
package commands

import (
	"bignum/internal/decimal"
	"bignum/internal/errors"
	"bignum/internal/limb"

	pkgerrors "github.com/pkg/errors"
)

// operand is a parsed decimal argument: Slot holds the value, and Cap
// records the capacity it was built with so callers can size downstream
// scratch off of it.
type operand struct {
	Slot *limb.Slot
	Cap  int
}

// parseOperand parses a decimal string into a freshly allocated Slot sized
// generously for its digit count.
func parseOperand(s string) (*operand, error) {
	limbs := decimal.LimbsForDigits(len(s)) + 1
	dst := limb.NewSlot(make([]limb.Limb, limbs))
	scratch := limb.NewSlot(make([]limb.Limb, limbs))
	if err := decimal.Parse(dst, scratch, s); err != nil {
		return nil, pkgerrors.Wrapf(err, "parsing %q", s)
	}
	return &operand{Slot: dst, Cap: limbs}, nil
}

func requireArgs(op string, args []string, n int) error {
	if len(args) < n {
		return errors.Invalid(op, "not enough arguments")
	}
	return nil
}
