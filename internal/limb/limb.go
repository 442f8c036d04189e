// Package limb implements the digit-vector abstractions the rest of the
// bignum core is built on: a read-only View over a little-endian limb
// sequence (Num) and a writable, fixed-capacity Slot bound to a borrowed
// region. Neither type allocates; a Slot's backing array is provided by
// the caller and its capacity never grows.
package limb

import (
	"bignum/internal/errors"
)

// Limb is one base-Base digit.
type Limb = uint16

// Base is the radix of the canonical representation, 2^16.
const Base = 0x10000

// Num is an immutable view over a little-endian limb sequence: index 0 is
// the least significant limb. A Num is always canonical — no trailing
// (high-index) zero limb, zero itself represented by a zero-length slice.
// Num carries no ownership; it borrows from a Slot or a constant slice, and
// is invalidated by any later mutation of that Slot.
type Num struct {
	limbs []Limb
}

// NewNum builds a canonical view over limbs, trimming any trailing
// (high-index) zero limbs. The backing array is not copied.
func NewNum(limbs []Limb) Num {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return Num{limbs: limbs[:n]}
}

// Len returns the number of limbs in the canonical form (0 for zero).
func (n Num) Len() int { return len(n.limbs) }

// Empty reports whether n represents zero.
func (n Num) Empty() bool { return len(n.limbs) == 0 }

// At returns the limb at index i, 0 being least significant.
func (n Num) At(i int) Limb { return n.limbs[i] }

// Limbs exposes the underlying canonical slice for iteration by
// internal/arith. Callers must not mutate it.
func (n Num) Limbs() []Limb { return n.limbs }

// Odd reports whether n is odd (its least significant limb's low bit).
func (n Num) Odd() bool { return len(n.limbs) > 0 && n.limbs[0]&1 == 1 }

// Equal reports whether a and b represent the same value.
func Equal(a, b Num) bool {
	if len(a.limbs) != len(b.limbs) {
		return false
	}
	for i := range a.limbs {
		if a.limbs[i] != b.limbs[i] {
			return false
		}
	}
	return true
}

// Less reports whether a < b: shorter canonical form is smaller; equal
// length compares from the most significant (highest-index) limb down.
func Less(a, b Num) bool {
	if len(a.limbs) != len(b.limbs) {
		return len(a.limbs) < len(b.limbs)
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			return a.limbs[i] < b.limbs[i]
		}
	}
	return false
}

// LessEqual reports whether a <= b.
func LessEqual(a, b Num) bool { return !Less(b, a) }

// Slot is a fixed-capacity writable limb region `region[0:cap]` plus a
// `used` cursor marking the logical length `region[0:used]`. Index 0 is
// the least significant limb; used grows upward from 0 as limbs are
// pushed, mirroring a Go slice's own length convention. Capacity is fixed
// at construction: writing past it raises errors.Capacity rather than
// growing the backing array.
type Slot struct {
	region []Limb
	used   int
}

// NewSlot binds a Slot to a caller-provided region of fixed capacity
// len(region). The Slot starts empty regardless of the region's contents.
func NewSlot(region []Limb) *Slot {
	return &Slot{region: region}
}

// Cap returns the slot's fixed capacity.
func (s *Slot) Cap() int { return len(s.region) }

// Used returns the current logical length.
func (s *Slot) Used() int { return s.used }

// Empty reports whether the slot currently holds zero.
func (s *Slot) Empty() bool { return s.used == 0 }

// Odd reports whether the slot's value is odd.
func (s *Slot) Odd() bool { return s.used > 0 && s.region[0]&1 == 1 }

// Clear sets the logical length to zero without touching capacity.
func (s *Slot) Clear() { s.used = 0 }

// View returns a read-only Num over the slot's current value. The view is
// invalidated by the slot's next mutation.
func (s *Slot) View() Num { return NewNum(s.region[:s.used]) }

// Push appends a limb at position used, advancing used by one. It fails
// with errors.Capacity if used already equals the slot's capacity.
func (s *Slot) Push(v Limb) error {
	if s.used == len(s.region) {
		return errors.CapacityExceeded("Slot.Push", "no room for another limb")
	}
	s.region[s.used] = v
	s.used++
	return nil
}

// trim drops trailing (high-index) zero limbs so the slot's value stays
// canonical. Called by AssignFromView, and through Trim by the arithmetic
// primitives that can leave a high zero limb (Sub, DivBy2).
func (s *Slot) trim() {
	for s.used > 0 && s.region[s.used-1] == 0 {
		s.used--
	}
}

// Trim is the exported form of trim, for callers in internal/arith that
// mutate region/used directly via Raw.
func (s *Slot) Trim() { s.trim() }

// Raw exposes the backing region and a pointer to used for internal/arith's
// in-place cursor walks. It must only be used within this module's sibling
// packages, never outside the core.
func (s *Slot) Raw() (region []Limb, used *int) { return s.region, &s.used }

// AssignFromView sets the slot's value to view, left-shifted by k limbs
// (equivalent to multiplying by Base^k): it clears the slot, writes k zero
// limbs, then appends view's limbs low-to-high. It fails with
// errors.Capacity if the total would exceed the slot's capacity.
func (s *Slot) AssignFromView(view Num, shift int) error {
	total := shift + view.Len()
	if total > len(s.region) {
		return errors.CapacityExceeded("Slot.AssignFromView", "shifted value does not fit in slot")
	}
	for i := 0; i < shift; i++ {
		s.region[i] = 0
	}
	copy(s.region[shift:total], view.limbs)
	s.used = total
	s.trim()
	return nil
}

// Assign is AssignFromView with no shift.
func (s *Slot) Assign(view Num) error { return s.AssignFromView(view, 0) }
