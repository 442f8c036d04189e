// Package errors defines the single failure kind raised by the bignum core.
//
// Every mutating operation in internal/limb, internal/arith and internal/rsa
// reports failures through a BignumError rather than a typed hierarchy:
// there are exactly two core conditions (capacity exceeded, invalid
// argument) and a third format condition, raised by the RSA codec's block
// checks and by decimal parsing. Keeping
// them as one error type with a Kind lets callers branch with errors.As
// without having to know which package raised the failure.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies why an operation could not complete.
type Kind string

const (
	// Capacity is raised when a write would advance a slot past its end.
	Capacity Kind = "CapacityExceeded"
	// InvalidArgument is raised by division by zero, RSA plaintext that
	// does not leave room for padding, or ciphertext shorter than a block.
	InvalidArgument Kind = "InvalidArgument"
	// Format is raised when a decrypted RSA block fails to carry the
	// expected PKCS#1 v1.5 type-2 marker or separator, and when
	// decimal.Parse meets a non-digit character.
	Format Kind = "FormatError"
)

// BignumError is the one failure kind surfaced by the core: no further
// classification beyond Kind, and no retry semantics.
type BignumError struct {
	Kind Kind
	Op   string // operation that failed, e.g. "add", "rsa.Encrypt"
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *BignumError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *BignumError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, errors.ErrCapacity) work by comparing Kind values
// wrapped as sentinel errors via kindSentinel.
func (e *BignumError) Is(target error) bool {
	if k, ok := target.(kindSentinel); ok {
		return e.Kind == Kind(k)
	}
	return false
}

type kindSentinel Kind

func (k kindSentinel) Error() string { return string(k) }

// Sentinel values usable with errors.Is(err, errors.ErrCapacity).
var (
	ErrCapacity        error = kindSentinel(Capacity)
	ErrInvalidArgument error = kindSentinel(InvalidArgument)
	ErrFormat          error = kindSentinel(Format)
)

// CapacityExceeded reports that op could not write past the bound of a slot.
func CapacityExceeded(op, msg string) *BignumError {
	return &BignumError{Kind: Capacity, Op: op, Msg: msg}
}

// Invalid reports a malformed or out-of-range argument to op.
func Invalid(op, msg string) *BignumError {
	return &BignumError{Kind: InvalidArgument, Op: op, Msg: msg}
}

// BadFormat reports op received data that fails the expected wire format.
func BadFormat(op, msg string) *BignumError {
	return &BignumError{Kind: Format, Op: op, Msg: msg}
}

// Wrap attaches additional operation context to an existing error without
// discarding its Kind when it already is a *BignumError, using pkg/errors so
// the original call site survives in %+v output for CLI diagnostics.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BignumError); ok {
		wrapped := *be
		if be.Err != nil {
			wrapped.Err = pkgerrors.Wrap(be.Err, be.Msg)
		}
		wrapped.Op = op + "->" + be.Op
		return &wrapped
	}
	return pkgerrors.Wrapf(err, "%s", op)
}
