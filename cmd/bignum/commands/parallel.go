// cmd/bignum/commands/parallel.go
package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"bignum/internal/rsa"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ParallelCommand handles `bignum parallel N MODULUS EXPONENT`: it
// encrypts N distinct demo messages concurrently, one goroutine per
// message, each with its own rsa.State and scratch (a State's Block/Pow
// must not be shared across goroutines). errgroup.Group fans the work out
// and reports the first error, if any; a per-goroutine uuid ties each
// result line back to the worker that produced it.
func ParallelCommand(args []string) error {
	if err := requireArgs("parallel", args, 3); err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("parallel: N must be a positive integer, got %q", args[0])
	}
	modulusArg, exponentArg := args[1], args[2]

	results := make([]string, n)
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			state, err := newRSAState(modulusArg, exponentArg)
			if err != nil {
				return pkgerrors.Wrapf(err, "worker %d", i)
			}
			id := uuid.New()
			plaintext := []byte(fmt.Sprintf("message-%d-%s", i, id))
			k := state.ByteSize()
			if len(plaintext)+11 > k {
				plaintext = plaintext[:k-11]
			}
			ciphertext := make([]byte, k)
			out, err := state.Encrypt(ciphertext, plaintext, rsa.DefaultConstantOracle)
			if err != nil {
				return pkgerrors.Wrapf(err, "worker %d [%s]", i, id)
			}
			results[i] = fmt.Sprintf("[%s] worker %d: %s", id, i, hex.EncodeToString(out))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}
