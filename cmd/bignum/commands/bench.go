// cmd/bignum/commands/bench.go
package commands

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"bignum/internal/arith"
	"bignum/internal/limb"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/remyoudompheng/bigfft"
)

// BenchMulCommand handles `bignum bench mul LIMBS`: it multiplies two
// random LIMBS-limb operands with arith.Mul and cross-checks the product
// against both math/big and bigfft's FFT multiplier, reporting timings for
// all three. A mismatch prints a kr/pretty diff of the math/big product
// against arith.Mul's product and fails.
func BenchMulCommand(args []string) error {
	if err := requireArgs("bench mul", args, 1); err != nil {
		return err
	}
	limbCount, err := strconv.Atoi(args[0])
	if err != nil || limbCount <= 0 {
		return fmt.Errorf("bench mul: LIMBS must be a positive integer, got %q", args[0])
	}

	a, err := randomLimbs(limbCount)
	if err != nil {
		return err
	}
	b, err := randomLimbs(limbCount)
	if err != nil {
		return err
	}
	aNum, bNum := limb.NewNum(a), limb.NewNum(b)

	result := limb.NewSlot(make([]limb.Limb, 2*limbCount))
	start := time.Now()
	if err := arith.Mul(result, aNum, bNum); err != nil {
		return err
	}
	coreElapsed := time.Since(start)

	aBig, bBig := numToBig(aNum), numToBig(bNum)

	start = time.Now()
	wantBig := new(big.Int).Mul(aBig, bBig)
	bigElapsed := time.Since(start)

	start = time.Now()
	wantFFT := bigfft.Mul(aBig, bBig)
	fftElapsed := time.Since(start)

	gotBig := numToBig(result.View())
	if gotBig.Cmp(wantBig) != 0 || gotBig.Cmp(wantFFT) != 0 {
		for _, line := range pretty.Diff(wantBig, gotBig) {
			fmt.Println(line)
		}
		return fmt.Errorf("bench mul: product mismatch at %d limbs", limbCount)
	}

	fmt.Printf("limbs=%s  arith.Mul=%s  math/big=%s  bigfft=%s  match=true\n",
		humanize.Comma(int64(limbCount)), coreElapsed, bigElapsed, fftElapsed)
	return nil
}

// randomLimbs draws n random limbs from crypto/rand, with the top limb
// forced non-zero so the value is always canonical at exactly n limbs.
func randomLimbs(n int) ([]limb.Limb, error) {
	raw := make([]byte, 2*n)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	limbs := make([]limb.Limb, n)
	for i := 0; i < n; i++ {
		limbs[i] = limb.Limb(raw[2*i]) | limb.Limb(raw[2*i+1])<<8
	}
	if limbs[n-1] == 0 {
		limbs[n-1] = 1
	}
	return limbs, nil
}

// numToBig converts a limb.Num to a math/big.Int for cross-checking.
func numToBig(n limb.Num) *big.Int {
	result := new(big.Int)
	base := big.NewInt(limb.Base)
	for i := n.Len() - 1; i >= 0; i-- {
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(n.At(i))))
	}
	return result
}
