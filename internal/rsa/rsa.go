// Package rsa implements the PKCS#1 v1.5 type-2 block codec on top of
// internal/arith's modular exponentiation. It owns no arithmetic of its
// own: Encrypt and Decrypt build and take apart a little-endian limb block
// and hand the modular exponentiation itself to arith.PowMod.
package rsa

import (
	"bignum/internal/arith"
	"bignum/internal/errors"
	"bignum/internal/limb"
)

// ByteSize returns K, the byte length of modulus rounded down to drop any
// leading zero byte — equivalently, the modulus's bit length divided by 8
// and rounded up. This is the exact ciphertext length Encrypt/Decrypt
// operate on.
func ByteSize(modulus limb.Num) int {
	if modulus.Empty() {
		return 0
	}
	n := modulus.Len()
	size := n * 2
	if modulus.At(n-1) <= 0xff {
		size--
	}
	return size
}

// State bundles a key's modulus and exponent views with the scratch an
// Encrypt/Decrypt call needs: Block holds the plaintext block being built
// (encrypt) or the deserialized ciphertext (decrypt), and Pow is the
// modular-exponentiation scratch bundle. Block must not alias any slot
// inside Pow or its DivResult. A State is not safe for concurrent use from
// more than one goroutine — build one State per goroutine, each with its
// own Block/Pow, as cmd/bignum's parallel demo does.
type State struct {
	Modulus  limb.Num
	Exponent limb.Num
	Block    *limb.Slot
	Pow      *arith.PowResult
}

// NewState binds modulus/exponent views to the scratch block/pow will use.
func NewState(modulus, exponent limb.Num, block *limb.Slot, pow *arith.PowResult) *State {
	return &State{Modulus: modulus, Exponent: exponent, Block: block, Pow: pow}
}

// ByteSize returns this key's block size K.
func (s *State) ByteSize() int { return ByteSize(s.Modulus) }

// Encrypt pads plaintext into a K-byte PKCS#1 v1.5 type-2 block, draws its
// random padding from oracle, exponentiates it modulo the key, and writes
// exactly K bytes into ciphertext. It returns ciphertext[:K].
//
// The block is laid out little-endian (index 0 least significant): the
// plaintext occupies the low end, a zero separator follows it, then
// non-zero random padding, then the two marker bytes 0x00, 0x02 occupy the
// top two bytes — so the block's most significant limb is exactly 0x0200,
// which Decrypt checks for. Requires len(plaintext)+11 <= K.
func (s *State) Encrypt(ciphertext, plaintext []byte, oracle ByteOracle) ([]byte, error) {
	k := s.ByteSize()
	if k == 0 {
		return nil, errors.Invalid("rsa.Encrypt", "modulus is zero")
	}
	if k%2 != 0 {
		return nil, errors.Invalid("rsa.Encrypt", "key byte size must be even (modulus top limb must exceed 0xff)")
	}
	if len(ciphertext) < k {
		return nil, errors.CapacityExceeded("rsa.Encrypt", "ciphertext buffer shorter than the key size")
	}
	l := len(plaintext)
	if l+11 > k {
		return nil, errors.Invalid("rsa.Encrypt", "plaintext too long to pad into this key size")
	}

	block := make([]byte, k)
	copy(block[:l], plaintext)
	block[l] = 0x00 // separator

	padLen := k - l - 3
	for i := 0; i < padLen; i++ {
		b := oracle.NextByte()
		for b == 0 {
			b = oracle.NextByte()
		}
		block[l+1+i] = b
	}

	block[k-2] = 0x00 // marker low byte
	block[k-1] = 0x02 // marker high byte

	if err := bytesToSlot(s.Block, block); err != nil {
		return nil, errors.Wrap("rsa.Encrypt", err)
	}

	if err := arith.PowMod(s.Pow, s.Block.View(), s.Exponent, s.Modulus); err != nil {
		return nil, errors.Wrap("rsa.Encrypt", err)
	}

	writeLimbsLE(ciphertext[:k], s.Pow.Result.View())
	return ciphertext[:k], nil
}

// Decrypt deserializes a K-byte (or longer — only the first K bytes are
// used) ciphertext, exponentiates it modulo the key, verifies the
// resulting block's top limb is the 0x0200 marker, strips the random
// padding up to its zero separator, and writes the remaining plaintext
// bytes into plaintext. It returns the prefix of plaintext actually
// written.
func (s *State) Decrypt(plaintext, ciphertext []byte) ([]byte, error) {
	k := s.ByteSize()
	if k == 0 {
		return nil, errors.Invalid("rsa.Decrypt", "modulus is zero")
	}
	if len(ciphertext) < k {
		return nil, errors.Invalid("rsa.Decrypt", "ciphertext shorter than the key size")
	}

	if err := s.Block.AssignFromView(bytesToNum(ciphertext[:k]), 0); err != nil {
		return nil, errors.Wrap("rsa.Decrypt", err)
	}

	if err := arith.PowMod(s.Pow, s.Block.View(), s.Exponent, s.Modulus); err != nil {
		return nil, errors.Wrap("rsa.Decrypt", err)
	}

	block := make([]byte, k)
	writeLimbsLE(block, s.Pow.Result.View())

	if !(block[k-2] == 0x00 && block[k-1] == 0x02) {
		return nil, errors.BadFormat("rsa.Decrypt", "decrypted block is missing the PKCS#1 type-2 marker")
	}

	// The padding between the separator and the marker is non-zero, so the
	// separator is the highest zero byte below the marker.
	sep := -1
	for i := k - 3; i >= 0; i-- {
		if block[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, errors.BadFormat("rsa.Decrypt", "no zero separator found in decrypted block")
	}

	l := sep
	if len(plaintext) < l {
		return nil, errors.CapacityExceeded("rsa.Decrypt", "plaintext buffer shorter than the recovered message")
	}
	copy(plaintext[:l], block[:l])
	return plaintext[:l], nil
}

// bytesToSlot loads a little-endian byte buffer (2 bytes per limb, low
// byte first) into slot, replacing its value.
func bytesToSlot(slot *limb.Slot, data []byte) error {
	return slot.AssignFromView(bytesToNum(data), 0)
}

// bytesToNum packs a little-endian byte buffer into a limb view over a
// freshly built limb slice: 2 bytes per limb (low byte then high byte),
// with a trailing lone byte (odd length) treated as a half limb whose
// high byte is zero.
func bytesToNum(data []byte) limb.Num {
	n := (len(data) + 1) / 2
	limbs := make([]limb.Limb, n)
	for i := 0; i < n; i++ {
		lo := data[2*i]
		var hi byte
		if 2*i+1 < len(data) {
			hi = data[2*i+1]
		}
		limbs[i] = limb.Limb(lo) | limb.Limb(hi)<<8
	}
	return limb.NewNum(limbs)
}

// writeLimbsLE serializes num's limbs little-endian (low byte then high
// byte of each limb, low limb first) into out, zero-padding out to its
// full length once num's limbs are exhausted.
func writeLimbsLE(out []byte, num limb.Num) int {
	i := 0
	for ; i < num.Len() && 2*i+1 < len(out); i++ {
		v := num.At(i)
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
	for j := 2 * i; j < len(out); j++ {
		out[j] = 0
	}
	return len(out)
}
