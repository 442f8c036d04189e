package rsa

import "crypto/rand"

// ByteOracle supplies the random padding bytes Encrypt needs. Encrypt takes
// it as an interface instead of reading crypto/rand itself: callers that
// need bit-exact test vectors can hand in ConstantOracle instead.
type ByteOracle interface {
	NextByte() byte
}

// ConstantOracle always returns Value. It is a direct port of the
// reference source's random_char TODO stub, kept around so encryption can
// be replayed byte-for-byte in tests.
type ConstantOracle struct {
	Value byte
}

func (o ConstantOracle) NextByte() byte { return o.Value }

// DefaultConstantOracle is the ConstantOracle most callers reach for when
// they want reproducible padding rather than true randomness.
var DefaultConstantOracle = ConstantOracle{Value: 42}

// CryptoOracle draws padding bytes from crypto/rand.Reader. This is the
// byte source a caller should actually inject in production; Encrypt only
// reads crypto/rand when it is handed this oracle.
type CryptoOracle struct{}

func (CryptoOracle) NextByte() byte {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("rsa: crypto/rand read failed: " + err.Error())
	}
	return b[0]
}
