package cuproof

import (
	"crypto/sha256"
	"math/big"
)

// FiatShamir turns a sequence of transcript integers into a challenge. The
// inputs are concatenated as base-10 strings with no separators, hashed with
// SHA-256 and the digest read as an unsigned big-endian integer. Input order
// is load-bearing. No reduction happens here; callers reduce mod n and must
// re-check the result for zero afterwards.
func FiatShamir(inputs ...*big.Int) *big.Int {
	h := sha256.New()
	for _, in := range inputs {
		h.Write([]byte(in.Text(10)))
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}
