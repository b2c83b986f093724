package cuproof

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// TrustedSetup produces a fresh RSA group for the requested modulus bit
// length: n = p*q with the factorization discarded by the honest caller, and
// two distinct generators drawn from an XOF stream. The party running this is
// trusted not to keep p and q.
func TrustedSetup(bits int) (g, h, n *big.Int, err error) {
	if bits < 16 {
		return nil, nil, nil, errors.New("modulus too small")
	}
	p, err := rand.Prime(rand.Reader, bits/2)
	if err != nil {
		return nil, nil, nil, err
	}
	q, err := rand.Prime(rand.Reader, bits-bits/2)
	if err != nil {
		return nil, nil, nil, err
	}
	n = new(big.Int).Mul(p, q)

	var seed [32]byte
	if _, err = rand.Read(seed[:]); err != nil {
		return nil, nil, nil, err
	}
	xof := NewXofExpend(uint16((bits+7)/8), seed)
	g = randomGenerator(&xof, bits, n, nil)
	h = randomGenerator(&xof, bits, n, g)
	return g, h, n, nil
}

// randomGenerator draws from the stream until it lands on a nonzero residue
// distinct from avoid. Squaring keeps the result in the quadratic residues.
func randomGenerator(xof *XofExpend, bits int, n, avoid *big.Int) *big.Int {
	for {
		g := xof.RandomBigInt(bits)
		g.Mul(g, g).Mod(g, n)
		if g.Sign() == 0 {
			continue
		}
		if avoid != nil && g.Cmp(avoid) == 0 {
			continue
		}
		return g
	}
}

// FastTestSetup returns a fixed, insecure parameter set. The modulus is the
// product of the Mersenne primes 2^61-1 and 2^89-1, far too small to be
// binding; it exists for tests and quick CLI experiments only.
func FastTestSetup() (g, h, n *big.Int) {
	p := new(big.Int).Sub(new(big.Int).Lsh(one, 61), one)
	q := new(big.Int).Sub(new(big.Int).Lsh(one, 89), one)
	n = new(big.Int).Mul(p, q)
	return big.NewInt(4), big.NewInt(9), n
}
