package cuproof

import "math/big"

// ModExp returns base**exponent mod modulus, always in [0, modulus).
// A negative base or exponent is negated before exponentiating. This is the
// scheme's fixed policy, not modular-inverse semantics: the rest of the
// protocol relies on both sides applying the exact same transform.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	b := base
	if b.Sign() < 0 {
		b = new(big.Int).Neg(b)
	}
	e := exponent
	if e.Sign() < 0 {
		e = new(big.Int).Neg(e)
	}
	return new(big.Int).Exp(b, e, modulus)
}

// PedersenCommit returns g^m * h^r mod n over the RSA group Z_n^*.
//
// The commitment is hiding for uniformly random r, binding under the
// discrete-log-relation assumption on the group, and homomorphic:
// commit(m1+m2, r1+r2) = commit(m1, r1) * commit(m2, r2) mod n.
// m and r are opaque here; any range constraint on them belongs to the
// calling protocol.
func PedersenCommit(g, h, m, r, n *big.Int) *big.Int {
	c := new(big.Int).Mul(ModExp(g, m, n), ModExp(h, r, n))
	return c.Mod(c, n)
}
