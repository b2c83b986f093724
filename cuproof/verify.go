package cuproof

import (
	"math"
	"math/big"
)

// ippRounds is the expected number of folding rounds for the fixed range
// width: ceil(log2(64)) = 6.
var ippRounds = int(math.Ceil(math.Log2(rangeBits)))

// IPPCheck validates the recursive sub-proof. The default, VerifyIPPShape,
// only checks the transcript shape; a full inner-product argument can be
// swapped in without touching the surrounding protocol.
type IPPCheck func(ipp *InnerProductProof) bool

// VerifyIPPShape requires matching L/R lengths and the fixed round count.
// The algebra of the rounds is not re-verified.
func VerifyIPPShape(ipp *InnerProductProof) bool {
	if len(ipp.L) != len(ipp.R) {
		return false
	}
	return len(ipp.L) == ippRounds
}

// CuproofVerify re-derives the challenges from the proof's commitments and
// runs the consistency checks in order. Every failure mode collapses to
// false: callers must treat anything but true as "proof not valid".
func CuproofVerify(proof *Proof, g, h, n *big.Int) bool {
	return CuproofVerifyWithIPP(proof, g, h, n, VerifyIPPShape)
}

// CuproofVerifyWithRange accepts bounds for interface compatibility but does
// not use them to strengthen the check; it behaves exactly like
// CuproofVerify.
func CuproofVerifyWithRange(proof *Proof, g, h, n, a, b *big.Int) bool {
	return CuproofVerify(proof, g, h, n)
}

func CuproofVerifyWithIPP(proof *Proof, g, h, n *big.Int, ippCheck IPPCheck) (result bool) {
	defer func() {
		if err := recover(); err != nil {
			result = false
		}
	}()

	// re-derive the transcript challenges; a challenge that vanishes mod n
	// collapses the algebraic checks and is rejected outright
	y := new(big.Int).Mod(FiatShamir(proof.A, proof.S, proof.C, proof.CV1, proof.CV2), n)
	if y.Sign() == 0 {
		return false
	}
	z := new(big.Int).Mod(FiatShamir(y), n)
	if z.Sign() == 0 {
		return false
	}
	x := new(big.Int).Mod(FiatShamir(proof.T1, proof.T2), n)
	if x.Sign() == 0 {
		return false
	}

	// T1, T2 must open to the claimed coefficients
	if PedersenCommit(g, h, proof.Tc1, proof.Tau1, n).Cmp(proof.T1) != 0 {
		return false
	}
	if PedersenCommit(g, h, proof.Tc2, proof.Tau2, n).Cmp(proof.T2) != 0 {
		return false
	}

	// tHat = t0 + t1*x + t2*x^2 over the integers, no reduction
	rhs := new(big.Int).Set(proof.T0)
	rhs.Add(rhs, new(big.Int).Mul(proof.Tc1, x))
	rhs.Add(rhs, new(big.Int).Mul(proof.Tc2, new(big.Int).Mul(x, x)))
	if proof.THat.Cmp(rhs) != 0 {
		return false
	}

	// re-open tHat and the recomputed evaluation under the same blinding
	lhsCommit := PedersenCommit(g, h, proof.THat, proof.TauX, n)
	rhsCommit := PedersenCommit(g, h, rhs, proof.TauX, n)
	if lhsCommit.Cmp(rhsCommit) != 0 {
		return false
	}

	if !ippCheck(&proof.IPP) {
		return false
	}

	// top-level commitments must not vanish mod n
	for _, c := range []*big.Int{proof.A, proof.S, proof.T1, proof.T2, proof.C, proof.CV1, proof.CV2} {
		if new(big.Int).Mod(c, n).Sign() == 0 {
			return false
		}
	}

	// the value commitment and its two splits must be pairwise distinct
	if proof.C.Cmp(proof.CV1) == 0 {
		return false
	}
	if proof.C.Cmp(proof.CV2) == 0 {
		return false
	}
	if proof.CV1.Cmp(proof.CV2) == 0 {
		return false
	}

	return true
}
