package cuproof

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

// rangeBits is the fixed width of the proven range; the folding transcript
// always runs log2(rangeBits) rounds.
const rangeBits = 64

var ErrOutOfRange = errors.New("value not in [lower, upper)")

// CuproofProve builds a proof that the value committed to by
// PedersenCommit(g, h, v, r, n) lies in [a, b). The blinding r stays secret;
// all other randomness is drawn from an XOF seeded with the prover's secrets,
// so proving is deterministic in its inputs.
func CuproofProve(v, r, a, b, g, h, n *big.Int) (*Proof, error) {
	if v.Cmp(a) < 0 || v.Cmp(b) >= 0 {
		return nil, ErrOutOfRange
	}

	xof := proverXof(v, r, n)

	cm := PedersenCommit(g, h, v, r, n)

	// commitments to the two split representations v-a and b-v
	v1 := new(big.Int).Sub(v, a)
	v2 := new(big.Int).Sub(b, v)
	r1 := xof.RandomBigInt(256)
	r2 := xof.RandomBigInt(256)
	cv1 := PedersenCommit(g, h, v1, r1, n)
	cv2 := PedersenCommit(g, h, v2, r2, n)

	// bit decomposition of v-a and its shifted complement
	aL := GenBitVector(v1, rangeBits)
	aR := make([]*big.Int, rangeBits)
	for i := range aL {
		aR[i] = new(big.Int).Sub(aL[i], one)
	}

	// blinding vectors
	sL := make([]*big.Int, rangeBits)
	sR := make([]*big.Int, rangeBits)
	for i := 0; i < rangeBits; i++ {
		sL[i] = xof.RandomBigInt(128)
		sR[i] = xof.RandomBigInt(128)
	}

	powersOfTwo := PowersList(big.NewInt(2), rangeBits)
	alpha := xof.RandomBigInt(256)
	rho := xof.RandomBigInt(256)
	aCommit := PedersenCommit(g, h, InnerProduct(aL, powersOfTwo), alpha, n)
	sCommit := PedersenCommit(g, h, InnerProduct(sL, powersOfTwo), rho, n)

	y := new(big.Int).Mod(FiatShamir(aCommit, sCommit, cm, cv1, cv2), n)
	z := new(big.Int).Mod(FiatShamir(y), n)

	// l(X) = l0 + l1*X, r(X) = r0 + r1*X over the integers
	zz := new(big.Int).Mul(z, z)
	powersOfY := PowersList(y, rangeBits)
	l0 := make([]*big.Int, rangeBits)
	l1 := sL
	r0 := make([]*big.Int, rangeBits)
	r1v := make([]*big.Int, rangeBits)
	for i := 0; i < rangeBits; i++ {
		l0[i] = new(big.Int).Sub(aL[i], z)
		r0[i] = new(big.Int).Mul(powersOfY[i], new(big.Int).Add(aR[i], z))
		r0[i].Add(r0[i], new(big.Int).Mul(zz, powersOfTwo[i]))
		r1v[i] = new(big.Int).Mul(powersOfY[i], sR[i])
	}

	// t(X) = t0 + t1*X + t2*X^2
	t0 := InnerProduct(l0, r0)
	t1 := new(big.Int).Add(InnerProduct(l0, r1v), InnerProduct(l1, r0))
	t2 := InnerProduct(l1, r1v)

	tau1 := xof.RandomBigInt(256)
	tau2 := xof.RandomBigInt(256)
	t1Commit := PedersenCommit(g, h, t1, tau1, n)
	t2Commit := PedersenCommit(g, h, t2, tau2, n)

	x := new(big.Int).Mod(FiatShamir(t1Commit, t2Commit), n)
	xx := new(big.Int).Mul(x, x)

	// tHat = t(x), evaluated without reduction
	tHat := new(big.Int).Set(t0)
	tHat.Add(tHat, new(big.Int).Mul(t1, x))
	tHat.Add(tHat, new(big.Int).Mul(t2, xx))

	taux := new(big.Int).Add(new(big.Int).Mul(tau2, xx), new(big.Int).Mul(tau1, x))

	l := Substitute(l0, l1, x)
	rv := Substitute(r0, r1v, x)
	ipp := genInnerProductProof(&xof, l, rv, g, h, n)

	return &Proof{
		A:    aCommit,
		S:    sCommit,
		C:    cm,
		CV1:  cv1,
		CV2:  cv2,
		T1:   t1Commit,
		T2:   t2Commit,
		T0:   t0,
		Tc1:  t1,
		Tc2:  t2,
		Tau1: tau1,
		Tau2: tau2,
		TauX: taux,
		THat: tHat,
		IPP:  ipp,
	}, nil
}

// genInnerProductProof folds the l and r vectors down to length one, emitting
// a committed cross term pair per round and chaining the fold challenge from
// the round's own commitments.
func genInnerProductProof(xof *XofExpend, l, r []*big.Int, g, h, n *big.Int) InnerProductProof {
	var Ls, Rs []*big.Int

	for len(l) > 1 {
		cL := InnerProduct(left(l), right(r))
		cR := InnerProduct(right(l), left(r))

		Li := PedersenCommit(g, h, cL, xof.RandomBigInt(256), n)
		Ri := PedersenCommit(g, h, cR, xof.RandomBigInt(256), n)
		Ls = append(Ls, Li)
		Rs = append(Rs, Ri)

		u := new(big.Int).Mod(FiatShamir(Li, Ri), n)

		lNext := make([]*big.Int, 0, len(l)/2)
		rNext := make([]*big.Int, 0, len(r)/2)
		lLeft, lRight := left(l), right(l)
		rLeft, rRight := left(r), right(r)
		for i := range lLeft {
			lNext = append(lNext, new(big.Int).Add(new(big.Int).Mul(lLeft[i], u), lRight[i]))
			rNext = append(rNext, new(big.Int).Add(rLeft[i], new(big.Int).Mul(rRight[i], u)))
		}
		l, r = lNext, rNext
	}

	return InnerProductProof{L: Ls, R: Rs}
}

func proverXof(v, r, n *big.Int) XofExpend {
	h := sha256.New()
	h.Write([]byte(v.Text(10)))
	h.Write([]byte(r.Text(10)))
	h.Write([]byte(n.Text(10)))
	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return NewXofExpend(64, seed)
}
