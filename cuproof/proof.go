package cuproof

import "math/big"

// InnerProductProof is the recursive folding transcript of the committed
// vectors: one L/R commitment pair per halving round.
type InnerProductProof struct {
	L []*big.Int
	R []*big.Int
}

// Proof is the bundle the prover emits and the verifier consumes. It is plain
// immutable data; nothing mutates it after construction.
type Proof struct {
	A, S *big.Int // commitments to the bit vector and the blinding vectors
	C    *big.Int // commitment to the value
	CV1  *big.Int // commitment to value - lower bound
	CV2  *big.Int // commitment to upper bound - value

	T1, T2       *big.Int // commitments to the coefficients of t(X)
	T0, Tc1, Tc2 *big.Int // t(X) = T0 + Tc1*X + Tc2*X^2

	Tau1, Tau2, TauX *big.Int // blinding factors tying T1, T2 and THat together
	THat             *big.Int // claimed evaluation of t at the challenge x

	IPP InnerProductProof
}

func (proof *Proof) Serialize() []byte {
	sink := NewZeroCopySink(nil)
	for _, i := range proof.fields() {
		sink.WriteBigInt(i)
	}
	sink.WriteVarUint(uint64(len(proof.IPP.L)))
	for _, l := range proof.IPP.L {
		sink.WriteBigInt(l)
	}
	sink.WriteVarUint(uint64(len(proof.IPP.R)))
	for _, r := range proof.IPP.R {
		sink.WriteBigInt(r)
	}
	return sink.Bytes()
}

func (proof *Proof) Deserialize(b []byte) error {
	source := NewZeroCopySource(b)
	var err error
	for _, field := range []**big.Int{
		&proof.A, &proof.S, &proof.C, &proof.CV1, &proof.CV2,
		&proof.T1, &proof.T2, &proof.T0, &proof.Tc1, &proof.Tc2,
		&proof.Tau1, &proof.Tau2, &proof.TauX, &proof.THat,
	} {
		*field, err = source.NextBigInt()
		if err != nil {
			return err
		}
	}
	proof.IPP.L, err = readIntList(source)
	if err != nil {
		return err
	}
	proof.IPP.R, err = readIntList(source)
	return err
}

// serialization order: A||S||C||CV1||CV2||T1||T2||T0||Tc1||Tc2||Tau1||Tau2||TauX||THat||L||R
func (proof *Proof) fields() []*big.Int {
	return []*big.Int{
		proof.A, proof.S, proof.C, proof.CV1, proof.CV2,
		proof.T1, proof.T2, proof.T0, proof.Tc1, proof.Tc2,
		proof.Tau1, proof.Tau2, proof.TauX, proof.THat,
	}
}

func readIntList(source *ZeroCopySource) ([]*big.Int, error) {
	count, _, irregular, eof := source.NextVarUint()
	if eof {
		return nil, ErrUnexpectedEOF
	}
	if irregular || count > maxIPPRounds {
		return nil, ErrIrregularData
	}
	list := make([]*big.Int, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := source.NextBigInt()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// maxIPPRounds bounds list lengths during decoding so a corrupt header cannot
// force a huge allocation.
const maxIPPRounds = 64
