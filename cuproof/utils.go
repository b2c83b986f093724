package cuproof

import "math/big"

var one = big.NewInt(1)

// InnerProduct returns <a, b> over the integers.
func InnerProduct(a, b []*big.Int) *big.Int {
	product := new(big.Int)
	for i := 0; i < len(a); i++ {
		product.Add(product, new(big.Int).Mul(a[i], b[i]))
	}
	return product
}

func left(s []*big.Int) []*big.Int {
	var r []*big.Int
	for i := range s {
		if i&1 == 0 { // even
			r = append(r, s[i])
		}
	}
	return r
}

func right(s []*big.Int) []*big.Int {
	var r []*big.Int
	for i := range s {
		if i&1 == 1 { // odd
			r = append(r, s[i])
		}
	}
	return r
}

// PowersList returns [1, y, y^2, ..., y^(n-1)].
func PowersList(y *big.Int, n uint64) []*big.Int {
	result := make([]*big.Int, n)
	result[0] = new(big.Int).Set(one)
	for i := uint64(1); i < n; i++ {
		result[i] = new(big.Int).Mul(result[i-1], y)
	}
	return result
}

// GenBitVector returns the l low bits of n, least significant first.
func GenBitVector(n *big.Int, l uint64) []*big.Int {
	bitVector := make([]*big.Int, l)
	for i := uint64(0); i < l; i++ {
		bitVector[i] = big.NewInt(int64(n.Bit(int(i))))
	}
	return bitVector
}

// Substitute evaluates the vector polynomial a0 + a1*x entrywise.
func Substitute(a0, a1 []*big.Int, x *big.Int) []*big.Int {
	y := make([]*big.Int, len(a0))
	for i := range a0 {
		y[i] = new(big.Int).Add(a0[i], new(big.Int).Mul(a1[i], x))
	}
	return y
}
