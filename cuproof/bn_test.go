package cuproof

import (
	"math/big"
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestModExpZeroExponent(t *testing.T) {
	n := big.NewInt(97)
	assert.Equal(t, ModExp(big.NewInt(5), big.NewInt(0), n).Int64(), int64(1))
	assert.Equal(t, ModExp(big.NewInt(-5), big.NewInt(0), n).Int64(), int64(1))
	assert.Equal(t, ModExp(big.NewInt(1), big.NewInt(0), big.NewInt(1)).Int64(), int64(0))
}

func TestModExpNegativeOperands(t *testing.T) {
	n := big.NewInt(97)
	// a negative base or exponent is negated, not inverted
	assert.Equal(t, ModExp(big.NewInt(-2), big.NewInt(5), n).Cmp(ModExp(big.NewInt(2), big.NewInt(5), n)), 0)
	assert.Equal(t, ModExp(big.NewInt(2), big.NewInt(-5), n).Cmp(ModExp(big.NewInt(2), big.NewInt(5), n)), 0)
	assert.Equal(t, ModExp(big.NewInt(-2), big.NewInt(-5), n).Int64(), int64(32))
}

func TestModExpRange(t *testing.T) {
	n := big.NewInt(91)
	for base := int64(-10); base <= 10; base++ {
		for exp := int64(-4); exp <= 4; exp++ {
			got := ModExp(big.NewInt(base), big.NewInt(exp), n)
			if got.Sign() < 0 || got.Cmp(n) >= 0 {
				t.Fatalf("ModExp(%d, %d, 91) = %v out of [0, n)", base, exp, got)
			}
		}
	}
}

func TestPedersenCommitRange(t *testing.T) {
	g, h, n := FastTestSetup()
	for m := int64(0); m < 20; m++ {
		for r := int64(0); r < 20; r += 7 {
			c := PedersenCommit(g, h, big.NewInt(m), big.NewInt(r), n)
			if c.Sign() < 0 || c.Cmp(n) >= 0 {
				t.Fatalf("commitment %v out of [0, n)", c)
			}
		}
	}
}

func TestPedersenCommitHomomorphism(t *testing.T) {
	g, h, n := FastTestSetup()
	m1, r1 := big.NewInt(123456), big.NewInt(789)
	m2, r2 := big.NewInt(654321), big.NewInt(987)

	c1 := PedersenCommit(g, h, m1, r1, n)
	c2 := PedersenCommit(g, h, m2, r2, n)
	product := new(big.Int).Mul(c1, c2)
	product.Mod(product, n)

	sum := PedersenCommit(g, h, new(big.Int).Add(m1, m2), new(big.Int).Add(r1, r2), n)
	assert.Equal(t, product.Cmp(sum), 0)
}
