package cuproof

import (
	"math/big"
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestGenBitVector(t *testing.T) {
	bits := GenBitVector(big.NewInt(0b101101), 8)
	want := []int64{1, 0, 1, 1, 0, 1, 0, 0}
	for i, w := range want {
		assert.Equal(t, bits[i].Int64(), w)
	}
}

func TestPowersList(t *testing.T) {
	powers := PowersList(big.NewInt(3), 5)
	want := []int64{1, 3, 9, 27, 81}
	for i, w := range want {
		assert.Equal(t, powers[i].Int64(), w)
	}
}

func TestInnerProduct(t *testing.T) {
	a := []*big.Int{big.NewInt(1), big.NewInt(-2), big.NewInt(3)}
	b := []*big.Int{big.NewInt(4), big.NewInt(5), big.NewInt(6)}
	assert.Equal(t, InnerProduct(a, b).Int64(), int64(12))
}

func TestSubstitute(t *testing.T) {
	a0 := []*big.Int{big.NewInt(1), big.NewInt(2)}
	a1 := []*big.Int{big.NewInt(3), big.NewInt(-4)}
	y := Substitute(a0, a1, big.NewInt(10))
	assert.Equal(t, y[0].Int64(), int64(31))
	assert.Equal(t, y[1].Int64(), int64(-38))
}

func TestXofDeterminism(t *testing.T) {
	var seed [32]byte
	copy(seed[:], "cuproof xof determinism test")

	first := NewXofExpend(64, seed)
	second := NewXofExpend(64, seed)
	assert.Equal(t, first.RandomBigInt(256).Cmp(second.RandomBigInt(256)), 0)
	// the stream ratchets, successive reads differ
	assert.Equal(t, first.RandomBigInt(256).Cmp(second.RandomBigInt(128)) != 0, true)
}
