package cuproof

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.properties")
	g, h, n := FastTestSetup()

	assert.Nil(t, SaveParams(path, g, h, n))
	g2, h2, n2, err := LoadParams(path)
	assert.Nil(t, err)
	assert.Zero(t, g.Cmp(g2))
	assert.Zero(t, h.Cmp(h2))
	assert.Zero(t, n.Cmp(n2))
}

func TestProofRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.properties")
	proof, g, h, n := testProof(t)

	assert.Nil(t, SaveProof(path, proof))
	loaded, err := LoadProof(path)
	assert.Nil(t, err)
	assert.True(t, bytes.Equal(proof.Serialize(), loaded.Serialize()))
	assert.True(t, CuproofVerify(loaded, g, h, n))
}

func TestLoadMissingFile(t *testing.T) {
	_, _, _, err := LoadParams(filepath.Join(t.TempDir(), "nope.properties"))
	assert.NotNil(t, err)
	_, err = LoadProof(filepath.Join(t.TempDir(), "nope.properties"))
	assert.NotNil(t, err)
}

func TestHexToBigInt(t *testing.T) {
	v, err := HexToBigInt("0x2a")
	assert.Nil(t, err)
	assert.Equal(t, int64(42), v.Int64())

	v, err = HexToBigInt("FF")
	assert.Nil(t, err)
	assert.Equal(t, int64(255), v.Int64())

	_, err = HexToBigInt("0xzz")
	assert.NotNil(t, err)
	_, err = HexToBigInt("")
	assert.NotNil(t, err)
}
