package cuproof

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/magiconair/properties"
	"github.com/mr-tron/base58"
)

// Parameter and proof files are properties files; every integer value is the
// base58 encoding of its big-endian magnitude. All persisted integers are
// non-negative, so no sign is stored.

func SaveParams(path string, g, h, n *big.Int) error {
	p := properties.NewProperties()
	for key, v := range map[string]*big.Int{"g": g, "h": h, "n": n} {
		if _, _, err := p.Set(key, base58.Encode(v.Bytes())); err != nil {
			return err
		}
	}
	return writeFile(path, p)
}

func LoadParams(path string) (g, h, n *big.Int, err error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, nil, nil, err
	}
	if g, err = getInt(p, "g"); err != nil {
		return nil, nil, nil, err
	}
	if h, err = getInt(p, "h"); err != nil {
		return nil, nil, nil, err
	}
	if n, err = getInt(p, "n"); err != nil {
		return nil, nil, nil, err
	}
	return g, h, n, nil
}

func SaveProof(path string, proof *Proof) error {
	p := properties.NewProperties()
	if _, _, err := p.Set("proof", base58.Encode(proof.Serialize())); err != nil {
		return err
	}
	return writeFile(path, p)
}

func LoadProof(path string) (*Proof, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, err
	}
	encoded, ok := p.Get("proof")
	if !ok {
		return nil, errors.New("missing key proof")
	}
	blob, err := base58.Decode(encoded)
	if err != nil {
		return nil, err
	}
	proof := new(Proof)
	if err := proof.Deserialize(blob); err != nil {
		return nil, err
	}
	return proof, nil
}

// HexToBigInt parses a hex string, with or without a 0x prefix.
func HexToBigInt(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	i, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return i, nil
}

func writeFile(path string, p *properties.Properties) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := p.Write(f, properties.UTF8); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func getInt(p *properties.Properties, key string) (*big.Int, error) {
	encoded, ok := p.Get(key)
	if !ok {
		return nil, fmt.Errorf("missing key %s", key)
	}
	b, err := base58.Decode(encoded)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
