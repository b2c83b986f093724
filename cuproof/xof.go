package cuproof

import (
	"io"
	"math/big"

	"golang.org/x/crypto/blake2s"
)

// XofExpend is a ratcheting blake2s XOF stream: every read folds a fresh
// 32-byte key back into the state before producing output, so reads are
// deterministic in the seed but never reuse stream positions.
type XofExpend struct {
	Xof  blake2s.XOF
	key  [32]byte
	size uint16
}

func NewXofExpend(size uint16, key [32]byte) XofExpend {
	xofExpend := XofExpend{
		key:  key,
		size: size,
	}
	xofExpend.Expend()
	return xofExpend
}

func (self *XofExpend) Read(p []byte) (int, error) {
	l := len(p)
	if self.Xof == nil {
		self.Expend()
	}
	updateKey := make([]byte, 32)
	k, _ := self.Xof.Read(updateKey)
	if k != 32 {
		return 0, io.ErrUnexpectedEOF
	}
	copy(self.key[:], updateKey)
	n, _ := self.Xof.Read(p)
	if n != l {
		return 0, io.ErrUnexpectedEOF
	}
	self.Expend()
	return n, nil
}

func (self *XofExpend) Expend() {
	self.Xof, _ = blake2s.NewXOF(self.size+32, self.key[:])
}

// RandomBigInt reads bits/8 bytes from the stream as a non-negative integer.
func (self *XofExpend) RandomBigInt(bits int) *big.Int {
	buf := make([]byte, (bits+7)/8)
	self.Read(buf)
	return new(big.Int).SetBytes(buf)
}
