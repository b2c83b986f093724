package cuproof

import (
	"encoding/binary"
	"errors"
	"math/big"
)

// ZeroCopySink accumulates the binary form of a proof without intermediate
// buffers.
type ZeroCopySink struct {
	buf []byte
}

// NewZeroCopySink returns a sink writing into b.
func NewZeroCopySink(b []byte) *ZeroCopySink {
	if b == nil {
		b = make([]byte, 0, 512)
	}
	return &ZeroCopySink{b}
}

// tryGrowByReslice is a inlineable version of grow for the fast-case where the
// internal buffer only needs to be resliced.
// It returns the index where bytes should be written and whether it succeeded.
func (self *ZeroCopySink) tryGrowByReslice(n int) (int, bool) {
	if l := len(self.buf); n <= cap(self.buf)-l {
		self.buf = self.buf[:l+n]
		return l, true
	}
	return 0, false
}

const maxInt = int(^uint(0) >> 1)

var ErrTooLarge = errors.New("bytes.Buffer: too large")

// grow grows the buffer to guarantee space for n more bytes.
// It returns the index where bytes should be written.
// If the buffer can't grow it will panic with ErrTooLarge.
func (self *ZeroCopySink) grow(n int) int {
	if i, ok := self.tryGrowByReslice(n); ok {
		return i
	}

	l := len(self.buf)
	c := cap(self.buf)
	if c > maxInt-c-n {
		panic(ErrTooLarge)
	}
	buf := make([]byte, 2*c+n)
	copy(buf, self.buf)
	self.buf = buf[:l+n]
	return l
}

func (self *ZeroCopySink) NextBytes(n uint64) (data []byte) {
	m, ok := self.tryGrowByReslice(int(n))
	if !ok {
		m = self.grow(int(n))
	}
	data = self.buf[m:]
	return
}

// BackUp backs up a number of bytes, so that the next call to NextBytes
// returns data again that was already returned by the last call.
func (self *ZeroCopySink) BackUp(n uint64) {
	l := len(self.buf) - int(n)
	self.buf = self.buf[:l]
}

func (self *ZeroCopySink) WriteBytes(p []byte) {
	data := self.NextBytes(uint64(len(p)))
	copy(data, p)
}

func (self *ZeroCopySink) WriteByte(c byte) {
	buf := self.NextBytes(1)
	buf[0] = c
}

func (self *ZeroCopySink) WriteVarUint(data uint64) (size uint64) {
	buf := self.NextBytes(9)
	if data < 0xFD {
		buf[0] = uint8(data)
		size = 1
	} else if data <= 0xFFFF {
		buf[0] = 0xFD
		binary.LittleEndian.PutUint16(buf[1:], uint16(data))
		size = 3
	} else if data <= 0xFFFFFFFF {
		buf[0] = 0xFE
		binary.LittleEndian.PutUint32(buf[1:], uint32(data))
		size = 5
	} else {
		buf[0] = 0xFF
		binary.LittleEndian.PutUint64(buf[1:], data)
		size = 9
	}

	self.BackUp(9 - size)
	return
}

func (self *ZeroCopySink) WriteVarBytes(data []byte) (size uint64) {
	l := uint64(len(data))
	size = self.WriteVarUint(l) + l

	self.WriteBytes(data)
	return
}

// WriteBigInt writes a sign byte followed by the var-length big-endian
// magnitude. Polynomial coefficients can be negative, so the sign must be
// carried explicitly.
func (self *ZeroCopySink) WriteBigInt(i *big.Int) {
	if i.Sign() < 0 {
		self.WriteByte(1)
	} else {
		self.WriteByte(0)
	}
	self.WriteVarBytes(i.Bytes())
}

func (self *ZeroCopySink) Bytes() []byte { return self.buf }

func (self *ZeroCopySink) Reset() { self.buf = self.buf[:0] }

// ZeroCopySource reads back what a ZeroCopySink produced, returning slices of
// the underlying buffer instead of copies.
type ZeroCopySource struct {
	s   []byte
	off uint64
}

func NewZeroCopySource(b []byte) *ZeroCopySource { return &ZeroCopySource{b, 0} }

func (self *ZeroCopySource) Size() uint64 { return uint64(len(self.s)) }

func (self *ZeroCopySource) NextBytes(n uint64) (data []byte, eof bool) {
	m := self.off + n
	end, overflow := SafeAdd(self.off, n)
	if overflow || end > uint64(len(self.s)) {
		eof = true
		return
	}
	data = self.s[self.off:m]
	self.off = m
	return
}

func (self *ZeroCopySource) NextByte() (data byte, eof bool) {
	if self.off >= uint64(len(self.s)) {
		eof = true
		return
	}
	data = self.s[self.off]
	self.off++
	return
}

func (self *ZeroCopySource) NextVarUint() (data uint64, size uint64, irregular bool, eof bool) {
	var fb byte
	fb, eof = self.NextByte()
	if eof {
		return
	}

	switch fb {
	case 0xFD:
		var b []byte
		b, eof = self.NextBytes(2)
		if eof {
			return
		}
		data = uint64(binary.LittleEndian.Uint16(b))
		size = 3
		irregular = data < 0xFD
	case 0xFE:
		var b []byte
		b, eof = self.NextBytes(4)
		if eof {
			return
		}
		data = uint64(binary.LittleEndian.Uint32(b))
		size = 5
		irregular = data <= 0xFFFF
	case 0xFF:
		var b []byte
		b, eof = self.NextBytes(8)
		if eof {
			return
		}
		data = binary.LittleEndian.Uint64(b)
		size = 9
		irregular = data <= 0xFFFFFFFF
	default:
		data = uint64(fb)
		size = 1
	}
	return
}

func (self *ZeroCopySource) NextVarBytes() (data []byte, size uint64, irregular bool, eof bool) {
	var count uint64
	count, size, irregular, eof = self.NextVarUint()
	if irregular || eof {
		return
	}
	data, eof = self.NextBytes(count)
	size += count
	return
}

// NextBigInt reads back what WriteBigInt produced.
func (self *ZeroCopySource) NextBigInt() (*big.Int, error) {
	sign, eof := self.NextByte()
	if eof {
		return nil, ErrUnexpectedEOF
	}
	if sign > 1 {
		return nil, ErrIrregularData
	}
	mag, _, irregular, eof := self.NextVarBytes()
	if eof {
		return nil, ErrUnexpectedEOF
	}
	if irregular {
		return nil, ErrIrregularData
	}
	i := new(big.Int).SetBytes(mag)
	if sign == 1 {
		i.Neg(i)
	}
	return i, nil
}

var (
	ErrUnexpectedEOF = errors.New("unexpected eof")
	ErrIrregularData = errors.New("irregular data")
)

func SafeAdd(x, y uint64) (uint64, bool) {
	z := x + y
	return z, z < x
}
