// Package wire provides the little-endian primitive readers shared by the
// V22 and V23 body decoders. It follows the same short, composable
// binary.Read-over-bytes.Reader discipline as
// accbroadcastingsdk/v3/network's readBuffer helper: every call advances
// the cursor and panics on short input, which the decoder's top-level
// recover converts into an InvalidPacketError rather than leaving the
// caller to check a bool after every field the way the v1 SDK does.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// ErrShortRead is the panic value raised when fewer bytes remain than a
// read requires. Decoders recover it at their entry point.
type ErrShortRead struct{ Wanted, Have int }

func (e ErrShortRead) Error() string { return "wire: short read" }

// Reader is a forward-only cursor over an immutable byte slice.
type Reader struct {
	r *bytes.Reader
}

func NewReader(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data)}
}

func (r *Reader) need(n int) {
	if r.r.Len() < n {
		panic(ErrShortRead{Wanted: n, Have: r.r.Len()})
	}
}

func (r *Reader) Remaining() int { return r.r.Len() }

func (r *Reader) Bytes(n int) []byte {
	r.need(n)
	buf := make([]byte, n)
	_, _ = r.r.Read(buf)
	return buf
}

func (r *Reader) U8() uint8 {
	r.need(1)
	b, _ := r.r.ReadByte()
	return b
}

func (r *Reader) I8() int8 { return int8(r.U8()) }

func (r *Reader) Bool8() bool { return r.U8() != 0 }

func (r *Reader) U16() uint16 {
	r.need(2)
	return binary.LittleEndian.Uint16(r.Bytes(2))
}

func (r *Reader) I16() int16 { return int16(r.U16()) }

func (r *Reader) U32() uint32 {
	r.need(4)
	return binary.LittleEndian.Uint32(r.Bytes(4))
}

func (r *Reader) I32() int32 { return int32(r.U32()) }

func (r *Reader) U64() uint64 {
	r.need(8)
	return binary.LittleEndian.Uint64(r.Bytes(8))
}

func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

func (r *Reader) F64() float64 {
	return math.Float64frombits(r.U64())
}

// Skip discards n bytes without interpreting them.
func (r *Reader) Skip(n int) { r.Bytes(n) }

// Guard recovers an ErrShortRead panic raised anywhere during a decode and
// turns it into a plain error assigned to *err, so body decoders can read
// fields without checking a bool after every call. Any other panic value
// propagates unchanged. Decoders defer wire.Guard(&err) as their first
// statement.
func Guard(err *error) {
	if r := recover(); r != nil {
		if sr, ok := r.(ErrShortRead); ok {
			*err = fmt.Errorf("packet too small: wanted %d more byte(s), have %d", sr.Wanted, sr.Have)
			return
		}
		panic(r)
	}
}
