package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

// Reading errors returned by Reader. Callers are expected to wrap them
// with the stream position and element context.
var (
	// ErrShortRead is returned when fewer bytes remain than a read requires.
	ErrShortRead = errors.New("binary: short read")

	// ErrNoTerminator is returned when a NUL-terminated field has no NUL.
	ErrNoTerminator = errors.New("binary: missing NUL terminator")
)

// Reader is a forward-only cursor over a byte region with position tracking.
// Multi-byte reads check the remaining length before consuming anything, so
// on failure Position still points at the start of the failed read.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the given byte region.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortRead
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrShortRead
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// Skip advances the position by n bytes without materializing them.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return ErrShortRead
	}
	r.pos += n
	return nil
}

// ReadU32 reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian int32 (fixed 4 bytes).
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadF64 reads a little-endian IEEE-754 float64 (fixed 8 bytes).
func (r *Reader) ReadF64() (float64, error) {
	if r.Remaining() < 8 {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

// ReadCString reads bytes up to an excluded 0x00 terminator and consumes
// the terminator. The returned slice is a copy.
func (r *Reader) ReadCString() ([]byte, error) {
	i := bytes.IndexByte(r.data[r.pos:], 0x00)
	if i < 0 {
		return nil, ErrNoTerminator
	}
	buf := make([]byte, i)
	copy(buf, r.data[r.pos:r.pos+i])
	r.pos += i + 1
	return buf, nil
}
