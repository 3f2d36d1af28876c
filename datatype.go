package faker

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"
)

const hexDigits = "0123456789abcdef"

// Datatype generates primitive values.
type Datatype struct {
	f *Faker
}

// Number returns an integer in [min, max].
func (d *Datatype) Number(min, max int) (int, error) {
	return d.f.rand.Integer(min, max)
}

// Float returns a float in [min, max] with precision decimal digits.
func (d *Datatype) Float(min, max float64, precision int) (float64, error) {
	return d.f.rand.Float(min, max, precision)
}

// Boolean returns true or false with equal probability.
func (d *Datatype) Boolean() bool {
	return d.f.rand.Boolean()
}

// UUID returns a version 4 UUID built from four draws.
func (d *Datatype) UUID() uuid.UUID {
	// The reader never fails, so neither does NewRandomFromReader.
	id, _ := uuid.NewRandomFromReader(drawReader{d.f})
	return id
}

// Hexadecimal returns "0x" followed by n lowercase hex digits.
func (d *Datatype) Hexadecimal(n int) string {
	var b strings.Builder
	b.Grow(2 + max(n, 0))
	b.WriteString("0x")
	for range n {
		b.WriteByte(hexDigits[d.f.rand.IntN(len(hexDigits))])
	}
	return b.String()
}

// String returns n characters from the printable ASCII range '!' to '}'.
func (d *Datatype) String(n int) string {
	var b strings.Builder
	b.Grow(max(n, 0))
	for range n {
		b.WriteByte(byte(d.f.between('!', '}')))
	}
	return b.String()
}

// drawReader fills buffers from the engine, four bytes per draw.
type drawReader struct {
	f *Faker
}

func (r drawReader) Read(p []byte) (int, error) {
	var word [4]byte
	for i := 0; i < len(p); i += len(word) {
		binary.BigEndian.PutUint32(word[:], r.f.rand.Uint32())
		copy(p[i:], word[:])
	}
	return len(p), nil
}
