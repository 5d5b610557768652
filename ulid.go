// ABOUTME: The ULID value type: constructors, parsing, accessors, and ordering.
// ABOUTME: Package-level constructors share one monotonic generator per process.
package ulid

import (
	"bytes"
	"fmt"
	"time"
)

// ULID is a Universally Unique Lexicographically Sortable Identifier: a
// 48-bit millisecond timestamp followed by an 80-bit random payload, held
// as its 16-byte binary form. The zero value is the zero ULID. ULIDs are
// comparable with == and usable as map keys; binary order, text order, and
// creation-time order all agree.
type ULID [BinarySize]byte

// defaultGenerator backs the package-level constructors so all callers in
// a process share one monotonic sequence.
var defaultGenerator = NewGenerator()

// New returns a ULID stamped with the current wall-clock time. IDs from
// repeated calls within one millisecond sort in call order.
func New() (ULID, error) {
	return defaultGenerator.New()
}

// NewAt returns a ULID carrying the given millisecond timestamp. Values
// above MaxTimestamp are truncated to their low 48 bits.
func NewAt(ms uint64) (ULID, error) {
	return defaultGenerator.NewAt(ms)
}

// MustNew is New, panicking if entropy cannot be read.
func MustNew() ULID {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}

// Parse converts the 26-character text form into a ULID. Either case is
// accepted; the result renders back as uppercase. The payload bits encoded
// in the text are preserved exactly, never re-derived. Errors wrap
// ErrInvalidFormat.
func Parse(s string) (ULID, error) {
	return decode(s)
}

// MustParse is Parse, panicking on invalid input. Use it for literals whose
// validity is known at compile time.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether s parses as a ULID: exactly 26 alphabet
// characters, either case, encoding a timestamp within 48 bits.
func IsValid(s string) bool {
	_, err := decode(s)
	return err == nil
}

// FromParts packs a millisecond timestamp and a payload into a ULID.
// Timestamps above MaxTimestamp are truncated to their low 48 bits.
func FromParts(ms uint64, p Payload) ULID {
	var id ULID
	ms &= MaxTimestamp
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	copy(id[timeBytes:], p[:])
	return id
}

// FromBytes builds a ULID from its 16-byte binary form.
func FromBytes(b []byte) (ULID, error) {
	var id ULID
	if len(b) != BinarySize {
		return id, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidFormat, len(b), BinarySize)
	}
	copy(id[:], b)
	return id, nil
}

// Timestamp converts t to the millisecond value a ULID minted at t carries.
// Times before the Unix epoch or after MaxTimestamp do not fit the 48-bit
// field and truncate to their low 48 bits when encoded.
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

// String returns the canonical 26-character text form, always uppercase.
func (id ULID) String() string {
	enc := encode(id)
	return string(enc[:])
}

// Bytes returns a copy of the 16-byte binary form.
func (id ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, id[:])
	return b
}

// Timestamp returns the identifier's creation time in milliseconds since
// the Unix epoch.
func (id ULID) Timestamp() uint64 {
	return uint64(id[0])<<40 | uint64(id[1])<<32 | uint64(id[2])<<24 |
		uint64(id[3])<<16 | uint64(id[4])<<8 | uint64(id[5])
}

// Time returns the identifier's creation time as a UTC time.Time with
// millisecond precision.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Payload returns the identifier's 80-bit random component.
func (id ULID) Payload() Payload {
	var p Payload
	copy(p[:], id[timeBytes:])
	return p
}

// Compare returns -1, 0, or +1 as id orders before, equal to, or after
// other. Order is creation time first, payload second.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id orders strictly before other.
func (id ULID) Less(other ULID) bool {
	return id.Compare(other) < 0
}

// IsZero reports whether id is the zero ULID.
func (id ULID) IsZero() bool {
	return id == ULID{}
}
