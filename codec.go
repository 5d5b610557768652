// ABOUTME: Base-32 codec between the 16-byte binary form and the 26-character text form.
// ABOUTME: Pure bit regrouping with no state; generation state lives in generator.go.
package ulid

import "fmt"

// Alphabet is the 32-character set used by the text form, in ascending ASCII
// order. It excludes I, L, O, and U so encoded values stay unambiguous when
// read aloud or retyped. Ascending order is what makes the lexicographic
// order of encoded strings match the numeric order of the underlying bits.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	// EncodedSize is the length of the text form: 10 timestamp characters
	// followed by 16 payload characters.
	EncodedSize = 26

	// BinarySize is the length of the binary form in bytes.
	BinarySize = 16

	// PayloadSize is the length of the random payload in bytes.
	PayloadSize = 10

	// MaxTimestamp is the largest millisecond timestamp a ULID can carry,
	// 2^48 - 1 (around the year 10889).
	MaxTimestamp uint64 = 1<<48 - 1
)

const (
	timeBytes = BinarySize - PayloadSize // leading bytes holding the timestamp
	timeChars = 10                       // characters encoding the 48-bit timestamp
	charBits  = 5                        // bits carried by one character
	charMask  = 1<<charBits - 1
)

// invalidChar marks bytes outside the alphabet in the reverse table.
const invalidChar = 0xFF

// reverse maps an ASCII byte to its 5-bit value, or invalidChar. Lowercase
// letters map to the same values as their uppercase forms; the excluded
// letters I, L, O, and U stay invalid in both cases.
var reverse [256]byte

func init() {
	for i := range reverse {
		reverse[i] = invalidChar
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		reverse[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			reverse[c+'a'-'A'] = byte(i)
		}
	}
}

// encode renders the binary form as 26 uppercase characters: the timestamp
// as 10 five-bit groups, then the payload as 16, most significant first.
func encode(id ULID) [EncodedSize]byte {
	var dst [EncodedSize]byte

	ts := id.Timestamp()
	for i := timeChars - 1; i >= 0; i-- {
		dst[i] = Alphabet[ts&charMask]
		ts >>= charBits
	}

	// Regroup the payload's 8-bit bytes into 5-bit characters. 80 bits
	// divide evenly by 5, so the accumulator drains exactly at the end.
	acc, bits, pos := uint32(0), 0, timeChars
	for _, b := range id[timeBytes:] {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= charBits {
			bits -= charBits
			dst[pos] = Alphabet[(acc>>bits)&charMask]
			pos++
		}
	}
	return dst
}

// decode parses a 26-character text form into the binary form. Either case
// is accepted. Errors wrap ErrInvalidFormat.
func decode(s string) (ULID, error) {
	var id ULID
	if len(s) != EncodedSize {
		return ULID{}, fmt.Errorf("%w: %d characters, want %d", ErrInvalidFormat, len(s), EncodedSize)
	}

	var ts uint64
	for i := 0; i < timeChars; i++ {
		v := reverse[s[i]]
		if v == invalidChar {
			return ULID{}, fmt.Errorf("%w: character %q at position %d", ErrInvalidFormat, s[i], i)
		}
		ts = ts<<charBits | uint64(v)
	}
	// Ten characters carry 50 bits; the top two of the first character
	// must be zero or the timestamp exceeds the 48-bit field.
	if ts > MaxTimestamp {
		return ULID{}, fmt.Errorf("%w: timestamp exceeds %d bits", ErrInvalidFormat, timeBytes*8)
	}
	id[0] = byte(ts >> 40)
	id[1] = byte(ts >> 32)
	id[2] = byte(ts >> 24)
	id[3] = byte(ts >> 16)
	id[4] = byte(ts >> 8)
	id[5] = byte(ts)

	acc, bits, pos := uint32(0), 0, timeBytes
	for i := timeChars; i < EncodedSize; i++ {
		v := reverse[s[i]]
		if v == invalidChar {
			return ULID{}, fmt.Errorf("%w: character %q at position %d", ErrInvalidFormat, s[i], i)
		}
		acc = acc<<charBits | uint32(v)
		bits += charBits
		if bits >= 8 {
			bits -= 8
			id[pos] = byte(acc >> bits)
			pos++
		}
	}
	return id, nil
}
