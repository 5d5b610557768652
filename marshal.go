// ABOUTME: Encoding adapters: text, binary, JSON via text, and database/sql round-trips.
// ABOUTME: Every form converts through the canonical 16-byte value, so none can drift.
package ulid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler, returning the canonical
// uppercase text form. encoding/json uses it for string values and map keys.
func (id ULID) MarshalText() ([]byte, error) {
	enc := encode(id)
	return enc[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts whatever
// Parse accepts and rejects the rest with ErrInvalidFormat.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := decode(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the 16-byte
// binary form.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, requiring exactly
// 16 bytes.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, storing the text form.
func (id ULID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts the text form as a string or
// []byte, the 16-byte binary form, and NULL, which scans to the zero ULID.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ULID{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == BinarySize {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into ULID", src)
	}
}
