// ABOUTME: UUID interop tests: bit-for-bit conversion in both directions.
// ABOUTME: The zero ULID must map to the nil UUID and back.
package ulid_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/2389-research/ulid"
)

func TestUUID_RoundTrip(t *testing.T) {
	id := ulid.MustParse("01BX5ZZKBKACTAV9WEVGEMMVRZ")

	u := id.UUID()
	if !bytes.Equal(u[:], id.Bytes()) {
		t.Errorf("uuid bytes differ: %v vs %v", u[:], id.Bytes())
	}
	if back := ulid.FromUUID(u); back != id {
		t.Errorf("round-trip: got %s, want %s", back, id)
	}
}

func TestUUID_ZeroMapsToNilUUID(t *testing.T) {
	var zero ulid.ULID
	if got := zero.UUID(); got != uuid.Nil {
		t.Errorf("got %s, want %s", got, uuid.Nil)
	}
	if got := ulid.FromUUID(uuid.Nil); !got.IsZero() {
		t.Errorf("nil uuid should map to the zero ULID, got %s", got)
	}
}

func TestUUID_TextFormDescribesSameBits(t *testing.T) {
	id := ulid.MustNew()

	parsed, err := uuid.Parse(id.UUID().String())
	if err != nil {
		t.Fatalf("parse uuid text: %v", err)
	}
	if ulid.FromUUID(parsed) != id {
		t.Error("uuid text round-trip lost bits")
	}
}
