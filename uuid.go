// ABOUTME: UUID interop: ULIDs and UUIDs are both 128 bits, so they convert losslessly.
// ABOUTME: Lets ULID-keyed data flow through systems that expect UUID columns or fields.
package ulid

import "github.com/google/uuid"

// UUID returns the identifier's 128 bits as a UUID, for storage or display
// in systems that expect UUID form. The result is not an RFC 4122 UUID;
// its version and variant bits carry timestamp and payload data.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID reinterprets a UUID's 128 bits as a ULID. The conversion is the
// inverse of UUID; applied to arbitrary UUIDs it yields a ULID whose
// timestamp is whatever the first 48 bits happen to hold.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}
