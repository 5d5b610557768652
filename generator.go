// ABOUTME: Monotonic payload generation: fresh entropy per millisecond, plus-one within one.
// ABOUTME: A single mutex guards the last-issued timestamp and payload as one unit.
package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"
)

// Payload is the 80-bit random component of a ULID, big-endian.
type Payload [PayloadSize]byte

// PayloadSource produces the payload for a ULID minted at the given
// millisecond timestamp. *Generator is the monotonic implementation; swap
// in another to change how payloads relate across calls.
type PayloadSource interface {
	Next(ms uint64) (Payload, error)
}

// Generator mints ULIDs whose payloads strictly increase within a single
// millisecond. The first call for a timestamp draws fresh entropy; repeat
// calls for the same timestamp reuse the previous payload incremented by
// one as an unsigned 80-bit integer. A timestamp that differs from the
// previous call's, in either direction, draws fresh entropy again.
//
// Incrementing past the all-ones payload wraps to zero, losing sort order
// within that millisecond. The wrap needs 2^80 same-millisecond calls, so
// it is unreachable in practice and not surfaced as an error.
//
// The zero value is not usable; construct with NewGenerator. Methods are
// safe for concurrent use. Fresh entropy is read while the lock is held;
// the default source, crypto/rand.Reader, does not block once the process
// has started.
type Generator struct {
	entropy io.Reader
	now     func() uint64

	mu          sync.Mutex
	seeded      bool
	lastMillis  uint64
	lastPayload Payload
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy sets the source of fresh payload draws. The default is
// crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithClock sets the function New uses to read the current time, in
// milliseconds since the Unix epoch. The default reads the wall clock.
func WithClock(now func() uint64) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator returns a Generator backed by crypto/rand and the wall
// clock, with opts applied on top.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		now:     func() uint64 { return uint64(time.Now().UnixMilli()) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New returns a ULID stamped with the generator's current clock reading.
func (g *Generator) New() (ULID, error) {
	return g.NewAt(g.now())
}

// NewAt returns a ULID carrying the given millisecond timestamp. Values
// above MaxTimestamp are truncated to their low 48 bits.
func (g *Generator) NewAt(ms uint64) (ULID, error) {
	p, err := g.Next(ms)
	if err != nil {
		return ULID{}, err
	}
	return FromParts(ms, p), nil
}

// Next returns the payload for a ULID minted at ms. The comparison against
// the previous timestamp and the state update happen under one lock, so
// concurrent callers sharing a millisecond receive strictly increasing
// payloads in lock-acquisition order, with none skipped or repeated.
func (g *Generator) Next(ms uint64) (Payload, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seeded && ms == g.lastMillis {
		g.lastPayload = g.lastPayload.inc()
		return g.lastPayload, nil
	}

	var p Payload
	if _, err := io.ReadFull(g.entropy, p[:]); err != nil {
		return Payload{}, fmt.Errorf("read entropy: %w", err)
	}
	g.seeded = true
	g.lastMillis = ms
	g.lastPayload = p
	return p, nil
}

// inc adds one to the payload as a big-endian unsigned integer, wrapping
// to zero past all ones.
func (p Payload) inc() Payload {
	for i := PayloadSize - 1; i >= 0; i-- {
		p[i]++
		if p[i] != 0 {
			break
		}
	}
	return p
}
