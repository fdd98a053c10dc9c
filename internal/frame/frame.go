// Package frame implements the Meshtastic stream framing used on serial and
// TCP links: a two-byte magic preamble, a big-endian 16-bit payload length and
// the payload itself.
//
//	| 0x94 | 0xc3 | len_hi | len_lo | payload (len bytes) |
//
// The Decoder is a pure buffering state machine. It performs no I/O and keeps
// no transport or session state.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	Magic0     byte = 0x94
	Magic1     byte = 0xc3
	HeaderLen       = 4
	MaxPayload      = 512
)

var (
	// ErrEncoding is returned by Encode when a payload cannot be framed.
	ErrEncoding = errors.New("frame: encoding error")
	// ErrPayloadTooLarge is wrapped by ErrEncoding when the payload exceeds the limit.
	ErrPayloadTooLarge = errors.New("frame: payload too large")
	// ErrBadHeader is returned by StripHeader for a malformed frame.
	ErrBadHeader = errors.New("frame: bad header")
)

// ResyncPolicy selects how the Decoder recovers from malformed input.
type ResyncPolicy int

const (
	// ResyncSkipByte discards exactly one byte at a bad preamble or an
	// out-of-range length and rescans.
	ResyncSkipByte ResyncPolicy = iota
	// ResyncStrict behaves like ResyncSkipByte and additionally rejects a
	// complete candidate frame whose payload contains a full preamble; the
	// buffer is resynchronized at the embedded preamble. This recovers from a
	// truncated frame followed by a valid one, at the cost of dropping valid
	// payloads that happen to contain 0x94 0xc3.
	ResyncStrict
)

func (p ResyncPolicy) String() string {
	switch p {
	case ResyncStrict:
		return "strict"
	default:
		return "byte"
	}
}

// ParseResyncPolicy maps a config string to a policy.
func ParseResyncPolicy(s string) (ResyncPolicy, error) {
	switch s {
	case "", "byte", "skip-byte":
		return ResyncSkipByte, nil
	case "strict":
		return ResyncStrict, nil
	default:
		return ResyncSkipByte, fmt.Errorf("frame: unknown resync policy %q", s)
	}
}

// Options tunes a Decoder.
type Options struct {
	MaxPayload int
	Resync     ResyncPolicy
}

// DefaultOptions returns the protocol limits.
func DefaultOptions() Options {
	return Options{MaxPayload: MaxPayload, Resync: ResyncSkipByte}
}

// Frame is one complete wire unit with its header removed.
type Frame struct {
	Payload []byte
}

// ── Encode ────────────────────────────────────────────────────────────────

// Encode prepends the preamble and length to payload. max <= 0 selects
// MaxPayload.
func Encode(payload []byte, max int) ([]byte, error) {
	if max <= 0 {
		max = MaxPayload
	}
	if len(payload) > max {
		return nil, fmt.Errorf("%w: %w (%d > %d bytes)", ErrEncoding, ErrPayloadTooLarge, len(payload), max)
	}
	out := make([]byte, HeaderLen+len(payload))
	out[0] = Magic0
	out[1] = Magic1
	binary.BigEndian.PutUint16(out[2:4], uint16(len(payload)))
	copy(out[HeaderLen:], payload)
	return out, nil
}

// StripHeader validates a single complete frame and returns its payload.
func StripHeader(b []byte) ([]byte, error) {
	if len(b) < HeaderLen || b[0] != Magic0 || b[1] != Magic1 {
		return nil, ErrBadHeader
	}
	n := int(binary.BigEndian.Uint16(b[2:4]))
	if len(b) != HeaderLen+n {
		return nil, fmt.Errorf("%w: length %d, have %d payload bytes", ErrBadHeader, n, len(b)-HeaderLen)
	}
	return b[HeaderLen:], nil
}

// ── Decode ────────────────────────────────────────────────────────────────

// Decoder reassembles frames from arbitrarily chunked input.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	opts      Options
	buf       []byte
	discarded uint64
}

// NewDecoder returns a Decoder using opts. A zero MaxPayload selects MaxPayload.
func NewDecoder(opts Options) *Decoder {
	if opts.MaxPayload <= 0 || opts.MaxPayload > 0xffff {
		opts.MaxPayload = MaxPayload
	}
	return &Decoder{opts: opts}
}

// Feed appends chunk to the internal buffer and returns every complete frame
// now available, in arrival order. Incomplete trailing data is retained.
func (d *Decoder) Feed(chunk []byte) []Frame {
	d.buf = append(d.buf, chunk...)

	var out []Frame
	for len(d.buf) > 0 {
		if d.buf[0] != Magic0 {
			// Dropping one byte at a time until the next candidate is the
			// same as jumping straight to it.
			i := bytes.IndexByte(d.buf, Magic0)
			if i < 0 {
				i = len(d.buf)
			}
			d.discard(i)
			continue
		}
		if len(d.buf) < 2 {
			break
		}
		if d.buf[1] != Magic1 {
			d.discard(1)
			continue
		}
		if len(d.buf) < HeaderLen {
			break
		}
		n := int(binary.BigEndian.Uint16(d.buf[2:4]))
		if n > d.opts.MaxPayload {
			d.discard(1)
			continue
		}
		if len(d.buf) < HeaderLen+n {
			if d.opts.Resync == ResyncStrict {
				if i := embeddedPreamble(d.buf[HeaderLen:]); i >= 0 {
					d.discard(HeaderLen + i)
					continue
				}
			}
			break
		}
		payload := d.buf[HeaderLen : HeaderLen+n]
		if d.opts.Resync == ResyncStrict {
			if i := embeddedPreamble(payload); i >= 0 {
				d.discard(HeaderLen + i)
				continue
			}
		}
		out = append(out, Frame{Payload: append([]byte(nil), payload...)})
		d.buf = d.buf[HeaderLen+n:]
	}
	d.compact()
	return out
}

// Buffered reports how many bytes are held awaiting more input.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Discarded reports the total bytes dropped while resynchronizing.
func (d *Decoder) Discarded() uint64 { return d.discarded }

// Reset drops all buffered input.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
}

func (d *Decoder) discard(n int) {
	d.buf = d.buf[n:]
	d.discarded += uint64(n)
}

// compact releases the consumed prefix once the buffer drains so a long
// session does not pin its largest burst.
func (d *Decoder) compact() {
	if len(d.buf) == 0 {
		d.buf = nil
		return
	}
	if cap(d.buf) > 4*(HeaderLen+d.opts.MaxPayload) {
		d.buf = append([]byte(nil), d.buf...)
	}
}

func embeddedPreamble(b []byte) int {
	return bytes.Index(b, []byte{Magic0, Magic1})
}
