package frame

import (
	"bytes"
	"errors"
	"testing"
)

func mustEncode(t *testing.T, payload []byte) []byte {
	t.Helper()
	b, err := Encode(payload, 0)
	if err != nil {
		t.Fatalf("encode %q: %v", payload, err)
	}
	return b
}

func payloads(frames []Frame) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		out = append(out, string(f.Payload))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEncodeHeader(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{"empty", nil, []byte{0x94, 0xc3, 0x00, 0x00}},
		{"short", []byte{0x00, 0xff, 0x88}, []byte{0x94, 0xc3, 0x00, 0x03, 0x00, 0xff, 0x88}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustEncode(t, tc.payload)
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got % x want % x", got, tc.want)
			}
		})
	}

	large := mustEncode(t, make([]byte, 0x100))
	if !bytes.Equal(large[:4], []byte{0x94, 0xc3, 0x01, 0x00}) {
		t.Fatalf("large header: % x", large[:4])
	}
}

func TestEncodeRejectsOversizePayload(t *testing.T) {
	_, err := Encode(make([]byte, MaxPayload+1), 0)
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrEncoding/ErrPayloadTooLarge, got %v", err)
	}
	if _, err := Encode(make([]byte, MaxPayload), 0); err != nil {
		t.Fatalf("max-size payload rejected: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 17, 240, MaxPayload} {
		payload := bytes.Repeat([]byte{0x5a}, size)
		wire := mustEncode(t, payload)

		got, err := StripHeader(wire)
		if err != nil {
			t.Fatalf("strip size=%d: %v", size, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("strip size=%d mismatch", size)
		}

		frames := NewDecoder(DefaultOptions()).Feed(wire)
		if len(frames) != 1 || !bytes.Equal(frames[0].Payload, payload) {
			t.Fatalf("decode size=%d: %d frames", size, len(frames))
		}
	}
}

func TestStripHeaderRejectsMalformed(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{0x94},
		{0x93, 0xc3, 0x00, 0x00},
		{0x94, 0xc3, 0x00, 0x02, 0x01},
	} {
		if _, err := StripHeader(b); !errors.Is(err, ErrBadHeader) {
			t.Fatalf("strip % x: expected ErrBadHeader, got %v", b, err)
		}
	}
}

func TestChunkBoundaryInvariance(t *testing.T) {
	var stream []byte
	want := []string{"alpha", "", "bravo-charlie", "delta"}
	for _, p := range want {
		stream = append(stream, mustEncode(t, []byte(p))...)
	}

	whole := payloads(NewDecoder(DefaultOptions()).Feed(stream))
	if !equalStrings(whole, want) {
		t.Fatalf("single feed: got %q want %q", whole, want)
	}

	d := NewDecoder(DefaultOptions())
	var bytewise []Frame
	for i := range stream {
		bytewise = append(bytewise, d.Feed(stream[i:i+1])...)
	}
	if got := payloads(bytewise); !equalStrings(got, want) {
		t.Fatalf("byte feed: got %q want %q", got, want)
	}
	if d.Buffered() != 0 {
		t.Fatalf("expected empty buffer, have %d bytes", d.Buffered())
	}

	// Every two-way split.
	for cut := 0; cut <= len(stream); cut++ {
		d := NewDecoder(DefaultOptions())
		got := payloads(append(d.Feed(stream[:cut]), d.Feed(stream[cut:])...))
		if !equalStrings(got, want) {
			t.Fatalf("split at %d: got %q", cut, got)
		}
	}
}

func TestThreeFramesAcrossFiveFeeds(t *testing.T) {
	var stream []byte
	for _, p := range []string{"one", "two", "three"} {
		stream = append(stream, mustEncode(t, []byte(p))...)
	}
	cuts := []int{1, 6, 9, 15, len(stream)}

	d := NewDecoder(DefaultOptions())
	var got []Frame
	prev := 0
	for _, c := range cuts {
		got = append(got, d.Feed(stream[prev:c])...)
		prev = c
	}
	if p := payloads(got); !equalStrings(p, []string{"one", "two", "three"}) {
		t.Fatalf("got %q", p)
	}
}

func TestResyncAfterCorruptedLength(t *testing.T) {
	corrupt := []byte{0x94, 0xc3, 0xff, 0xff}
	corrupt = append(corrupt, []byte("junk-prefix")...)

	want := []string{"n1", "n2", "n3"}
	stream := append([]byte(nil), corrupt...)
	for _, p := range want {
		stream = append(stream, mustEncode(t, []byte(p))...)
	}

	d := NewDecoder(DefaultOptions())
	got := payloads(d.Feed(stream))
	if !equalStrings(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
	if d.Discarded() != uint64(len(corrupt)) {
		t.Fatalf("discarded %d bytes, want %d", d.Discarded(), len(corrupt))
	}
}

func TestResyncSkipsGarbageAndBadMagic(t *testing.T) {
	stream := []byte{0x00, 0x11, 0x94, 0x00, 0x94}
	stream = append(stream, mustEncode(t, []byte("ok"))...)

	d := NewDecoder(DefaultOptions())
	got := payloads(d.Feed(stream))
	if !equalStrings(got, []string{"ok"}) {
		t.Fatalf("got %q", got)
	}
	if d.Discarded() != 5 {
		t.Fatalf("discarded %d, want 5", d.Discarded())
	}
}

func TestPartialPreambleRetained(t *testing.T) {
	d := NewDecoder(DefaultOptions())
	if got := d.Feed([]byte{0x01, 0x94}); len(got) != 0 {
		t.Fatalf("unexpected frames: %v", got)
	}
	if d.Buffered() != 1 {
		t.Fatalf("expected lone magic byte retained, have %d", d.Buffered())
	}
	wire := mustEncode(t, []byte("x"))
	got := payloads(d.Feed(wire[1:]))
	if !equalStrings(got, []string{"x"}) {
		t.Fatalf("got %q", got)
	}
}

func TestStrictResyncRecoversTruncatedFrame(t *testing.T) {
	// A header announcing 40 bytes, cut short by the next frame.
	truncated := []byte{0x94, 0xc3, 0x00, 0x28, 'a', 'b', 'c'}
	next := mustEncode(t, []byte("survivor"))
	tail := mustEncode(t, bytes.Repeat([]byte{'z'}, 40))
	stream := append(append(append([]byte(nil), truncated...), next...), tail...)

	strict := NewDecoder(Options{Resync: ResyncStrict})
	got := payloads(strict.Feed(stream))
	if len(got) != 2 || got[0] != "survivor" {
		t.Fatalf("strict: got %q", got)
	}

	lenient := NewDecoder(DefaultOptions())
	got = payloads(lenient.Feed(stream))
	if len(got) > 0 && got[0] == "survivor" {
		t.Fatalf("byte policy should not split a well-formed length: %q", got)
	}
}

func TestParseResyncPolicy(t *testing.T) {
	for in, want := range map[string]ResyncPolicy{"": ResyncSkipByte, "byte": ResyncSkipByte, "strict": ResyncStrict} {
		got, err := ParseResyncPolicy(in)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseResyncPolicy("bogus"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
