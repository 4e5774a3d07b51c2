package mtp

import (
	"io"
	"testing"
	"time"
)

// fakeTransport is an in-memory Transport double: WriteBulk records
// each call's bytes as one "USB packet", ReadBulk replays a queue of
// packets pushed via fakeTransport.reads.
type fakeTransport struct {
	mps     uint32
	writes  [][]byte
	reads   [][]byte
	readIdx int
}

func (f *fakeTransport) WriteBulk(buf []byte, timeout time.Duration) (int, error) {
	cp := append([]byte(nil), buf...)
	f.writes = append(f.writes, cp)
	return len(buf), nil
}

func (f *fakeTransport) ReadBulk(buf []byte, timeout time.Duration) (int, error) {
	if f.readIdx >= len(f.reads) {
		return 0, &TransportError{Kind: ErrIO, Err: io.EOF}
	}
	pkt := f.reads[f.readIdx]
	f.readIdx++
	n := copy(buf, pkt)
	return n, nil
}

func (f *fakeTransport) ReadInterrupt(buf []byte, timeout time.Duration) (int, error) {
	return 0, &TransportError{Kind: ErrIO, Err: io.EOF}
}

func (f *fakeTransport) MaxPacketSize(ep Endpoint) uint32 { return f.mps }
func (f *fakeTransport) Reset() error                     { return nil }
func (f *fakeTransport) Close() error                     { return nil }

// §8 scenario 2: a 5-byte known-length payload with mps=64 merges
// header+payload into one packet and needs no ZLP (12+5=17, not a
// multiple of 64).
func TestWriteDataPhaseSmallPayloadNoZLP(t *testing.T) {
	ft := &fakeTransport{mps: 64}
	f := NewFramer(ft, time.Second, nil)

	src := NewByteArrayInputStream([]byte("abcde"))
	if err := f.WriteDataPhase(OC_GetObject, 7, src, false, false); err != nil {
		t.Fatalf("WriteDataPhase: %v", err)
	}

	if len(ft.writes) != 1 {
		t.Fatalf("got %d writes, want 1: %v", len(ft.writes), ft.writes)
	}
	if len(ft.writes[0]) != containerHeaderLen+5 {
		t.Fatalf("packet len = %d, want %d", len(ft.writes[0]), containerHeaderLen+5)
	}
}

// §8 scenario 3: a 52-byte known-length payload with mps=64 makes
// 12+52=64, an exact multiple, so an explicit ZLP must follow.
func TestWriteDataPhaseExactMultipleEmitsZLP(t *testing.T) {
	ft := &fakeTransport{mps: 64}
	f := NewFramer(ft, time.Second, nil)

	payload := make([]byte, 52)
	for i := range payload {
		payload[i] = byte(i)
	}
	src := NewByteArrayInputStream(payload)
	if err := f.WriteDataPhase(OC_SendObject, 9, src, false, false); err != nil {
		t.Fatalf("WriteDataPhase: %v", err)
	}

	if len(ft.writes) != 2 {
		t.Fatalf("got %d writes, want 2 (payload + ZLP): %v", len(ft.writes), ft.writes)
	}
	if len(ft.writes[0]) != 64 {
		t.Fatalf("first packet len = %d, want 64", len(ft.writes[0]))
	}
	if len(ft.writes[1]) != 0 {
		t.Fatalf("second packet len = %d, want 0 (ZLP)", len(ft.writes[1]))
	}
}

func TestWriteDataPhaseSeparateHeader(t *testing.T) {
	ft := &fakeTransport{mps: 64}
	f := NewFramer(ft, time.Second, nil)

	src := NewByteArrayInputStream([]byte("xyz"))
	if err := f.WriteDataPhase(OC_ANDROID_SEND_PARTIAL_OBJECT, 3, src, false, true); err != nil {
		t.Fatalf("WriteDataPhase: %v", err)
	}

	if len(ft.writes) != 2 {
		t.Fatalf("got %d writes, want 2 (header, payload): %v", len(ft.writes), ft.writes)
	}
	if len(ft.writes[0]) != containerHeaderLen {
		t.Fatalf("header packet len = %d, want %d", len(ft.writes[0]), containerHeaderLen)
	}
	if string(ft.writes[1]) != "xyz" {
		t.Fatalf("payload packet = %q, want %q", ft.writes[1], "xyz")
	}
}

func TestReadDataPayloadKnownLength(t *testing.T) {
	ft := &fakeTransport{mps: 64}
	f := NewFramer(ft, time.Second, nil)

	payload := []byte("hello, device")
	header := encodeDataHeader(OC_GetObject, 11, uint32(containerHeaderLen+len(payload)))
	ft.reads = [][]byte{append(header, payload...)}

	hdr, err := f.ReadNext()
	if err != nil {
		t.Fatalf("ReadNext: %v", err)
	}
	if hdr.Type != ContainerData {
		t.Fatalf("Type = %v, want Data", hdr.Type)
	}

	out := NewByteArrayOutputStream()
	if err := f.ReadDataPayload(hdr, out); err != nil {
		t.Fatalf("ReadDataPayload: %v", err)
	}
	if string(out.Bytes()) != string(payload) {
		t.Fatalf("got %q, want %q", out.Bytes(), payload)
	}
}

// cancelingInputStream fires its own cancellation after the first chunk
// has been read, simulating a caller calling Cancel() mid-transfer; used
// to verify WriteDataPhase surfaces *CancelledError rather than treating
// the cut-off stream as a normal end or a transport I/O failure.
type cancelingInputStream struct {
	data      []byte
	off       int
	cancelled bool
}

func (s *cancelingInputStream) Size() uint64 { return uint64(len(s.data)) }

func (s *cancelingInputStream) Read(buf []byte) (int, error) {
	if s.cancelled {
		return 0, &CancelledError{}
	}
	if s.off >= len(s.data) {
		s.cancelled = true
		return 0, &CancelledError{}
	}
	n := copy(buf, s.data[s.off:])
	s.off += n
	s.cancelled = true
	return n, nil
}

// Covers the packet.go fix: a cancellation that fires after the first
// chunk has already gone out must surface as *CancelledError through
// IsCancelled, not get silently dropped (steady-state loop checking
// rerr only when m==0) or relabeled as a TransportError.
func TestWriteDataPhasePropagatesCancellation(t *testing.T) {
	ft := &fakeTransport{mps: 16}
	f := NewFramer(ft, time.Second, nil)

	src := &cancelingInputStream{data: []byte("abcdefghij")}
	err := f.WriteDataPhase(OC_SendObject, 4, src, false, false)
	if err == nil {
		t.Fatalf("WriteDataPhase: got nil error, want *CancelledError")
	}
	if !IsCancelled(err) {
		t.Fatalf("IsCancelled(%v) = false, want true (got %T)", err, err)
	}
	if len(ft.writes) != 1 {
		t.Fatalf("got %d writes, want 1 (header+first chunk, before cancellation hit)", len(ft.writes))
	}
}

// Covers the first-chunk read error path: a cancellation observed on the
// very first Read must also surface unwrapped.
func TestWriteDataPhasePropagatesCancellationOnFirstChunk(t *testing.T) {
	ft := &fakeTransport{mps: 8}
	f := NewFramer(ft, time.Second, nil)

	src := &cancelingInputStream{data: nil, cancelled: true}
	err := f.WriteDataPhase(OC_SendObject, 4, src, false, false)
	if err == nil {
		t.Fatalf("WriteDataPhase: got nil error, want *CancelledError")
	}
	if !IsCancelled(err) {
		t.Fatalf("IsCancelled(%v) = false, want true (got %T)", err, err)
	}
}

func TestReadDataPayloadConsumesTrailingZLP(t *testing.T) {
	ft := &fakeTransport{mps: 16}
	f := NewFramer(ft, time.Second, nil)

	// 4 bytes of payload, mps=16: header(12)+payload(4)=16, an exact
	// multiple, so the device sends the 16-byte packet then a ZLP.
	payload := []byte("abcd")
	header := encodeDataHeader(OC_GetObject, 5, uint32(containerHeaderLen+len(payload)))
	ft.reads = [][]byte{append(header, payload...), {}}

	hdr, err := f.ReadNext()
	if err != nil {
		t.Fatalf("ReadNext: %v", err)
	}

	out := NewByteArrayOutputStream()
	if err := f.ReadDataPayload(hdr, out); err != nil {
		t.Fatalf("ReadDataPayload: %v", err)
	}
	if string(out.Bytes()) != "abcd" {
		t.Fatalf("got %q, want %q", out.Bytes(), "abcd")
	}
	if ft.readIdx != 2 {
		t.Fatalf("readIdx = %d, want 2 (payload packet + ZLP consumed)", ft.readIdx)
	}
}
