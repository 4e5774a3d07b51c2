package mtp

import (
	"bytes"
	"testing"
	"time"
)

// buildContainer renders a raw Command/Data/Response/Event header plus
// up to five u32 params, the same wire shape Container.encodeCommandHeader
// produces for a Command; used here to script fakeTransport.reads with
// Response containers a real device would send back.
func buildContainer(typ ContainerType, code uint16, tid uint32, params []uint32) []byte {
	out := make([]byte, containerHeaderLen+4*len(params))
	byteOrder.PutUint32(out[0:], uint32(len(out)))
	byteOrder.PutUint16(out[4:], uint16(typ))
	byteOrder.PutUint16(out[6:], code)
	byteOrder.PutUint32(out[8:], tid)
	for i, p := range params {
		byteOrder.PutUint32(out[containerHeaderLen+4*i:], p)
	}
	return out
}

// decodeWrittenCommand parses one of fakeTransport's recorded writes back
// into its header fields and params, for asserting on what Session put on
// the wire.
func decodeWrittenCommand(t *testing.T, raw []byte) (typ ContainerType, code uint16, tid uint32, params []uint32) {
	t.Helper()
	length, ty, c, id, err := decodeHeader(raw)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if int(length) != len(raw) {
		t.Fatalf("header length field = %d, want %d (total container bytes, §3)", length, len(raw))
	}
	p, err := decodeResponseParams(raw[containerHeaderLen:])
	if err != nil {
		t.Fatalf("decodeResponseParams: %v", err)
	}
	return ty, c, id, p
}

// §8 scenario 1: OpenSession round trip. Session.Open(1) must emit a
// Command container for OC_OpenSession carrying param1=1 (the requested
// session id), then cache DeviceInfo via an unconditional GetDeviceInfo
// (§5.3/§9 Open Question (a)). OpenSession's own transaction id is 0
// since it runs before the session (and its tid counter) exists,
// matching the teacher's sessionData{tid: 1} starting point for the
// transaction that immediately follows it.
func TestSessionOpenRoundTrip(t *testing.T) {
	info := &DeviceInfo{
		StandardVersion:      100,
		MTPVendorExtensionID: 6,
		MTPVersion:           100,
		MTPExtension:         "microsoft.com: 1.0",
		OperationsSupported:  []uint16{OC_GetDeviceInfo, OC_OpenSession},
		Manufacturer:         "Acme",
		Model:                "Widget",
		DeviceVersion:        "1.0",
		SerialNumber:         "ABC123",
	}
	var payload bytes.Buffer
	if err := Encode(&payload, info); err != nil {
		t.Fatalf("Encode(DeviceInfo): %v", err)
	}

	ft := &fakeTransport{
		mps: 4096,
		reads: [][]byte{
			buildContainer(ContainerResponse, RC_OK, 0, nil),
			append(encodeDataHeader(OC_GetDeviceInfo, 1, uint32(containerHeaderLen+payload.Len())), payload.Bytes()...),
			buildContainer(ContainerResponse, RC_OK, 1, nil),
		},
	}

	s := NewSession(ft, Config{Timeout: time.Second}, nil)
	if err := s.Open(1); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(ft.writes) != 2 {
		t.Fatalf("got %d command writes, want 2 (OpenSession, GetDeviceInfo): %v", len(ft.writes), ft.writes)
	}

	typ, code, tid, params := decodeWrittenCommand(t, ft.writes[0])
	if typ != ContainerCommand || code != OC_OpenSession || tid != 0 {
		t.Fatalf("OpenSession command = type=%v code=0x%x tid=%d, want Command/0x%x/0", typ, code, tid, uint16(OC_OpenSession))
	}
	if len(params) != 1 || params[0] != 1 {
		t.Fatalf("OpenSession params = %v, want [1]", params)
	}

	typ, code, tid, params = decodeWrittenCommand(t, ft.writes[1])
	if typ != ContainerCommand || code != OC_GetDeviceInfo || tid != 1 {
		t.Fatalf("GetDeviceInfo command = type=%v code=0x%x tid=%d, want Command/0x%x/1", typ, code, tid, uint16(OC_GetDeviceInfo))
	}
	if len(params) != 0 {
		t.Fatalf("GetDeviceInfo params = %v, want none", params)
	}

	if s.State() != StateOpen {
		t.Fatalf("State() = %v, want Open", s.State())
	}
	if s.sessionID != 1 {
		t.Fatalf("sessionID = %d, want 1", s.sessionID)
	}
	got := s.DeviceInfo()
	if got == nil || got.Manufacturer != "Acme" || got.Model != "Widget" {
		t.Fatalf("DeviceInfo() = %+v, want round-tripped Acme/Widget", got)
	}
}

// §8 scenario 5: a Response transaction id that doesn't match the
// Command's must surface ProtocolViolationError and fault the session.
func TestSessionTransactionIDMismatchFaults(t *testing.T) {
	ft := &fakeTransport{
		mps:   64,
		reads: [][]byte{buildContainer(ContainerResponse, RC_OK, 6, nil)},
	}
	s := NewSession(ft, Config{Timeout: time.Second}, nil)
	s.state = StateOpen
	s.sessionID = 1
	s.nextTID = 5

	_, err := s.RunTransaction(OC_GetStorageInfo, []uint32{1}, nil, false, nil)
	if err == nil {
		t.Fatalf("RunTransaction: got nil error, want ProtocolViolationError")
	}
	if _, ok := err.(*ProtocolViolationError); !ok {
		t.Fatalf("RunTransaction error = %T (%v), want *ProtocolViolationError", err, err)
	}
	if s.State() != StateFaulted {
		t.Fatalf("State() = %v, want Faulted", s.State())
	}
}

// §8 scenario 6: a well-formed non-OK Response (InvalidStorageID) must
// surface InvalidResponseError with the bit-exact code, leaving the
// session Open so further operations still succeed.
func TestSessionInvalidStorageIDLeavesSessionOpen(t *testing.T) {
	ft := &fakeTransport{
		mps: 64,
		reads: [][]byte{
			buildContainer(ContainerResponse, RC_InvalidStorageId, 2, nil),
			buildContainer(ContainerResponse, RC_OK, 3, []uint32{7}),
		},
	}
	s := NewSession(ft, Config{Timeout: time.Second}, nil)
	s.state = StateOpen
	s.sessionID = 1
	s.nextTID = 2

	_, err := s.GetStorageInfo(0x00010001)
	if err == nil {
		t.Fatalf("GetStorageInfo: got nil error, want InvalidResponseError")
	}
	ire, ok := err.(*InvalidResponseError)
	if !ok || ire.Code != RC_InvalidStorageId {
		t.Fatalf("GetStorageInfo error = %T (%v), want *InvalidResponseError{0x2008}", err, err)
	}
	if s.State() != StateOpen {
		t.Fatalf("State() after InvalidResponse = %v, want Open", s.State())
	}

	// Further operations on the same session still succeed.
	n, err := s.GetNumObjects(AllStorages, 0, RootObject)
	if err != nil {
		t.Fatalf("GetNumObjects after InvalidResponse: %v", err)
	}
	if n != 7 {
		t.Fatalf("GetNumObjects = %d, want 7", n)
	}
}
