package usbtransport

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/kvothe-labs/gomtp/mtp"
)

// fakeEventTransport is a minimal mtp.Transport double that only needs
// to drive ReadInterrupt for EventListener; the other methods are unused
// by poll.
type fakeEventTransport struct {
	packets [][]byte
	idx     int
}

func (f *fakeEventTransport) WriteBulk(buf []byte, timeout time.Duration) (int, error) {
	return len(buf), nil
}
func (f *fakeEventTransport) ReadBulk(buf []byte, timeout time.Duration) (int, error) {
	return 0, nil
}

func (f *fakeEventTransport) ReadInterrupt(buf []byte, timeout time.Duration) (int, error) {
	if f.idx >= len(f.packets) {
		return 0, &mtp.TransportError{Kind: mtp.ErrTimeout}
	}
	pkt := f.packets[f.idx]
	f.idx++
	return copy(buf, pkt), nil
}

func (f *fakeEventTransport) MaxPacketSize(ep mtp.Endpoint) uint32 { return 64 }
func (f *fakeEventTransport) Reset() error                        { return nil }
func (f *fakeEventTransport) Close() error                        { return nil }

func buildEventPacket(code uint16, tid uint32, params []uint32) []byte {
	out := make([]byte, 12+4*len(params))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(out)))
	binary.LittleEndian.PutUint16(out[4:], 4) // container type = Event; decodeEvent ignores it
	binary.LittleEndian.PutUint16(out[6:], code)
	binary.LittleEndian.PutUint32(out[8:], tid)
	for i, p := range params {
		binary.LittleEndian.PutUint32(out[12+4*i:], p)
	}
	return out
}

func TestDecodeEventParsesCodeAndParams(t *testing.T) {
	pkt := buildEventPacket(mtp.EC_ObjectAdded, 3, []uint32{0xAABB})
	ev, ok := decodeEvent(pkt)
	if !ok {
		t.Fatalf("decodeEvent: got ok=false, want true")
	}
	if ev.Code != mtp.EC_ObjectAdded {
		t.Fatalf("Code = 0x%x, want 0x%x", ev.Code, mtp.EC_ObjectAdded)
	}
	if len(ev.Param) != 1 || ev.Param[0] != 0xAABB {
		t.Fatalf("Param = %v, want [0xAABB]", ev.Param)
	}
}

func TestDecodeEventRejectsShortPacket(t *testing.T) {
	if _, ok := decodeEvent([]byte{1, 2, 3}); ok {
		t.Fatalf("decodeEvent on a 3-byte packet: got ok=true, want false")
	}
}

// TestEventListenerDeliversDecodedEvents drives poll end-to-end: two
// queued interrupt packets are decoded and delivered on Events(), then
// the listener's context is cancelled and Run returns cleanly.
func TestEventListenerDeliversDecodedEvents(t *testing.T) {
	ft := &fakeEventTransport{
		packets: [][]byte{
			buildEventPacket(mtp.EC_ObjectAdded, 1, []uint32{7}),
			buildEventPacket(mtp.EC_DevicePropChanged, 2, []uint32{uint32(mtp.DPC_BatteryLevel)}),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := NewEventListener(ctx, ft, time.Second)

	done := make(chan error, 1)
	go func() { done <- l.Run() }()

	var got []Event
	for i := 0; i < 2; i++ {
		select {
		case ev := <-l.Events():
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got[0].Code != mtp.EC_ObjectAdded || got[0].Param[0] != 7 {
		t.Fatalf("first event = %+v, want ObjectAdded/[7]", got[0])
	}
	if got[1].Code != mtp.EC_DevicePropChanged || got[1].Param[0] != uint32(mtp.DPC_BatteryLevel) {
		t.Fatalf("second event = %+v, want DevicePropChanged/[BatteryLevel]", got[1])
	}
}
