package usbtransport

import (
	"context"
	"encoding/binary"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kvothe-labs/gomtp/mtp"
)

// Event is a decoded Event container read off the interrupt-in
// endpoint: ObjectAdded, DevicePropChanged, CaptureComplete, and the
// like (§6, EC_names). The core session layer never reads this
// endpoint itself (§5: no background threads in the core); a listener
// here is the caller's opt-in background worker.
type Event struct {
	Code  uint16
	Param []uint32
}

// EventListener polls a Transport's interrupt endpoint on a background
// goroutine and delivers decoded events to a channel, grounded on the
// teacher's LVServer.Run (mtp/server.go): an errgroup.WithContext
// worker loop that exits cleanly when its context is cancelled rather
// than blocking the request/response path that drives RunTransaction.
type EventListener struct {
	t       mtp.Transport
	timeout time.Duration
	events  chan Event
	eg      *errgroup.Group
	egCtx   context.Context
}

// NewEventListener builds a listener over t. Run must be called to
// start polling; Events returns the channel events are delivered on,
// closed once polling stops.
func NewEventListener(ctx context.Context, t mtp.Transport, timeout time.Duration) *EventListener {
	eg, egCtx := errgroup.WithContext(ctx)
	return &EventListener{
		t:       t,
		timeout: timeout,
		events:  make(chan Event, 16),
		eg:      eg,
		egCtx:   egCtx,
	}
}

// Events returns the channel events are delivered on.
func (l *EventListener) Events() <-chan Event { return l.events }

// Run starts the polling worker and blocks until it stops, either
// because its context was cancelled or ReadInterrupt returned a
// non-Timeout error.
func (l *EventListener) Run() error {
	l.eg.Go(l.poll)
	return l.eg.Wait()
}

func (l *EventListener) poll() error {
	defer close(l.events)

	buf := make([]byte, 64)
	for {
		select {
		case <-l.egCtx.Done():
			return nil
		default:
		}

		n, err := l.t.ReadInterrupt(buf, l.timeout)
		if err != nil {
			if te, ok := err.(*mtp.TransportError); ok && te.Kind == mtp.ErrTimeout {
				continue
			}
			return err
		}

		ev, ok := decodeEvent(buf[:n])
		if !ok {
			continue
		}

		select {
		case l.events <- ev:
		case <-l.egCtx.Done():
			return nil
		}
	}
}

// decodeEvent parses an Event container's wire form: a 12-byte header
// (length, type, code, transaction id) followed by up to three u32
// parameters, the same header shape the core's container codec uses
// for Command/Data/Response (§4.1), reimplemented locally here since
// the core doesn't export its header decoder to collaborators.
func decodeEvent(buf []byte) (Event, bool) {
	const headerLen = 12
	if len(buf) < headerLen {
		return Event{}, false
	}
	code := binary.LittleEndian.Uint16(buf[6:8])
	var params []uint32
	for off := headerLen; off+4 <= len(buf); off += 4 {
		params = append(params, binary.LittleEndian.Uint32(buf[off:]))
	}
	return Event{Code: code, Param: params}, true
}
