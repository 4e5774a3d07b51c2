package mtp

import "time"

// Endpoint identifies one of the three USB endpoints a Transport exposes
// (§4.3, §6): bulk-out (commands and outgoing data), bulk-in (incoming
// data and responses), and interrupt-in (events).
type Endpoint int

const (
	EndpointBulkOut Endpoint = iota
	EndpointBulkIn
	EndpointInterruptIn
)

// Transport is the external collaborator contract consumed by the
// session/packet layers (§4.3, §6): a thin duplex channel over three USB
// endpoints. A concrete backend (e.g. usbtransport's gousb adapter) binds
// this to real hardware; the core never imports a USB library directly.
type Transport interface {
	// WriteBulk writes to the bulk-out endpoint, returning the number of
	// bytes written. A short write that is not the caller's last chunk
	// is a transport error.
	WriteBulk(buf []byte, timeout time.Duration) (int, error)

	// ReadBulk reads at most one USB packet from the bulk-in endpoint
	// into buf, returning the number of bytes read.
	ReadBulk(buf []byte, timeout time.Duration) (int, error)

	// ReadInterrupt reads at most one USB packet from the interrupt-in
	// (event) endpoint. Optional for basic use (§6); a backend that
	// doesn't support events may always return a TransportError.
	ReadInterrupt(buf []byte, timeout time.Duration) (int, error)

	// MaxPacketSize reports the negotiated max packet size of the named
	// endpoint, needed by the framer to decide ZLP termination (§4.4).
	MaxPacketSize(ep Endpoint) uint32

	// Reset performs a best-effort stall clear (§7: Transport::Stall
	// recovery).
	Reset() error

	// Close releases the channel. A session uses its Transport
	// exclusively (§5), but Session.Close does not call it; whoever
	// opened the Transport closes it after the session is done.
	Close() error
}
