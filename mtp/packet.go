package mtp

import (
	"time"
)

// fetchBufSize is the scratch buffer size used when pulling one USB
// packet off the bulk-in endpoint; large enough for any max packet size
// MTP devices advertise (64/512/1024) plus slack.
const fetchBufSize = 1 << 16

// Framer implements §4.4's packet framing atop a Transport: it frames and
// unframes Container headers, handles the header-merged-with-first-
// data-chunk wire quirk, and the zero-length-packet termination rule.
// It knows nothing about transactions or sessions; session.go drives it.
type Framer struct {
	t       Transport
	timeout time.Duration
	log     chLogger
}

// chLogger is the minimal logging surface packet.go needs; defined here
// rather than importing mtplog directly so this file has no dependency
// beyond the standard library, with the concrete logger wired in by
// session.go via NewFramer.
type chLogger interface {
	Debugf(format string, args ...interface{})
}

// NewFramer builds a Framer over a Transport. log may be nil.
func NewFramer(t Transport, timeout time.Duration, log chLogger) *Framer {
	return &Framer{t: t, timeout: timeout, log: log}
}

func (f *Framer) debugf(format string, args ...interface{}) {
	if f.log != nil {
		f.log.Debugf(format, args...)
	}
}

// outMaxPacket/inMaxPacket are shorthand for the endpoint sizes the
// framer consults to decide ZLP termination (§4.4).
func (f *Framer) outMaxPacket() uint32 { return f.t.MaxPacketSize(EndpointBulkOut) }
func (f *Framer) inMaxPacket() uint32  { return f.t.MaxPacketSize(EndpointBulkIn) }

// WriteCommand sends a Command container (header plus up to five
// parameters) as a single bulk-out transfer.
func (f *Framer) WriteCommand(c *Container) error {
	buf := c.encodeCommandHeader()
	f.debugf("-> command code=0x%x tid=%d param=%v", c.Code, c.TransactionID, c.Param)
	_, err := f.t.WriteBulk(buf, f.timeout)
	return err
}

// WriteDataPhase sends a Data container for code/tid whose payload comes
// from src. If src.Size() is known and nonzero-representable, known-length
// mode is used (declaredLen = size, 0 is a legitimate empty payload);
// the caller passes unknownLength explicitly for payloads truly unsized
// (e.g. SendObject from a stream with no Size()). The 12-byte header is
// merged into the same USB packet as the first chunk of payload, up to
// outMaxPacket()-12 bytes, per §4.4's header-merge quirk.
func (f *Framer) WriteDataPhase(code uint16, tid uint32, src InputStream, unknownLength bool, separateHeader bool) error {
	mps := f.outMaxPacket()
	declared := src.Size()
	hdrLen := uint32(declaredLength(unknownLength, declared))

	header := encodeDataHeader(code, tid, hdrLen)

	var n int
	var lastWasFull bool
	if separateHeader {
		// Some device firmwares mishandle the header-merged form for
		// partial-object writes; send the header alone.
		if _, err := f.t.WriteBulk(header, f.timeout); err != nil {
			return &TransportError{Kind: classifyErr(err), Err: err}
		}
		lastWasFull = len(header) == int(mps)
	} else {
		firstChunkCap := int(mps) - containerHeaderLen
		if firstChunkCap < 0 {
			firstChunkCap = 0
		}
		packet := make([]byte, containerHeaderLen+firstChunkCap)
		copy(packet, header)

		var err error
		n, err = fillFrom(src, packet[containerHeaderLen:containerHeaderLen+firstChunkCap])
		if err != nil {
			return wrapReadErr(err)
		}

		first := packet[:containerHeaderLen+n]
		f.debugf("-> data header+chunk code=0x%x tid=%d bytes=%d", code, tid, n)
		if _, err := f.t.WriteBulk(first, f.timeout); err != nil {
			return &TransportError{Kind: classifyErr(err), Err: err}
		}
		lastWasFull = len(first) == int(mps)
	}

	total := uint64(n)
	buf := make([]byte, mps)
	for {
		m, rerr := fillFrom(src, buf)
		if m > 0 {
			if _, werr := f.t.WriteBulk(buf[:m], f.timeout); werr != nil {
				return &TransportError{Kind: classifyErr(werr), Err: werr}
			}
			total += uint64(m)
			lastWasFull = m == int(mps)
		}
		if rerr != nil {
			return wrapReadErr(rerr)
		}
		if m == 0 {
			break
		}
	}

	if !unknownLength && (containerHeaderLen+total)%uint64(mps) == 0 {
		// Header plus payload is an exact multiple of mps: emit the
		// explicit ZLP terminator (§4.4, §8 scenario 3).
		if _, err := f.t.WriteBulk(nil, f.timeout); err != nil {
			return &TransportError{Kind: classifyErr(err), Err: err}
		}
	} else if unknownLength && lastWasFull {
		// Unknown-length mode signals end-of-stream with a short
		// (possibly empty) packet.
		if _, err := f.t.WriteBulk(nil, f.timeout); err != nil {
			return &TransportError{Kind: classifyErr(err), Err: err}
		}
	}
	return nil
}

// declaredLength returns the Data container's length field: the
// unknownLength sentinel, or containerHeaderLen+size for known lengths.
func declaredLength(unknown bool, size uint64) uint64 {
	if unknown {
		return unknownLength
	}
	return uint64(containerHeaderLen) + size
}

// fillFrom reads from src until buf is full or src reports it has no
// more data (a short or zero read). It never blocks waiting for more
// than one short read, matching InputStream.Read's "0 iff truly at end"
// contract.
func fillFrom(src InputStream, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := src.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// rawHeader is the decoded 12-byte container header plus whatever
// trailing bytes arrived in the same USB packet.
type rawHeader struct {
	Length uint32
	Type   ContainerType
	Code   uint16
	TID    uint32
	Rest   []byte
}

// ReadNext pulls exactly one USB packet off the bulk-in endpoint and
// parses its 12-byte container header.
func (f *Framer) ReadNext() (rawHeader, error) {
	buf := make([]byte, fetchBufSize)
	mps := f.inMaxPacket()
	if mps > 0 && mps < fetchBufSize {
		buf = buf[:mps]
	}
	n, err := f.t.ReadBulk(buf, f.timeout)
	if err != nil {
		return rawHeader{}, &TransportError{Kind: classifyErr(err), Err: err}
	}
	length, typ, code, tid, herr := decodeHeader(buf[:n])
	if herr != nil {
		return rawHeader{}, herr
	}
	f.debugf("<- packet type=%s code=0x%x tid=%d bytes=%d", typ, code, tid, n)
	return rawHeader{Length: length, Type: typ, Code: code, TID: tid, Rest: append([]byte{}, buf[containerHeaderLen:n]...)}, nil
}

// ReadDataPayload drains a Data container's payload (first packet already
// parsed into hdr) into dest, honoring known/unknown-length framing, and
// returns once the payload is fully consumed (including any trailing
// ZLP in known-length mode whose declared size is an exact mps multiple).
func (f *Framer) ReadDataPayload(hdr rawHeader, dest OutputStream) error {
	if setter, ok := dest.(TotalSetter); ok && hdr.Length != unknownLength {
		setter.SetTotal(uint64(hdr.Length) - containerHeaderLen)
	}

	if _, err := dest.Write(hdr.Rest); err != nil {
		return err
	}

	mps := f.inMaxPacket()
	firstPacketLen := containerHeaderLen + len(hdr.Rest)
	wasFull := mps > 0 && firstPacketLen == int(mps)

	if hdr.Length != unknownLength {
		want := uint64(hdr.Length) - containerHeaderLen
		got := uint64(len(hdr.Rest))
		for got < want {
			n, full, err := f.readOnePacketInto(dest)
			if err != nil {
				return err
			}
			got += uint64(n)
			wasFull = full
		}
		// Exact-multiple payloads are followed by an explicit ZLP;
		// consume it so it isn't mistaken for the next container.
		if wasFull && uint64(hdr.Length)%uint64(mps) == 0 {
			if _, _, err := f.readOnePacketInto(nullOutputStream{}); err != nil {
				return err
			}
		}
		return nil
	}

	// Unknown-length mode: keep reading until a short packet arrives.
	for wasFull {
		n, full, err := f.readOnePacketInto(dest)
		if err != nil {
			return err
		}
		_ = n
		wasFull = full
	}
	return nil
}

func (f *Framer) readOnePacketInto(dest OutputStream) (n int, wasFull bool, err error) {
	mps := f.inMaxPacket()
	buf := make([]byte, fetchBufSize)
	if mps > 0 && mps < fetchBufSize {
		buf = buf[:mps]
	}
	got, rerr := f.t.ReadBulk(buf, f.timeout)
	if rerr != nil {
		return 0, false, &TransportError{Kind: classifyErr(rerr), Err: rerr}
	}
	if got > 0 {
		if _, werr := dest.Write(buf[:got]); werr != nil {
			return got, false, werr
		}
	}
	return got, mps > 0 && got == int(mps), nil
}

// nullOutputStream discards bytes; used to consume a terminating ZLP
// without exposing it to the caller's real sink.
type nullOutputStream struct{}

func (nullOutputStream) Write(buf []byte) (int, error) { return len(buf), nil }

// classifyErr maps a Transport-reported error onto a TransportErrorKind.
// Backends are expected to return *TransportError already; this is the
// fallback for a bare error a simpler backend (or test double) returns.
func classifyErr(err error) TransportErrorKind {
	if te, ok := err.(*TransportError); ok {
		return te.Kind
	}
	return ErrIO
}

// wrapReadErr classifies an error returned by an InputStream's Read (via
// fillFrom) for the caller to return. A *CancelledError must cross this
// boundary unwrapped so IsCancelled keeps working and the §4.8 taxonomy
// stays intact; anything else is a stream-side I/O failure.
func wrapReadErr(err error) error {
	if _, ok := err.(*CancelledError); ok {
		return err
	}
	return &TransportError{Kind: ErrIO, Err: err}
}
