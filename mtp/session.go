package mtp

import (
	"bytes"
	"math/rand"
	"sync"
	"time"

	"github.com/kvothe-labs/gomtp/mtplog"
)

// Reserved object/storage sentinels (§3, §6). Root and Device intentionally
// reuse the wire's 0 / 0xFFFFFFFF sentinels (Open Question (a) of spec.md
// §9): Root is the device-defined root folder, Device is "parent of
// root" for objects that live at the top level, AllStorages selects every
// store, AnyStorage lets the device pick one.
const (
	RootObject   uint32 = 0x00000000
	DeviceObject uint32 = 0xFFFFFFFF
	AllStorages  uint32 = 0xFFFFFFFF
	AnyStorage   uint32 = 0x00000000
)

// SessionState is the protocol state machine's current state (§4.5).
type SessionState int

const (
	StateClosed SessionState = iota
	StateOpen
	StateInTransaction
	StateFaulted
)

func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpen:
		return "Open"
	case StateInTransaction:
		return "InTransaction"
	case StateFaulted:
		return "Faulted"
	}
	return "Unknown"
}

// Config holds the caller-set knobs a Session is built with; there is no
// flag/env parsing inside the core (a library takes configuration as a
// struct, not from the process environment).
type Config struct {
	// Timeout bounds every USB bulk/interrupt transfer.
	Timeout time.Duration

	// SeparateHeader forces the Data phase's 12-byte header to be sent
	// as its own USB packet rather than merged with the first payload
	// chunk. Some device firmwares (notably certain Android
	// implementations servicing partial-object writes) mishandle the
	// merged form; ported from the teacher's Device.SeparateHeader.
	SeparateHeader bool
}

// Session is the protocol state machine described in §4.5: it owns a
// Transport exclusively, allocates transaction ids, sequences the
// Operation/Data/Response phases, and translates device responses and
// transport failures into the §4.8 error taxonomy. A Session's methods
// are not re-entrant; concurrent callers are serialized at this boundary
// (§5) by s.mu.
type Session struct {
	mu sync.Mutex

	transport Transport
	framer    *Framer
	cfg       Config
	log       *mtplog.Children

	state      SessionState
	sessionID  uint32
	nextTID    uint32
	deviceInfo *DeviceInfo
}

// NewSession wraps an already-open Transport. log may be nil, in which
// case all logging is a no-op.
func NewSession(t Transport, cfg Config, log *mtplog.Children) *Session {
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Second
	}
	var packetLog *mtplog.ChildLogger
	if log != nil {
		packetLog = log.Packet
	}
	return &Session{
		transport: t,
		framer:    NewFramer(t, cfg.Timeout, packetLog),
		cfg:       cfg,
		log:       log,
		state:     StateClosed,
	}
}

func (s *Session) sessionLogf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Session.Debugf(format, args...)
	}
}

// State reports the session's current protocol state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DeviceInfo returns the DeviceInfo cached at Open time.
func (s *Session) DeviceInfo() *DeviceInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceInfo
}

// SupportsOperation reports whether DeviceInfo.OperationsSupported
// advertises code; a caller can check OC_MTP_GetObjPropList with it
// before choosing GetObjectPropertyList over per-object calls (§4.6
// "Property query strategy").
func (s *Session) SupportsOperation(code uint16) bool {
	di := s.DeviceInfo()
	if di == nil {
		return false
	}
	for _, c := range di.OperationsSupported {
		if c == code {
			return true
		}
	}
	return false
}

// Open performs OpenSession(sessionID) and then unconditionally caches
// GetDeviceInfo (grounded in the teacher's Device.OpenSession plus
// original_source's Session constructor sequencing). sessionID of 0
// selects a random nonzero id, avoiding the reserved 0/0xFFFFFFFF values.
func (s *Session) Open(sessionID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateClosed {
		return &ProtocolViolationError{Detail: "Open called outside Closed state"}
	}
	if sessionID == 0 {
		sessionID = uint32(rand.Int31()) | 1
	}

	// Runs with nextTID still at its zero value; OpenSession's own
	// transaction id is 0, matching the teacher's sessionData{tid: 1}
	// starting point for the transaction that follows it.
	if _, err := s.doTransaction(OC_OpenSession, []uint32{sessionID}, nil, false, nil); err != nil {
		return err
	}
	s.state = StateOpen
	s.sessionID = sessionID
	s.nextTID = 1

	info := &DeviceInfo{}
	buf := NewByteArrayOutputStream()
	if _, err := s.doTransaction(OC_GetDeviceInfo, nil, nil, false, buf); err != nil {
		return err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), info); err != nil {
		s.state = StateFaulted
		return err
	}
	s.deviceInfo = info
	return nil
}

// Close sends CloseSession best-effort (§4.5 "Open → Closed") and marks
// the session Closed regardless of outcome.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		s.state = StateClosed
		return nil
	}
	_, err := s.doTransaction(OC_CloseSession, nil, nil, false, nil)
	s.state = StateClosed
	return err
}

// allocTID returns the next transaction id, monotonically increasing per
// session (§4.5 invariant).
func (s *Session) allocTID() uint32 {
	tid := s.nextTID
	s.nextTID++
	return tid
}

// RunTransaction executes one full Operation[/Data]/Response transaction
// for code with params. Exactly one of dataOutSrc (SendObject-shaped
// operations) or dataInSink (GetObject-shaped operations) should be
// non-nil; both nil means no Data phase is expected. unknownLength only
// matters when dataOutSrc is set, and selects §4.4's unknown-length
// framing instead of using dataOutSrc.Size(). It returns the Response's
// parameters.
func (s *Session) RunTransaction(code uint16, params []uint32, dataOutSrc InputStream, unknownLength bool, dataInSink OutputStream) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return nil, &ProtocolViolationError{Detail: "RunTransaction: session not Open (state=" + s.state.String() + ")"}
	}
	return s.doTransaction(code, params, dataOutSrc, unknownLength, dataInSink)
}

// RunTransactionSeparateHeader is RunTransaction with the Data phase's
// header forced onto its own USB packet for this transaction only,
// regardless of Config.SeparateHeader. Ported from the teacher's
// per-call Device.SeparateHeader = true/false bracketing around
// AndroidSendPartialObject (some device firmwares mishandle the
// merged header+payload form for partial-object writes). It sets
// Config.SeparateHeader only while holding s.mu and restores it before
// releasing the lock, so other transactions, which also run under
// s.mu, always see the session's configured default.
func (s *Session) RunTransactionSeparateHeader(code uint16, params []uint32, dataOutSrc InputStream, unknownLength bool, dataInSink OutputStream) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return nil, &ProtocolViolationError{Detail: "RunTransaction: session not Open (state=" + s.state.String() + ")"}
	}
	saved := s.cfg.SeparateHeader
	s.cfg.SeparateHeader = true
	defer func() { s.cfg.SeparateHeader = saved }()
	return s.doTransaction(code, params, dataOutSrc, unknownLength, dataInSink)
}

// doTransaction assumes s.mu is held and runs the Operation/[Data]/
// Response sequence for one transaction, per §4.5.
func (s *Session) doTransaction(code uint16, params []uint32, dataOutSrc InputStream, unknownLength bool, dataInSink OutputStream) ([]uint32, error) {
	tid := s.allocTID()
	s.state = StateInTransaction

	req := &Container{Type: ContainerCommand, Code: code, TransactionID: tid, Param: params}
	s.sessionLogf("request %s %v tid=%d", OC_names[int(code)], params, tid)
	if err := s.framer.WriteCommand(req); err != nil {
		s.state = StateFaulted
		return nil, err
	}

	if dataOutSrc != nil {
		if err := s.framer.WriteDataPhase(code, tid, dataOutSrc, unknownLength, s.cfg.SeparateHeader); err != nil {
			s.state = StateFaulted
			return nil, err
		}
	}

	hdr, err := s.readResponseOrData(dataInSink)
	if err != nil {
		s.state = StateFaulted
		return nil, err
	}

	if hdr.TID != tid {
		s.state = StateFaulted
		return nil, &ProtocolViolationError{Detail: "transaction id mismatch"}
	}

	params2, perr := decodeResponseParams(hdr.Rest)
	if perr != nil {
		s.state = StateFaulted
		return nil, perr
	}

	if hdr.Code != RC_OK {
		// A well-formed non-OK response leaves the session usable.
		s.state = StateOpen
		return params2, &InvalidResponseError{Code: hdr.Code}
	}

	s.state = StateOpen
	s.sessionLogf("response %s %v", RC_names[int(hdr.Code)], params2)
	return params2, nil
}

// readResponseOrData reads the container(s) following a Command (and any
// Data-out phase): either a Data container (which it drains into
// dataInSink) followed by a Response, or a Response directly (§4.5: "If
// the device returns a Response before the Data phase, it is a
// non-data-carrying operation outcome; implementation MUST accept this
// shape"). Each container read (the first one after the Command, and
// the Response read after a Data phase) gets one Timeout retry (§5.4/§7).
func (s *Session) readResponseOrData(dataInSink OutputStream) (rawHeader, error) {
	hdr, err := s.readWithRetry()
	if err != nil {
		return rawHeader{}, err
	}

	if hdr.Type == ContainerData {
		sink := dataInSink
		unexpected := false
		if sink == nil {
			sink = nullOutputStream{}
			unexpected = true
		}
		if err := s.framer.ReadDataPayload(hdr, sink); err != nil {
			return rawHeader{}, err
		}
		respHdr, err := s.readWithRetry()
		if err != nil {
			return rawHeader{}, err
		}
		if respHdr.Type != ContainerResponse {
			return rawHeader{}, &ProtocolViolationError{Detail: "expected Response after Data"}
		}
		if unexpected {
			return rawHeader{}, &ProtocolViolationError{Detail: "unexpected Data phase for code " + OC_names[int(hdr.Code)]}
		}
		return respHdr, nil
	}

	if hdr.Type != ContainerResponse {
		return rawHeader{}, &ProtocolViolationError{Detail: "unexpected container type in phase"}
	}
	return hdr, nil
}

// readWithRetry retries exactly once on a Timeout, following §7's policy
// for the Response-phase read. It is used for every container read of a
// transaction, so the first read after a Command is retried whether it
// turns out to be a Data or a Response container. A Stall on the first
// attempt triggers a best-effort reset before the session faults.
func (s *Session) readWithRetry() (rawHeader, error) {
	hdr, err := s.framer.ReadNext()
	if err == nil {
		return hdr, nil
	}
	if te, ok := err.(*TransportError); ok {
		if te.Kind == ErrStall {
			s.transport.Reset()
			return rawHeader{}, err
		}
		if te.Kind == ErrTimeout {
			return s.framer.ReadNext()
		}
	}
	return rawHeader{}, err
}
