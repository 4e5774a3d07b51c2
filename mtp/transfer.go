package mtp

import (
	"os"
	"path/filepath"
	"time"

	"github.com/paulbellamy/ratecounter"
)

// RateProgressReporter adapts a ratecounter.RateCounter to the
// ProgressReporter mixin, turning a stream's cumulative byte count into
// a live throughput figure. Ported from the teacher's live-view
// fpsRate (mtp/server.go), which fed frame counts into the same
// counter type; here it's fed byte deltas from GetObject/SendObject
// instead of frame arrivals.
type RateProgressReporter struct {
	rate *ratecounter.RateCounter
	last uint64
}

// NewRateProgressReporter builds a reporter averaging over window
// (the teacher's server.go uses one second, for an FPS figure; a
// transfer sampled over one second gives bytes/sec).
func NewRateProgressReporter(window time.Duration) *RateProgressReporter {
	return &RateProgressReporter{rate: ratecounter.NewRateCounter(window)}
}

// OnProgress feeds the delta since the last call into the rate
// counter; ObjectStream implementations call this with a monotonically
// increasing cumulative total, so only the delta is meaningful here.
func (p *RateProgressReporter) OnProgress(transferred uint64) {
	if transferred > p.last {
		p.rate.Incr(int64(transferred - p.last))
	}
	p.last = transferred
}

// Rate reports the current throughput in bytes per window.
func (p *RateProgressReporter) Rate() int64 { return p.rate.Rate() }

// TransferOptions configures the file-based convenience wrappers below;
// the zero value disables progress reporting and cancellation.
type TransferOptions struct {
	Progress *RateProgressReporter
	Cancel   *CancelToken
}

// SendObjectFromFile is a SendObjectInfo+SendObject pipeline over an
// on-disk file: it derives the ObjectInfo's Filename/CompressedSize/
// ModificationDate from the file, uploads it to wantStorageID
// (AnyStorage lets the device choose the store) under wantParent, and
// returns the handle the device
// assigned. Grounded on the teacher's fs.go upload path, which drives
// the same two-call sequence from a FUSE write.
func (s *Session) SendObjectFromFile(path string, wantStorageID, wantParent uint32, opts TransferOptions) (handle uint32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}

	info := &ObjectInfo{
		ObjectFormat:     OFC_Undefined,
		CompressedSize:   uint32(fi.Size()),
		ParentObject:     wantParent,
		Filename:         filepath.Base(path),
		ModificationDate: fi.ModTime(),
	}

	_, _, handle, err = s.SendObjectInfo(wantStorageID, wantParent, info)
	if err != nil {
		return 0, err
	}

	in, err := NewFileInputStream(f)
	if err != nil {
		return 0, err
	}
	if opts.Progress != nil {
		in.SetProgressReporter(opts.Progress)
	}
	if opts.Cancel != nil {
		in.cancel = opts.Cancel
	}

	if err := s.sendObjectStream(in, false); err != nil {
		return 0, err
	}
	return handle, nil
}

// GetObjectToFile streams handle's contents to a newly created file at
// path, optionally reporting progress/honoring cancellation.
func (s *Session) GetObjectToFile(handle uint32, path string, opts TransferOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := NewFileOutputStream(f)
	if opts.Progress != nil {
		out.SetProgressReporter(opts.Progress)
	}
	if opts.Cancel != nil {
		out.cancel = opts.Cancel
	}

	_, err = s.RunTransaction(OC_GetObject, []uint32{handle}, nil, false, out)
	return err
}
