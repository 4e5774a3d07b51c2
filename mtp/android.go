package mtp

import (
	"io"
)

// Android MTP extensions (vendor operation codes Android's MtpServer
// adds on top of the base PTP/MTP op set, used for partial-object
// edits without re-sending a whole file).

// Same as GetPartialObject, but with a 64 bit offset.
const OC_ANDROID_GET_PARTIAL_OBJECT64 = 0x95C1

// Same as GetPartialObject64, but copying host to device.
const OC_ANDROID_SEND_PARTIAL_OBJECT = 0x95C2

// Truncates a file to a 64 bit length.
const OC_ANDROID_TRUNCATE_OBJECT = 0x95C3

// Must be called before using SendPartialObject and TruncateObject.
const OC_ANDROID_BEGIN_EDIT_OBJECT = 0x95C4

// Commits changes made by SendPartialObject and TruncateObject.
const OC_ANDROID_END_EDIT_OBJECT = 0x95C5

func init() {
	OC_names[0x95C1] = "ANDROID_GET_PARTIAL_OBJECT64"
	OC_names[0x95C2] = "ANDROID_SEND_PARTIAL_OBJECT"
	OC_names[0x95C3] = "ANDROID_TRUNCATE_OBJECT"
	OC_names[0x95C4] = "ANDROID_BEGIN_EDIT_OBJECT"
	OC_names[0x95C5] = "ANDROID_END_EDIT_OBJECT"
}

// GetPartialObject64 reads size bytes starting at offset (a 64 bit
// extension of the base GetPartialObject, whose 32 bit offset can't
// address files over 4GiB) into w.
func (s *Session) GetPartialObject64(handle uint32, offset int64, size uint32, w io.Writer) error {
	params := []uint32{handle, uint32(offset & 0xFFFFFFFF), uint32(offset >> 32), size}
	_, err := s.RunTransaction(OC_ANDROID_GET_PARTIAL_OBJECT64, params, nil, false, &writerOutputStream{w: w})
	return err
}

// BeginEditObject must precede any SendPartialObject/TruncateObject
// call targeting handle.
func (s *Session) BeginEditObject(handle uint32) error {
	_, err := s.RunTransaction(OC_ANDROID_BEGIN_EDIT_OBJECT, []uint32{handle}, nil, false, nil)
	return err
}

// TruncateObject truncates handle to offset bytes; valid only between
// BeginEditObject and EndEditObject.
func (s *Session) TruncateObject(handle uint32, offset int64) error {
	params := []uint32{handle, uint32(offset & 0xFFFFFFFF), uint32(offset >> 32)}
	_, err := s.RunTransaction(OC_ANDROID_TRUNCATE_OBJECT, params, nil, false, nil)
	return err
}

// SendPartialObject writes size bytes from r into handle starting at
// offset; valid only between BeginEditObject and EndEditObject. The
// Data phase's header is forced onto its own USB packet: Android's
// MtpServer writes the payload with a plain write() rather than
// pwrite(), so bytes that arrived merged into the header's packet
// land at the wrong file offset on the device side.
func (s *Session) SendPartialObject(handle uint32, offset int64, size uint32, r io.Reader) error {
	params := []uint32{handle, uint32(offset & 0xFFFFFFFF), uint32(offset >> 32), size}
	src := &sizedReaderInputStream{r: r, size: uint64(size)}
	_, err := s.RunTransactionSeparateHeader(OC_ANDROID_SEND_PARTIAL_OBJECT, params, src, false, nil)
	return err
}

// EndEditObject commits the edits made since the matching
// BeginEditObject.
func (s *Session) EndEditObject(handle uint32) error {
	_, err := s.RunTransaction(OC_ANDROID_END_EDIT_OBJECT, []uint32{handle}, nil, false, nil)
	return err
}
