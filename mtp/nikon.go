package mtp

// Nikon MTP extensions. Nikon's live-view capture and its image
// rotation/autofocus-status header fields are out of scope (no
// component in this module decodes an LV JPEG stream); the AfDrive
// operation itself is a plain no-data transaction and is wired below.

const (
	OC_NIKON_AfDrive = 0x90C1
)

func init() {
	OC_names[OC_NIKON_AfDrive] = "NIKON_AfDrive"
}

// NikonAfDrive triggers a single autofocus cycle on Nikon bodies that
// support the vendor extension.
func (s *Session) NikonAfDrive() error {
	_, err := s.RunTransaction(OC_NIKON_AfDrive, nil, nil, false, nil)
	return err
}
