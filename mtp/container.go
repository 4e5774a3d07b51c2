package mtp

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// byteOrder is the only place the wire's integer byte order is named; MTP
// containers and all typed payloads are little-endian regardless of host
// byte order.
var byteOrder = binary.LittleEndian

// ContainerType is the Container.Type wire field (§3 of the protocol:
// 1=Command, 2=Data, 3=Response, 4=Event).
type ContainerType uint16

const (
	ContainerCommand  ContainerType = 1
	ContainerData     ContainerType = 2
	ContainerResponse ContainerType = 3
	ContainerEvent    ContainerType = 4
)

func (t ContainerType) String() string {
	switch t {
	case ContainerCommand:
		return "Command"
	case ContainerData:
		return "Data"
	case ContainerResponse:
		return "Response"
	case ContainerEvent:
		return "Event"
	}
	return fmt.Sprintf("ContainerType(0x%x)", uint16(t))
}

// containerHeaderLen is the fixed 12-byte header: length(4) + type(2) + code(2) + tid(4).
const containerHeaderLen = 4 + 2 + 2 + 4

// unknownLength is the Data-container length sentinel meaning "true size
// not known in advance; end is signalled by a short USB packet".
const unknownLength = 0xFFFFFFFF

// Container is the decoded form of one Command/Data/Response/Event packet.
// Param carries up to five 32-bit command parameters, or the parsed
// parameters of a Response.
type Container struct {
	Type          ContainerType
	Code          uint16
	TransactionID uint32
	Param         []uint32
}

// encodeCommandHeader renders the 12-byte header plus up to five
// parameters (len(c.Param) <= 5) as the Command container's full payload.
func (c *Container) encodeCommandHeader() []byte {
	out := make([]byte, containerHeaderLen+4*len(c.Param))
	byteOrder.PutUint32(out[0:], uint32(len(out)))
	byteOrder.PutUint16(out[4:], uint16(ContainerCommand))
	byteOrder.PutUint16(out[6:], c.Code)
	byteOrder.PutUint32(out[8:], c.TransactionID)
	for i, p := range c.Param {
		byteOrder.PutUint32(out[containerHeaderLen+4*i:], p)
	}
	return out
}

// encodeDataHeader renders just the 12-byte Data-container header; payload
// bytes are streamed separately by the packet framer.
func encodeDataHeader(code uint16, tid uint32, length uint32) []byte {
	out := make([]byte, containerHeaderLen)
	byteOrder.PutUint32(out[0:], length)
	byteOrder.PutUint16(out[4:], uint16(ContainerData))
	byteOrder.PutUint16(out[6:], code)
	byteOrder.PutUint32(out[8:], tid)
	return out
}

// decodeHeader parses the fixed 12-byte prefix of any container.
func decodeHeader(b []byte) (length uint32, typ ContainerType, code uint16, tid uint32, err error) {
	if len(b) < containerHeaderLen {
		return 0, 0, 0, 0, &MalformedPayloadError{Where: "container header", Detail: "short read"}
	}
	length = byteOrder.Uint32(b[0:])
	typ = ContainerType(byteOrder.Uint16(b[4:]))
	code = byteOrder.Uint16(b[6:])
	tid = byteOrder.Uint32(b[8:])
	return
}

// decodeResponseParams parses the 32-bit parameters following a Response
// header out of the container's trailing bytes.
func decodeResponseParams(rest []byte) ([]uint32, error) {
	if len(rest)%4 != 0 {
		return nil, &MalformedPayloadError{Where: "response params", Detail: "length not a multiple of 4"}
	}
	params := make([]uint32, 0, len(rest)/4)
	for i := 0; i+4 <= len(rest); i += 4 {
		params = append(params, byteOrder.Uint32(rest[i:]))
	}
	return params, nil
}

// decodeStr reads a PTP/MTP string: one byte giving the code-unit count
// (including the trailing NUL), followed by that many UTF-16LE code
// units. An empty string is encoded as a single zero byte.
func decodeStr(r io.Reader) (string, error) {
	var szSlice [1]byte
	if _, err := io.ReadFull(r, szSlice[:]); err != nil {
		return "", err
	}
	sz := int(szSlice[0])
	if sz == 0 {
		return "", nil
	}

	data := make([]byte, 2*sz)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", &MalformedPayloadError{Where: "string", Detail: "underflow"}
	}

	utfStr := make([]byte, 4*sz)
	w := 0
	for i := 0; i < 2*sz; i += 2 {
		cp := byteOrder.Uint16(data[i:])
		w += utf8.EncodeRune(utfStr[w:], rune(cp))
	}
	if w == 0 || utfStr[w-1] != 0 {
		return "", &MalformedPayloadError{Where: "string", Detail: "missing NUL terminator"}
	}
	w--
	return string(utfStr[:w]), nil
}

// encodeStr is the inverse of decodeStr. buf must have room for
// 2*len(s)+4 bytes; the returned slice is the encoded form.
func encodeStr(buf []byte, s string) ([]byte, error) {
	if s == "" {
		buf[0] = 0
		return buf[:1], nil
	}

	codepoints := 0
	buf = append(buf[:0], 0)

	var char [2]byte
	for _, r := range s {
		byteOrder.PutUint16(char[:], uint16(r))
		buf = append(buf, char[0], char[1])
		codepoints++
	}
	buf = append(buf, 0, 0)
	codepoints++
	if codepoints > 254 {
		return nil, &MalformedPayloadError{Where: "string", Detail: "too long"}
	}

	buf[0] = byte(codepoints)
	return buf, nil
}

// decodeU32Array reads a u32 count followed by that many little-endian
// u32 elements.
func decodeU32Array(r io.Reader) ([]uint32, error) {
	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		if err := binary.Read(r, byteOrder, &out[i]); err != nil {
			return nil, &MalformedPayloadError{Where: "array", Detail: "short read"}
		}
	}
	return out, nil
}

// encodeU32Array is the inverse of decodeU32Array.
func encodeU32Array(w io.Writer, vals []uint32) error {
	if err := binary.Write(w, byteOrder, uint32(len(vals))); err != nil {
		return err
	}
	return binary.Write(w, byteOrder, vals)
}
