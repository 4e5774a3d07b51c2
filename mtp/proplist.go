package mtp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ObjectPropertyListElement is one row of a GetObjectPropList response
// (§4.6): a single (object, property) value, self-describing its own
// DataTypeCode so a heterogeneous schema can be parsed in one pass.
type ObjectPropertyListElement struct {
	ObjectHandle uint32
	PropertyCode uint16
	DataTypeCode uint16
	Value        interface{}
}

// ObjectPropertyListHandler is invoked once per element as the property
// list is parsed; returning an error aborts the parse.
type ObjectPropertyListHandler func(ObjectPropertyListElement) error

// ParseObjectPropertyList decodes a GetObjectPropList payload of
// payloadLen bytes from r, calling handler once per element in wire
// order. It is schema-driven by each element's own DataTypeCode rather
// than a caller-supplied struct, since the response mixes property
// codes of different types in one stream; it does not filter by
// property code, it delivers every element and lets the handler decide
// (§4.6 "Property list parsing"). Parsing MUST consume exactly
// payloadLen bytes; a discrepancy (leftover bytes, or running out
// before payloadLen is reached) is MalformedPayloadError.
func ParseObjectPropertyList(r io.Reader, payloadLen uint32, handler ObjectPropertyListHandler) error {
	cr := &countingReader{r: r}

	var count uint32
	if err := binary.Read(cr, byteOrder, &count); err != nil {
		return &MalformedPayloadError{Where: "ObjectPropList.count", Detail: err.Error()}
	}

	for i := uint32(0); i < count; i++ {
		el, err := decodeObjectPropertyListElement(cr)
		if err != nil {
			return err
		}
		if err := handler(el); err != nil {
			return err
		}
	}

	if cr.n != uint64(payloadLen) {
		return &MalformedPayloadError{
			Where:  "ObjectPropList",
			Detail: fmt.Sprintf("consumed %d bytes, want %d", cr.n, payloadLen),
		}
	}
	return nil
}

func decodeObjectPropertyListElement(r io.Reader) (ObjectPropertyListElement, error) {
	var el ObjectPropertyListElement
	if err := binary.Read(r, byteOrder, &el.ObjectHandle); err != nil {
		return el, &MalformedPayloadError{Where: "ObjectPropList.element.handle", Detail: err.Error()}
	}
	if err := binary.Read(r, byteOrder, &el.PropertyCode); err != nil {
		return el, &MalformedPayloadError{Where: "ObjectPropList.element.property", Detail: err.Error()}
	}
	if err := binary.Read(r, byteOrder, &el.DataTypeCode); err != nil {
		return el, &MalformedPayloadError{Where: "ObjectPropList.element.datatype", Detail: err.Error()}
	}
	val, err := decodePropListValue(r, el.DataTypeCode)
	if err != nil {
		return el, err
	}
	el.Value = val
	return el, nil
}

// decodePropListValue decodes one element's value given its runtime
// DataTypeCode. Array codes (DTC_ARRAY_MASK set) decode to a []uint64
// of the base type's width; unknown codes are MalformedPayloadError
// rather than a panic, since property-list values arrive already
// demultiplexed off the wire and a caller iterating a real device's
// full property set should get one bad element reported, not a crash.
func decodePropListValue(r io.Reader, dtc uint16) (interface{}, error) {
	if dtc == DTC_STR {
		s, err := decodeStr(r)
		if err != nil {
			return nil, &MalformedPayloadError{Where: "ObjectPropList.element.value", Detail: err.Error()}
		}
		return s, nil
	}

	if dtc&DTC_ARRAY_MASK != 0 {
		base := dtc &^ uint16(DTC_ARRAY_MASK)
		sz, err := scalarSize(base)
		if err != nil {
			return nil, err
		}
		var count uint32
		if err := binary.Read(r, byteOrder, &count); err != nil {
			return nil, &MalformedPayloadError{Where: "ObjectPropList.element.array.count", Detail: err.Error()}
		}
		vals := make([]uint64, count)
		for i := range vals {
			v, err := readScalar(r, sz)
			if err != nil {
				return nil, &MalformedPayloadError{Where: "ObjectPropList.element.array.value", Detail: err.Error()}
			}
			vals[i] = v
		}
		return vals, nil
	}

	sz, err := scalarSize(dtc)
	if err != nil {
		return nil, err
	}
	return readScalar(r, sz)
}

func scalarSize(dtc uint16) (int, error) {
	switch dtc {
	case DTC_INT8, DTC_UINT8:
		return 1, nil
	case DTC_INT16, DTC_UINT16:
		return 2, nil
	case DTC_INT32, DTC_UINT32:
		return 4, nil
	case DTC_INT64, DTC_UINT64:
		return 8, nil
	case DTC_INT128, DTC_UINT128:
		return 16, nil
	default:
		return 0, &MalformedPayloadError{Where: "ObjectPropList.element.value", Detail: fmt.Sprintf("unknown data type code 0x%x", dtc)}
	}
}

func readScalar(r io.Reader, sz int) (uint64, error) {
	buf := make([]byte, sz)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	switch sz {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(byteOrder.Uint16(buf)), nil
	case 4:
		return uint64(byteOrder.Uint32(buf)), nil
	default:
		// 8 and 16-byte values (int64/uint64/int128/uint128) are
		// returned as their low 64 bits; MTP devices observed in
		// practice only use the wider codes for reserved fields.
		return byteOrder.Uint64(buf[:8]), nil
	}
}

// countingReader tracks bytes read so ParseObjectPropertyList can
// enforce its exact-consumption invariant.
type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}
