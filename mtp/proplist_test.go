package mtp

import (
	"bytes"
	"testing"
)

// §8 scenario 4: a two-element GetObjectPropList payload mixing a string
// property and a scalar property on the same object handle.
func TestParseObjectPropertyListLiteralScenario(t *testing.T) {
	var buf bytes.Buffer
	binaryWriteU32(&buf, 2) // element count

	nameVal, err := encodeStr(make([]byte, 0, 16), "a")
	if err != nil {
		t.Fatalf("encodeStr: %v", err)
	}

	binaryWriteU32(&buf, 7)
	binaryWriteU16(&buf, OPC_ObjectFileName)
	binaryWriteU16(&buf, DTC_STR)
	buf.Write(nameVal)

	binaryWriteU32(&buf, 7)
	binaryWriteU16(&buf, OPC_ObjectSize)
	binaryWriteU16(&buf, DTC_UINT64)
	binaryWriteU64(&buf, 42)

	payload := buf.Bytes()

	var got []ObjectPropertyListElement
	err = ParseObjectPropertyList(bytes.NewReader(payload), uint32(len(payload)), func(el ObjectPropertyListElement) error {
		got = append(got, el)
		return nil
	})
	if err != nil {
		t.Fatalf("ParseObjectPropertyList: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2: %+v", len(got), got)
	}

	if got[0].ObjectHandle != 7 || got[0].PropertyCode != OPC_ObjectFileName || got[0].DataTypeCode != DTC_STR {
		t.Fatalf("element 0 = %+v, want handle=7 code=OPC_ObjectFileName type=DTC_STR", got[0])
	}
	if s, ok := got[0].Value.(string); !ok || s != "a" {
		t.Fatalf("element 0 value = %#v, want \"a\"", got[0].Value)
	}

	if got[1].ObjectHandle != 7 || got[1].PropertyCode != OPC_ObjectSize || got[1].DataTypeCode != DTC_UINT64 {
		t.Fatalf("element 1 = %+v, want handle=7 code=OPC_ObjectSize type=DTC_UINT64", got[1])
	}
	if v, ok := got[1].Value.(uint64); !ok || v != 42 {
		t.Fatalf("element 1 value = %#v, want uint64(42)", got[1].Value)
	}
}

// A declared payloadLen that doesn't match what was actually consumed
// (here, one byte short) must surface MalformedPayloadError rather than
// silently returning a truncated element set.
func TestParseObjectPropertyListRejectsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	binaryWriteU32(&buf, 1)
	binaryWriteU32(&buf, 7)
	binaryWriteU16(&buf, OPC_ObjectSize)
	binaryWriteU16(&buf, DTC_UINT64)
	binaryWriteU64(&buf, 42)

	payload := buf.Bytes()

	err := ParseObjectPropertyList(bytes.NewReader(payload), uint32(len(payload)-1), func(ObjectPropertyListElement) error {
		return nil
	})
	if err == nil {
		t.Fatalf("ParseObjectPropertyList: got nil error, want MalformedPayloadError")
	}
	if _, ok := err.(*MalformedPayloadError); !ok {
		t.Fatalf("ParseObjectPropertyList error = %T (%v), want *MalformedPayloadError", err, err)
	}
}

func binaryWriteU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	byteOrder.PutUint16(b[:], v)
	buf.Write(b[:])
}

func binaryWriteU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	buf.Write(b[:])
}

func binaryWriteU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	byteOrder.PutUint64(b[:], v)
	buf.Write(b[:])
}
