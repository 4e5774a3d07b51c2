package mtp

import (
	"bytes"
	"io"
)

// This file is the typed operation surface built on Session.RunTransaction
// (§4.6's "typed request/response shapes"): each function encodes its
// parameters, drives one transaction, and decodes the Data phase (if any)
// into a concrete Go type. None of it is reachable until the session is
// Open (enforced by RunTransaction itself).

// GetDeviceInfo retrieves and decodes the device's DeviceInfo dataset.
// Session.Open already caches one copy (see Session.DeviceInfo); this is
// exposed separately for callers that want a fresh read.
func (s *Session) GetDeviceInfo() (*DeviceInfo, error) {
	info := &DeviceInfo{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetDeviceInfo, nil, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetStorageIDs lists the storage ids the device currently exposes.
func (s *Session) GetStorageIDs() (*Uint32Array, error) {
	out := &Uint32Array{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetStorageIDs, nil, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStorageInfo retrieves capacity and filesystem details for one
// storage id (use AllStorages to address every store where an operation
// permits it).
func (s *Session) GetStorageInfo(id uint32) (*StorageInfo, error) {
	info := &StorageInfo{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetStorageInfo, []uint32{id}, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetObjectHandles lists object handles under parent (RootObject for the
// top level) matching storageID/objFormatCode, either of which may be
// the wildcard AllStorages / 0.
func (s *Session) GetObjectHandles(storageID uint32, objFormatCode uint16, parent uint32) (*Uint32Array, error) {
	out := &Uint32Array{}
	buf := NewByteArrayOutputStream()
	params := []uint32{storageID, uint32(objFormatCode), parent}
	if _, err := s.RunTransaction(OC_GetObjectHandles, params, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetObjectInfo retrieves one object's metadata (name, size, parent,
// timestamps, ...).
func (s *Session) GetObjectInfo(handle uint32) (*ObjectInfo, error) {
	info := &ObjectInfo{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetObjectInfo, []uint32{handle}, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetNumObjects counts objects under parent matching storageID/formatCode
// without enumerating handles, returned as the Response's first
// parameter rather than a Data phase.
func (s *Session) GetNumObjects(storageID uint32, formatCode uint16, parent uint32) (uint32, error) {
	params := []uint32{storageID, uint32(formatCode), parent}
	resp, err := s.RunTransaction(OC_GetNumObjects, params, nil, false, nil)
	if err != nil {
		return 0, err
	}
	if len(resp) == 0 {
		return 0, &MalformedPayloadError{Where: "GetNumObjects", Detail: "missing response parameter"}
	}
	return resp[0], nil
}

// DeleteObject removes one object (and, for an association/folder, its
// contents, per the device's own recursive-delete behavior).
func (s *Session) DeleteObject(handle uint32) error {
	_, err := s.RunTransaction(OC_DeleteObject, []uint32{handle, 0}, nil, false, nil)
	return err
}

// GetObjectPropDesc retrieves the property descriptor (type, access,
// valid range/enum, default) for objPropCode as it applies to
// objFormatCode.
func (s *Session) GetObjectPropDesc(objPropCode, objFormatCode uint16) (*ObjectPropDesc, error) {
	desc := &ObjectPropDesc{}
	buf := NewByteArrayOutputStream()
	params := []uint32{uint32(objPropCode), uint32(objFormatCode)}
	if _, err := s.RunTransaction(OC_MTP_GetObjectPropDesc, params, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), desc); err != nil {
		return nil, err
	}
	return desc, nil
}

// GetObjectPropValue reads one property's current value into value
// (a pointer matching the property's wire shape, e.g. *StringValue,
// *Uint64Value).
func (s *Session) GetObjectPropValue(objHandle uint32, objPropCode uint16, value interface{}) error {
	buf := NewByteArrayOutputStream()
	params := []uint32{objHandle, uint32(objPropCode)}
	if _, err := s.RunTransaction(OC_MTP_GetObjectPropValue, params, nil, false, buf); err != nil {
		return err
	}
	return Decode(bytes.NewReader(buf.Bytes()), value)
}

// SetObjectPropValue writes one property's value.
func (s *Session) SetObjectPropValue(objHandle uint32, objPropCode uint16, value interface{}) error {
	var b bytes.Buffer
	if err := Encode(&b, value); err != nil {
		return err
	}
	params := []uint32{objHandle, uint32(objPropCode)}
	src := NewByteArrayInputStream(b.Bytes())
	_, err := s.RunTransaction(OC_MTP_SetObjectPropValue, params, src, false, nil)
	return err
}

// GetObjectPropsSupported lists the property codes objFormatCode's
// objects support.
func (s *Session) GetObjectPropsSupported(objFormatCode uint16) (*Uint16Array, error) {
	out := &Uint16Array{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_MTP_GetObjectPropsSupported, []uint32{uint32(objFormatCode)}, nil, false, buf); err != nil {
		return nil, err
	}
	if err := Decode(bytes.NewReader(buf.Bytes()), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetObjectIntegerProperty reads an integer-valued property over the
// same operation GetObjectPropValue uses (§4.6's
// GetObjectIntegerProperty(id, prop)); the value's width is taken from
// the Data phase length (1, 2, 4 or 8 bytes) and widened to uint64.
func (s *Session) GetObjectIntegerProperty(objHandle uint32, objPropCode uint16) (uint64, error) {
	buf := NewByteArrayOutputStream()
	params := []uint32{objHandle, uint32(objPropCode)}
	if _, err := s.RunTransaction(OC_MTP_GetObjectPropValue, params, nil, false, buf); err != nil {
		return 0, err
	}
	b := buf.Bytes()
	switch len(b) {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(byteOrder.Uint16(b)), nil
	case 4:
		return uint64(byteOrder.Uint32(b)), nil
	case 8:
		return byteOrder.Uint64(b), nil
	}
	return 0, &MalformedPayloadError{Where: "GetObjectIntegerProperty", Detail: "value is not 1, 2, 4 or 8 bytes"}
}

// GetObjectStringProperty is the string-valued counterpart of
// GetObjectIntegerProperty.
func (s *Session) GetObjectStringProperty(objHandle uint32, objPropCode uint16) (string, error) {
	var v StringValue
	if err := s.GetObjectPropValue(objHandle, objPropCode, &v); err != nil {
		return "", err
	}
	return v.Value, nil
}

// GetObjectPropertyList fetches a bulk property snapshot for every object
// matching parent/format in a single round trip (§4.6's "Property query
// strategy"): preferred over per-object GetObjectInfo/property calls
// when DeviceInfo.OperationsSupported advertises OC_MTP_GetObjPropList.
// property = 0xFFFFFFFF requests every supported property; depth = 0
// restricts to parent's immediate children, 0xFFFFFFFF to the whole
// subtree.
func (s *Session) GetObjectPropertyList(parent uint32, format uint16, property, groupCode, depth uint32) ([]ObjectPropertyListElement, error) {
	buf := NewByteArrayOutputStream()
	params := []uint32{parent, uint32(format), property, groupCode, depth}
	if _, err := s.RunTransaction(OC_MTP_GetObjPropList, params, nil, false, buf); err != nil {
		return nil, err
	}
	var elems []ObjectPropertyListElement
	payload := buf.Bytes()
	err := ParseObjectPropertyList(bytes.NewReader(payload), uint32(len(payload)), func(el ObjectPropertyListElement) error {
		elems = append(elems, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elems, nil
}

// GetDevicePropDesc retrieves the full property descriptor (type,
// access, factory default, current value, valid range/enum) for
// propCode.
func (s *Session) GetDevicePropDesc(propCode uint16) (*DevicePropDesc, error) {
	desc := &DevicePropDesc{}
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetDevicePropDesc, []uint32{uint32(propCode)}, nil, false, buf); err != nil {
		return nil, err
	}
	if err := desc.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		return nil, err
	}
	return desc, nil
}

// GetDeviceProperty is GetDevicePropDesc under the name §4.6's Public
// Core API table uses; kept as a distinct method since callers reading
// the device property table by name shouldn't need to know it's the
// same wire operation as the descriptor fetch.
func (s *Session) GetDeviceProperty(propCode uint16) (*DevicePropDesc, error) {
	return s.GetDevicePropDesc(propCode)
}

// GetDevicePropValue reads only propCode's current value into dest,
// skipping the rest of the descriptor GetDevicePropDesc decodes.
func (s *Session) GetDevicePropValue(propCode uint16, dest interface{}) error {
	buf := NewByteArrayOutputStream()
	if _, err := s.RunTransaction(OC_GetDevicePropValue, []uint32{uint32(propCode)}, nil, false, buf); err != nil {
		return err
	}
	return Decode(bytes.NewReader(buf.Bytes()), dest)
}

// SetDevicePropValue writes propCode's current value.
func (s *Session) SetDevicePropValue(propCode uint16, src interface{}) error {
	var b bytes.Buffer
	if err := Encode(&b, src); err != nil {
		return err
	}
	in := NewByteArrayInputStream(b.Bytes())
	_, err := s.RunTransaction(OC_SetDevicePropValue, []uint32{uint32(propCode)}, in, false, nil)
	return err
}

// ResetDevicePropValue resets propCode to its factory default.
func (s *Session) ResetDevicePropValue(propCode uint16) error {
	_, err := s.RunTransaction(OC_ResetDevicePropValue, []uint32{uint32(propCode)}, nil, false, nil)
	return err
}

// SendObjectInfo announces an object's metadata ahead of SendObject,
// letting the device pick the final storage/parent/handle (any of
// which may differ from what the caller requested). wantStorageID and
// wantParent may be AnyStorage/RootObject to let the device choose.
func (s *Session) SendObjectInfo(wantStorageID, wantParent uint32, info *ObjectInfo) (storageID, parent, handle uint32, err error) {
	var b bytes.Buffer
	if err = Encode(&b, info); err != nil {
		return
	}
	src := NewByteArrayInputStream(b.Bytes())
	params := []uint32{wantStorageID, wantParent}
	resp, rerr := s.RunTransaction(OC_SendObjectInfo, params, src, false, nil)
	if rerr != nil {
		err = rerr
		return
	}
	if len(resp) < 3 {
		err = &MalformedPayloadError{Where: "SendObjectInfo", Detail: "fewer than 3 response parameters"}
		return
	}
	return resp[0], resp[1], resp[2], nil
}

// CreateDirectory is SendObjectInfo specialized to a folder: it fills in
// an Association ObjectInfo for name under parent and lets the device
// assign storage/handle. wantStorageID may be AnyStorage.
func (s *Session) CreateDirectory(name string, wantStorageID, parent uint32) (handle uint32, err error) {
	info := &ObjectInfo{
		ObjectFormat:    OFC_Association,
		AssociationType: AT_GenericFolder,
		ParentObject:    parent,
		Filename:        name,
	}
	_, _, handle, err = s.SendObjectInfo(wantStorageID, parent, info)
	return handle, err
}

// SendObject streams size bytes from r as the payload of the transaction
// most recently announced by SendObjectInfo (§4.7 "SendObject(source)").
// size < 0 selects unknown-length framing.
func (s *Session) SendObject(r io.Reader, size int64) error {
	if size < 0 {
		return s.sendObjectStream(&readerInputStream{r: r}, true)
	}
	return s.sendObjectStream(&sizedReaderInputStream{r: r, size: uint64(size)}, false)
}

// sendObjectStream is SendObject's InputStream-native form, used
// directly by transfer.go's file-based helpers so a stream that already
// implements progress/cancellation isn't wrapped a second time.
func (s *Session) sendObjectStream(src InputStream, unknownLength bool) error {
	_, err := s.RunTransaction(OC_SendObject, nil, src, unknownLength, nil)
	return err
}

// GetObject streams handle's contents into w (§4.7 "GetObject(id, sink)").
func (s *Session) GetObject(handle uint32, w io.Writer) error {
	_, err := s.RunTransaction(OC_GetObject, []uint32{handle}, nil, false, &writerOutputStream{w: w})
	return err
}

// readerInputStream adapts an io.Reader with no known size to
// InputStream, used by SendObject's unknown-length path.
type readerInputStream struct {
	r      io.Reader
	cancel *CancelToken
}

func (s *readerInputStream) Size() uint64 { return 0 }

func (s *readerInputStream) Read(buf []byte) (int, error) {
	n, err := s.r.Read(buf)
	if err == io.EOF {
		err = nil
	}
	return n, err
}

// sizedReaderInputStream adapts an io.Reader with a known length, used
// by SendObject whenever the caller can report size up front (the
// common case: a regular file or an in-memory buffer).
type sizedReaderInputStream struct {
	r    io.Reader
	size uint64
}

func (s *sizedReaderInputStream) Size() uint64 { return s.size }

func (s *sizedReaderInputStream) Read(buf []byte) (int, error) {
	n, err := s.r.Read(buf)
	if err == io.EOF {
		err = nil
	}
	return n, err
}

// writerOutputStream adapts a plain io.Writer to OutputStream for
// callers of GetObject that don't need progress/cancellation/total.
type writerOutputStream struct {
	w io.Writer
}

func (s *writerOutputStream) Write(buf []byte) (int, error) { return s.w.Write(buf) }
