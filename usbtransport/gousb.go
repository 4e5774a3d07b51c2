// Package usbtransport binds mtp.Transport to real hardware over
// libusb, via gousb. It is the only package in this module that
// imports a USB library directly; the core (package mtp) never does,
// per its external-collaborator boundary.
package usbtransport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/gousb"

	"github.com/kvothe-labs/gomtp/mtp"
)

// GousbTransport implements mtp.Transport over a claimed gousb
// interface with the three endpoints an MTP responder exposes: bulk
// send, bulk fetch, and an interrupt event channel. Adapted from the
// teacher's DeviceGoUSB (mtp/device_gousb.go): same endpoint roles,
// same Configuration/Interface claim sequence, generalized to the
// Transport contract instead of mtp.Device's own transaction loop.
type GousbTransport struct {
	ctx *gousb.Context
	dev *gousb.Device

	config gousb.Config
	iface  gousb.Interface

	sendEP  *gousb.OutEndpoint
	fetchEP *gousb.InEndpoint
	eventEP *gousb.InEndpoint
}

// candidate is one (config, interface, alt-setting) triple that looks
// like an MTP responder: exactly the three endpoints FindDevices checks
// for in the teacher's mtp/select.go, generalized from hanwen/usb's
// descriptor walk to gousb's.
type candidate struct {
	configNum int
	ifaceNum  int
	altNum    int
	send      gousb.EndpointDesc
	fetch     gousb.EndpointDesc
	event     gousb.EndpointDesc
}

func findCandidate(desc *gousb.DeviceDesc) (candidate, bool) {
	for _, cfg := range desc.Configs {
		for _, iface := range cfg.Interfaces {
			for _, alt := range iface.AltSettings {
				if len(alt.Endpoints) != 3 {
					continue
				}
				var c candidate
				var hasSend, hasFetch, hasEvent bool
				for _, ep := range alt.Endpoints {
					switch {
					case ep.Direction == gousb.EndpointDirectionOut && ep.TransferType == gousb.TransferTypeBulk:
						c.send, hasSend = ep, true
					case ep.Direction == gousb.EndpointDirectionIn && ep.TransferType == gousb.TransferTypeBulk:
						c.fetch, hasFetch = ep, true
					case ep.Direction == gousb.EndpointDirectionIn && ep.TransferType == gousb.TransferTypeInterrupt:
						c.event, hasEvent = ep, true
					}
				}
				if hasSend && hasFetch && hasEvent {
					c.configNum = cfg.Number
					c.ifaceNum = alt.Number
					c.altNum = alt.Alternate
					return c, true
				}
			}
		}
	}
	return candidate{}, false
}

// isMTPDesc reports whether desc has an interface alt-setting with the
// three-endpoint MTP shape (see findCandidate). The interface class is
// not checked, so still-image/PTP and vendor-specific interfaces are
// treated alike.
func isMTPDesc(desc *gousb.DeviceDesc) bool {
	_, ok := findCandidate(desc)
	return ok
}

// Open scans every attached USB device for one with an MTP-shaped
// interface (three endpoints: bulk-out, bulk-in, interrupt-in) and
// claims it, optionally restricted to devices whose serial number,
// vendor, or product string matches pattern (empty matches any single
// candidate; more than one match is an error, mirroring the teacher's
// selectDevice's ambiguity check).
func Open(pattern string) (*GousbTransport, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return isMTPDesc(desc)
	})
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("usbtransport: enumerating devices: %w", err)
	}
	if len(devs) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("usbtransport: no MTP devices found")
	}

	matched := devs[:0]
	for _, d := range devs {
		if pattern == "" || matchesPattern(d, pattern) {
			matched = append(matched, d)
		} else {
			d.Close()
		}
	}
	if len(matched) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("usbtransport: no device matched %q", pattern)
	}
	if len(matched) > 1 {
		for _, d := range matched {
			d.Close()
		}
		ctx.Close()
		return nil, fmt.Errorf("usbtransport: %d devices matched %q, ambiguous", len(matched), pattern)
	}

	dev := matched[0]
	t, err := claim(ctx, dev)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}
	return t, nil
}

func matchesPattern(d *gousb.Device, pattern string) bool {
	serial, _ := d.SerialNumber()
	manu, _ := d.Manufacturer()
	product, _ := d.Product()
	id := fmt.Sprintf("%s %s %s %s", d.Desc.Vendor, d.Desc.Product, manu, product)
	return strings.Contains(id, pattern) || strings.Contains(serial, pattern)
}

func claim(ctx *gousb.Context, dev *gousb.Device) (*GousbTransport, error) {
	cand, ok := findCandidate(dev.Desc)
	if !ok {
		return nil, fmt.Errorf("usbtransport: device lost its MTP interface between scan and claim")
	}

	cfg, err := dev.Config(cand.configNum)
	if err != nil {
		return nil, fmt.Errorf("usbtransport: claiming config %d: %w", cand.configNum, err)
	}
	iface, err := cfg.Interface(cand.ifaceNum, cand.altNum)
	if err != nil {
		cfg.Close()
		return nil, fmt.Errorf("usbtransport: claiming interface %d alt %d: %w", cand.ifaceNum, cand.altNum, err)
	}

	sendEP, err := iface.OutEndpoint(cand.send.Number)
	if err != nil {
		iface.Close()
		cfg.Close()
		return nil, fmt.Errorf("usbtransport: opening send endpoint: %w", err)
	}
	fetchEP, err := iface.InEndpoint(cand.fetch.Number)
	if err != nil {
		iface.Close()
		cfg.Close()
		return nil, fmt.Errorf("usbtransport: opening fetch endpoint: %w", err)
	}
	eventEP, err := iface.InEndpoint(cand.event.Number)
	if err != nil {
		iface.Close()
		cfg.Close()
		return nil, fmt.Errorf("usbtransport: opening event endpoint: %w", err)
	}

	return &GousbTransport{
		ctx:     ctx,
		dev:     dev,
		config:  *cfg,
		iface:   *iface,
		sendEP:  sendEP,
		fetchEP: fetchEP,
		eventEP: eventEP,
	}, nil
}

// WriteBulk writes buf to the bulk-out endpoint, honoring timeout via
// the request's context.
func (t *GousbTransport) WriteBulk(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	n, err := t.sendEP.WriteContext(ctx, buf)
	if err != nil {
		return n, &mtp.TransportError{Kind: classify(err), Err: err}
	}
	return n, nil
}

// ReadBulk reads one packet from the bulk-in endpoint.
func (t *GousbTransport) ReadBulk(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	n, err := t.fetchEP.ReadContext(ctx, buf)
	if err != nil {
		return n, &mtp.TransportError{Kind: classify(err), Err: err}
	}
	return n, nil
}

// ReadInterrupt reads one packet from the interrupt-in (event)
// endpoint.
func (t *GousbTransport) ReadInterrupt(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	n, err := t.eventEP.ReadContext(ctx, buf)
	if err != nil {
		return n, &mtp.TransportError{Kind: classify(err), Err: err}
	}
	return n, nil
}

// MaxPacketSize reports the negotiated wMaxPacketSize of ep.
func (t *GousbTransport) MaxPacketSize(ep mtp.Endpoint) uint32 {
	switch ep {
	case mtp.EndpointBulkOut:
		return uint32(t.sendEP.Desc.MaxPacketSize)
	case mtp.EndpointBulkIn:
		return uint32(t.fetchEP.Desc.MaxPacketSize)
	case mtp.EndpointInterruptIn:
		return uint32(t.eventEP.Desc.MaxPacketSize)
	}
	return 0
}

// Reset performs a bus reset, the teacher's workaround (mtp/select.go's
// "for some reason, always have to reset") generalized into the
// session layer's Stall-recovery path (§7).
func (t *GousbTransport) Reset() error {
	return t.dev.Reset()
}

// Close releases the interface, configuration, device handle, and
// libusb context, in that order.
func (t *GousbTransport) Close() error {
	t.iface.Close()
	t.config.Close()
	if err := t.dev.Close(); err != nil {
		t.ctx.Close()
		return err
	}
	return t.ctx.Close()
}

// classify maps a gousb/libusb error onto the session layer's
// TransportErrorKind; gousb surfaces timeouts and stalls as distinct
// sentinel-wrapped errors which Go's errors.Is/As can match, but a
// plain string match on context.DeadlineExceeded/"stall" keeps this
// backend's only non-interface dependency on gousb's error values
// confined to one place.
func classify(err error) mtp.TransportErrorKind {
	if err == context.DeadlineExceeded {
		return mtp.ErrTimeout
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return mtp.ErrTimeout
	case strings.Contains(msg, "stall"):
		return mtp.ErrStall
	case strings.Contains(msg, "no device") || strings.Contains(msg, "disconnected"):
		return mtp.ErrDisconnected
	default:
		return mtp.ErrIO
	}
}
