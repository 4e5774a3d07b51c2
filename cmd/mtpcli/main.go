// Command mtpcli is a smoke-test client for the session layer: it
// opens the only attached (or the only matching) MTP device, prints its
// DeviceInfo and storage list, optionally prints events for a while,
// and exits. It is deliberately not an
// interactive shell or a filesystem mount — see SPEC_FULL.md's
// Non-goals.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kvothe-labs/gomtp/mtp"
	"github.com/kvothe-labs/gomtp/mtplog"
	"github.com/kvothe-labs/gomtp/usbtransport"
)

func main() {
	mtpDebug := flag.Bool("mtp-debug", false, "log session/packet traffic")
	timeout := flag.Duration("timeout", 5*time.Second, "USB transfer timeout")
	pattern := flag.String("device", "", "plain substring of vendor/product id, manufacturer, product or serial to pick a device when more than one is attached")
	watchEvents := flag.Duration("watch-events", 0, "after listing storages, print interrupt-endpoint events for this long before exiting (0 disables)")
	flag.Parse()

	mtplog.Root.Level = logrus.InfoLevel
	if *mtpDebug {
		mtplog.Root.Level = logrus.DebugLevel
	}
	children := mtplog.PrepareChildren(mtplog.Root, *mtpDebug, *mtpDebug, *mtpDebug, *mtpDebug)

	transport, err := usbtransport.Open(*pattern)
	if err != nil {
		log.Fatalf("usbtransport.Open: %v", err)
	}
	defer transport.Close()

	session := mtp.NewSession(transport, mtp.Config{Timeout: *timeout}, children)
	if err := session.Open(0); err != nil {
		log.Fatalf("Session.Open: %v", err)
	}
	defer session.Close()

	info := session.DeviceInfo()
	fmt.Println(info.String())

	ids, err := session.GetStorageIDs()
	if err != nil {
		log.Fatalf("GetStorageIDs: %v", err)
	}
	for _, id := range ids.Values {
		si, err := session.GetStorageInfo(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "storage %#x: %v\n", id, err)
			continue
		}
		fmt.Printf("storage %#x: %s (%s), %d/%d bytes free\n",
			id, si.StorageDescription, si.VolumeLabel, si.FreeSpaceInBytes, si.MaxCapability)
	}

	if *watchEvents > 0 {
		watchForEvents(transport, *timeout, *watchEvents)
	}
}

// watchForEvents starts an EventListener over transport and prints every
// decoded Event until duration elapses. The core session never touches
// the interrupt endpoint itself (spec.md §5); this is the caller's
// opt-in background listener.
func watchForEvents(transport *usbtransport.GousbTransport, timeout, duration time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	listener := usbtransport.NewEventListener(ctx, transport, timeout)
	go func() {
		if err := listener.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "event listener: %v\n", err)
		}
	}()

	for ev := range listener.Events() {
		fmt.Printf("event code=0x%x (%s) param=%v\n", ev.Code, mtp.EC_names[int(ev.Code)], ev.Param)
	}
}
