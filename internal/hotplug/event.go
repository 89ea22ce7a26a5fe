package hotplug

import (
	"strings"
	"time"

	"github.com/pilebones/go-udev/netlink"
)

// Event summarizes a sound subsystem uevent.
type Event struct {
	Action    string
	Subsystem string
	DevPath   string
	DevName   string
	At        time.Time
	// Coalesced counts the uevents folded into this one by the debouncer.
	Coalesced int
}

// Device returns the kernel name of the device, e.g. "card1" or "controlC1".
func (e Event) Device() string {
	if e.DevName != "" {
		return e.DevName[strings.LastIndex(e.DevName, "/")+1:]
	}
	if e.DevPath == "" {
		return ""
	}
	return e.DevPath[strings.LastIndex(e.DevPath, "/")+1:]
}

func eventFromUEvent(uevent netlink.UEvent, now time.Time) Event {
	subsystem := uevent.Env["SUBSYSTEM"]
	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		devpath = uevent.KObj
	}
	return Event{
		Action:    string(uevent.Action),
		Subsystem: subsystem,
		DevPath:   devpath,
		DevName:   uevent.Env["DEVNAME"],
		At:        now,
		Coalesced: 1,
	}
}
