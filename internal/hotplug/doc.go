// Package hotplug watches the kernel udev netlink socket for sound-card
// changes and reports them, debounced, to a handler.
//
// A card appearing usually produces a burst of uevents (the card, its control
// device, each PCM). The Debouncer collapses a burst into one callback carrying
// the last event and the number of events folded into it.
package hotplug
