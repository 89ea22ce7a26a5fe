package audiograph_test

import (
	"testing"

	"pwquick/internal/pwdump"
)

func decodeDump(t *testing.T, raw string) pwdump.Dump {
	t.Helper()
	dump, err := pwdump.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return dump
}

func intPtrValue(t *testing.T, p *int) int {
	t.Helper()
	if p == nil {
		t.Fatal("expected value, got nil")
	}
	return *p
}

// endToEndDump has one sink on card 10, a default pointer naming it, and a
// card whose active profile is index 3.
const endToEndDump = `[
  {"id": 10, "type": "PipeWire:Interface:Device",
   "info": {"props": {"device.name": "alsa_card.pci", "device.description": "Built-in Audio", "media.class": "Audio/Device"},
            "params": {
              "EnumProfile": [{"index": 0, "name": "off", "available": "yes"}, {"index": 3, "name": "hdmi", "available": "yes"}],
              "Profile": [{"index": 3, "name": "hdmi"}]}}},
  {"id": 50, "type": "PipeWire:Interface:Node",
   "info": {"state": "idle",
            "props": {"media.class": "Audio/Sink", "node.name": "alsa_output.pci", "device.id": 10},
            "params": {"Props": [{"channelVolumes": [1.0, 1.0]}]}}},
  {"id": 31, "type": "PipeWire:Interface:Metadata", "props": {"metadata.name": "default"},
   "metadata": [{"subject": 0, "key": "default.audio.sink", "type": "Spa:String:JSON", "value": {"name": "alsa_output.pci"}}]}
]`
