package audiograph

import (
	"fmt"
	"strings"

	"pwquick/internal/pwdump"
)

// SinkClassPrefix is the media.class prefix shared by every audio output node.
// Variants such as "Audio/Sink/Virtual" match as well.
const SinkClassPrefix = "Audio/Sink"

// Sink is a software-visible audio output endpoint.
type Sink struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description"`
	Nick        string `json:"nick,omitempty"`
	State       string `json:"state"`
	// DeviceID references the owning card; nil for software-only sinks.
	DeviceID *int `json:"device_id"`
	// Volume is the aggregated volume, nominally in [0, 1.5].
	Volume *float64 `json:"volume"`
	// VolumeLinear is the raw scalar volume of the Props entry, kept for display.
	VolumeLinear *float64 `json:"volume_linear,omitempty"`
	// Mute is set only when the source reports a boolean.
	Mute *bool `json:"mute"`

	muteRaw any
}

// HasName reports whether the sink carries a node.name.
func (s Sink) HasName() bool {
	return s.Name != ""
}

// VolumePercent returns the volume scaled the way wpctl and the GUI display it.
func (s Sink) VolumePercent() (int, bool) {
	if s.Volume == nil {
		return 0, false
	}
	return int(*s.Volume*100 + 0.5), true
}

// CoerceMute returns the mute flag, coercing non-boolean source values by
// truthiness. The second result is false when no mute value was reported.
func (s Sink) CoerceMute() (bool, bool) {
	if s.Mute != nil {
		return *s.Mute, true
	}
	switch raw := s.muteRaw.(type) {
	case nil:
		return false, false
	case string:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "0", "false", "no", "off":
			return false, true
		default:
			return true, true
		}
	default:
		if f, ok := pwdump.AsFloat(raw); ok {
			return f != 0, true
		}
		return true, true
	}
}

// ExtractSinks returns one Sink per audio output node in dump order. Nodes
// without a resolvable integer id are dropped; other gaps become unknown fields.
func ExtractSinks(dump pwdump.Dump) []Sink {
	var sinks []Sink
	for _, obj := range dump {
		if obj.Kind() != pwdump.KindNode {
			continue
		}
		if !isSinkNode(obj) {
			continue
		}
		sink, ok := sinkFromNode(obj)
		if !ok {
			continue
		}
		sinks = append(sinks, sink)
	}
	return sinks
}

func isSinkNode(obj pwdump.Object) bool {
	class, ok := obj.Prop("media.class").String()
	return ok && strings.HasPrefix(class, SinkClassPrefix)
}

func sinkFromNode(obj pwdump.Object) (Sink, bool) {
	id, ok := obj.ID()
	if !ok {
		return Sink{}, false
	}
	props := obj.Props()

	sink := Sink{
		ID:    id,
		State: obj.State(),
	}
	sink.Name, _ = props.Get("node.name").String()
	sink.Nick, _ = props.Get("node.nick").String()
	sink.Description = sinkDescription(props, id)
	if deviceID, ok := props.Get("device.id").Int(); ok {
		sink.DeviceID = &deviceID
	}

	entry, ok := volumeEntry(obj)
	if !ok {
		return sink, true
	}
	if volume, ok := aggregateVolume(entry); ok {
		sink.Volume = &volume
	}
	if linear, ok := entry.Get("volume").Float(); ok {
		sink.VolumeLinear = &linear
	}
	mute := entry.Get("mute")
	if b, ok := mute.Bool(); ok {
		sink.Mute = &b
	}
	sink.muteRaw = mute.Raw()
	return sink, true
}

func sinkDescription(props pwdump.Value, id int) string {
	if desc := props.Get("node.description").StringOr(""); desc != "" {
		return desc
	}
	if name := props.Get("node.name").StringOr(""); name != "" {
		return name
	}
	return fmt.Sprintf("Sink %d", id)
}

// volumeEntry finds the first Props parameter entry exposing a volume field,
// either the scalar or the per-channel vector.
func volumeEntry(obj pwdump.Object) (pwdump.Value, bool) {
	for _, entry := range obj.Params("Props") {
		if entry.IsObject() && (entry.Has("volume") || entry.Has("channelVolumes")) {
			return entry, true
		}
	}
	return pwdump.Value{}, false
}

// aggregateVolume averages the numeric channelVolumes entries, falling back
// to the scalar volume when the vector is missing, empty or non-numeric.
func aggregateVolume(entry pwdump.Value) (float64, bool) {
	var sum float64
	var count int
	for _, ch := range entry.Get("channelVolumes").List() {
		if f, ok := ch.Float(); ok {
			sum += f
			count++
		}
	}
	if count > 0 {
		return sum / float64(count), true
	}
	return entry.Get("volume").Float()
}
