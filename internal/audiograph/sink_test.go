package audiograph_test

import (
	"math"
	"testing"

	"pwquick/internal/audiograph"
	"pwquick/internal/pwdump"
)

func sinkNode(id any, props map[string]any, params map[string]any) map[string]any {
	obj := map[string]any{
		"type": "PipeWire:Interface:Node",
		"info": map[string]any{"props": props, "params": params},
	}
	if id != nil {
		obj["id"] = id
	}
	return obj
}

func TestExtractSinksFiltersAudioOutputs(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(1, map[string]any{"media.class": "Audio/Sink", "node.name": "a"}, nil),
		sinkNode(2, map[string]any{"media.class": "Audio/Source", "node.name": "mic"}, nil),
		sinkNode(3, map[string]any{"media.class": "Audio/Sink/Virtual", "node.name": "v"}, nil),
		sinkNode(nil, map[string]any{"media.class": "Audio/Sink", "node.name": "no-id"}, nil),
		sinkNode("bogus", map[string]any{"media.class": "Audio/Sink"}, nil),
		sinkNode(4, map[string]any{"node.name": "classless"}, nil),
		map[string]any{"id": 5, "type": "PipeWire:Interface:Device", "info": map[string]any{"props": map[string]any{"media.class": "Audio/Sink"}}},
		"not-an-object",
	)

	sinks := audiograph.ExtractSinks(dump)
	if len(sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d: %+v", len(sinks), sinks)
	}
	if sinks[0].ID != 1 || sinks[1].ID != 3 {
		t.Fatalf("unexpected sink order: %d, %d", sinks[0].ID, sinks[1].ID)
	}
}

func TestExtractSinksDescriptionFallbacks(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(1, map[string]any{"media.class": "Audio/Sink", "node.name": "n1", "node.description": "Speakers"}, nil),
		sinkNode(2, map[string]any{"media.class": "Audio/Sink", "node.name": "n2", "node.description": ""}, nil),
		sinkNode(3, map[string]any{"media.class": "Audio/Sink"}, nil),
	)
	sinks := audiograph.ExtractSinks(dump)
	want := []string{"Speakers", "n2", "Sink 3"}
	for i, desc := range want {
		if sinks[i].Description != desc {
			t.Fatalf("sink %d description = %q, want %q", i, sinks[i].Description, desc)
		}
	}
	if sinks[2].HasName() {
		t.Fatal("expected sink without node.name to report no name")
	}
}

func TestExtractSinksDeviceIDCoercion(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(1, map[string]any{"media.class": "Audio/Sink", "device.id": 10}, nil),
		sinkNode(2, map[string]any{"media.class": "Audio/Sink", "device.id": "11"}, nil),
		sinkNode(3, map[string]any{"media.class": "Audio/Sink", "device.id": "card"}, nil),
		sinkNode(4, map[string]any{"media.class": "Audio/Sink"}, nil),
	)
	sinks := audiograph.ExtractSinks(dump)
	if got := intPtrValue(t, sinks[0].DeviceID); got != 10 {
		t.Fatalf("unexpected device id %d", got)
	}
	if got := intPtrValue(t, sinks[1].DeviceID); got != 11 {
		t.Fatalf("unexpected device id %d", got)
	}
	if sinks[2].DeviceID != nil || sinks[3].DeviceID != nil {
		t.Fatal("expected unparseable and missing device ids to be absent")
	}
}

func TestVolumeAggregation(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   *float64
	}{
		{
			name:   "channel mean",
			params: map[string]any{"Props": []any{map[string]any{"volume": 1.0, "channelVolumes": []any{0.5, 0.7, 0.9}}}},
			want:   ptr(0.7),
		},
		{
			name:   "scalar fallback",
			params: map[string]any{"Props": []any{map[string]any{"volume": 0.8}}},
			want:   ptr(0.8),
		},
		{
			name:   "empty channel vector uses scalar",
			params: map[string]any{"Props": []any{map[string]any{"volume": 0.4, "channelVolumes": []any{}}}},
			want:   ptr(0.4),
		},
		{
			name:   "non-numeric channels skipped",
			params: map[string]any{"Props": []any{map[string]any{"volume": 0.4, "channelVolumes": []any{0.2, "loud", nil, 0.6}}}},
			want:   ptr(0.4),
		},
		{
			name:   "first entry with volume wins",
			params: map[string]any{"Props": []any{map[string]any{"mute": true}, map[string]any{"volume": 0.3}, map[string]any{"volume": 0.9}}},
			want:   ptr(0.3),
		},
		{
			name:   "channel vector without scalar",
			params: map[string]any{"Props": []any{map[string]any{"channelVolumes": []any{0.5}}}},
			want:   ptr(0.5),
		},
		{
			name:   "no volume entry",
			params: map[string]any{"Props": []any{map[string]any{"mute": false}}},
			want:   nil,
		},
		{
			name:   "no props",
			params: nil,
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dump := pwdump.FromObjects(sinkNode(1, map[string]any{"media.class": "Audio/Sink"}, tc.params))
			sinks := audiograph.ExtractSinks(dump)
			if len(sinks) != 1 {
				t.Fatalf("expected one sink, got %d", len(sinks))
			}
			got := sinks[0].Volume
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("expected absent volume, got %v", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("expected volume %v, got absent", *tc.want)
			case tc.want != nil && math.Abs(*got-*tc.want) > 1e-9:
				t.Fatalf("volume = %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestMuteIsVerbatimAndCoercedOnRequest(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(1, map[string]any{"media.class": "Audio/Sink"}, map[string]any{"Props": []any{map[string]any{"volume": 1.0, "mute": true}}}),
		sinkNode(2, map[string]any{"media.class": "Audio/Sink"}, map[string]any{"Props": []any{map[string]any{"volume": 1.0, "mute": 1}}}),
		sinkNode(3, map[string]any{"media.class": "Audio/Sink"}, map[string]any{"Props": []any{map[string]any{"volume": 1.0}}}),
		sinkNode(4, map[string]any{"media.class": "Audio/Sink"}, nil),
	)
	sinks := audiograph.ExtractSinks(dump)

	if sinks[0].Mute == nil || !*sinks[0].Mute {
		t.Fatal("expected boolean mute to be kept")
	}
	if sinks[1].Mute != nil {
		t.Fatal("expected numeric mute not to be inferred")
	}
	if muted, ok := sinks[1].CoerceMute(); !ok || !muted {
		t.Fatalf("expected explicit coercion to yield muted, got %v %v", muted, ok)
	}
	if sinks[2].Mute != nil {
		t.Fatal("expected missing mute to be unknown")
	}
	if _, ok := sinks[2].CoerceMute(); ok {
		t.Fatal("expected coercion of missing mute to report unknown")
	}
	if sinks[3].Volume != nil || sinks[3].Mute != nil {
		t.Fatal("expected sink without Props to have unknown volume and mute")
	}
}

func TestVolumePercentAndLinear(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(1, map[string]any{"media.class": "Audio/Sink"}, map[string]any{"Props": []any{map[string]any{"volume": 0.9, "channelVolumes": []any{0.42, 0.42}}}}),
	)
	sink := audiograph.ExtractSinks(dump)[0]
	if pct, ok := sink.VolumePercent(); !ok || pct != 42 {
		t.Fatalf("unexpected percent %d %v", pct, ok)
	}
	if sink.VolumeLinear == nil || *sink.VolumeLinear != 0.9 {
		t.Fatalf("expected raw scalar to be preserved, got %v", sink.VolumeLinear)
	}
	if sink.State != "unknown" {
		t.Fatalf("expected unknown state, got %q", sink.State)
	}
}

func TestExtractSinksReturnsOnePerResolvableNode(t *testing.T) {
	var items []any
	for i := 0; i < 25; i++ {
		items = append(items, sinkNode(100+i, map[string]any{"media.class": "Audio/Sink"}, nil))
		items = append(items, sinkNode(nil, map[string]any{"media.class": "Audio/Sink"}, nil))
	}
	sinks := audiograph.ExtractSinks(pwdump.FromObjects(items...))
	if len(sinks) != 25 {
		t.Fatalf("expected 25 sinks, got %d", len(sinks))
	}
	seen := make(map[int]bool)
	for i, sink := range sinks {
		if sink.ID != 100+i {
			t.Fatalf("sink %d id = %d", i, sink.ID)
		}
		if seen[sink.ID] {
			t.Fatalf("duplicate id %d", sink.ID)
		}
		seen[sink.ID] = true
	}
}

func ptr(f float64) *float64 { return &f }
