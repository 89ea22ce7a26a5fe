package audiograph_test

import (
	"testing"

	"pwquick/internal/audiograph"
	"pwquick/internal/pwdump"
)

func defaultMetadata(name string, entries ...any) map[string]any {
	return map[string]any{
		"id":       31,
		"type":     "PipeWire:Interface:Metadata",
		"props":    map[string]any{"metadata.name": name},
		"metadata": entries,
	}
}

func metadataEntry(key string, value any) map[string]any {
	return map[string]any{"subject": 0, "key": key, "type": "Spa:String:JSON", "value": value}
}

func TestResolveDefaultSinkName(t *testing.T) {
	tests := []struct {
		name   string
		dump   pwdump.Dump
		want   string
		wantOK bool
	}{
		{
			name:   "object value",
			dump:   pwdump.FromObjects(defaultMetadata("default", metadataEntry("default.audio.sink", map[string]any{"name": "alsa_output.foo"}))),
			want:   "alsa_output.foo",
			wantOK: true,
		},
		{
			name:   "string value",
			dump:   pwdump.FromObjects(defaultMetadata("default", metadataEntry("default.audio.sink", "alsa_output.bar"))),
			want:   "alsa_output.bar",
			wantOK: true,
		},
		{
			name: "skips unrelated keys",
			dump: pwdump.FromObjects(defaultMetadata("default",
				metadataEntry("default.audio.source", map[string]any{"name": "mic"}),
				metadataEntry("default.configured.audio.sink", map[string]any{"name": "other"}),
				metadataEntry("default.audio.sink", map[string]any{"name": "speaker"}),
			)),
			want:   "speaker",
			wantOK: true,
		},
		{
			name: "ignores other metadata objects",
			dump: pwdump.FromObjects(defaultMetadata("settings", metadataEntry("default.audio.sink", "nope"))),
		},
		{
			name: "missing name member",
			dump: pwdump.FromObjects(defaultMetadata("default", metadataEntry("default.audio.sink", map[string]any{"id": 4}))),
		},
		{
			name: "numeric value",
			dump: pwdump.FromObjects(defaultMetadata("default", metadataEntry("default.audio.sink", 4))),
		},
		{
			name: "no metadata",
			dump: pwdump.FromObjects(map[string]any{"id": 1, "type": "PipeWire:Interface:Core"}),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := audiograph.ResolveDefaultSinkName(tc.dump)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("ResolveDefaultSinkName = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestSnapshotDefaultMatchesByName(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(40, map[string]any{"media.class": "Audio/Sink", "node.name": "alsa_output.hdmi"}, nil),
		sinkNode(41, map[string]any{"media.class": "Audio/Sink", "node.name": "alsa_output.foo"}, nil),
		defaultMetadata("default", metadataEntry("default.audio.sink", map[string]any{"name": "alsa_output.foo"})),
	)
	snap := audiograph.Build(dump)
	id, ok := snap.DefaultSinkID()
	if !ok || id != 41 {
		t.Fatalf("expected default sink 41, got %d %v", id, ok)
	}
	if !snap.IsDefault(41) || snap.IsDefault(40) {
		t.Fatal("IsDefault disagrees with DefaultSinkID")
	}
}

func TestSnapshotDefaultWithoutMatchingSink(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(40, map[string]any{"media.class": "Audio/Sink", "node.name": "alsa_output.hdmi"}, nil),
		defaultMetadata("default", metadataEntry("default.audio.sink", "bluez_output.gone")),
	)
	snap := audiograph.Build(dump)
	if _, ok := snap.DefaultSinkID(); ok {
		t.Fatal("expected no default sink id for unmatched name")
	}
	if name, ok := snap.DefaultSinkName(); !ok || name != "bluez_output.gone" {
		t.Fatalf("expected raw default name to be kept, got %q %v", name, ok)
	}
}

func TestSnapshotDuplicateNamesFirstWins(t *testing.T) {
	dump := pwdump.FromObjects(
		sinkNode(7, map[string]any{"media.class": "Audio/Sink", "node.name": "twin"}, nil),
		sinkNode(8, map[string]any{"media.class": "Audio/Sink", "node.name": "twin"}, nil),
		defaultMetadata("default", metadataEntry("default.audio.sink", "twin")),
	)
	id, ok := audiograph.Build(dump).DefaultSinkID()
	if !ok || id != 7 {
		t.Fatalf("expected first sink to win, got %d %v", id, ok)
	}
}
