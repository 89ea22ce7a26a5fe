package audiograph

import "pwquick/internal/pwdump"

const (
	defaultMetadataName = "default"
	defaultSinkKey      = "default.audio.sink"
)

// ResolveDefaultSinkName returns the node name the "default" metadata object
// points at for audio output. The value may be a bare string or an object
// carrying a name member; anything else counts as absent.
func ResolveDefaultSinkName(dump pwdump.Dump) (string, bool) {
	for _, obj := range dump.OfKind(pwdump.KindMetadata) {
		if name, _ := obj.Prop("metadata.name").String(); name != defaultMetadataName {
			continue
		}
		for _, entry := range obj.MetadataEntries() {
			if entry.Key != defaultSinkKey {
				continue
			}
			return defaultNameFromValue(entry.Value)
		}
	}
	return "", false
}

func defaultNameFromValue(v pwdump.Value) (string, bool) {
	if s, ok := v.String(); ok {
		return s, s != ""
	}
	if name, ok := v.Get("name").String(); ok && name != "" {
		return name, true
	}
	return "", false
}

// matchSinkByName returns the id of the first sink whose name equals name.
// Known limitation: duplicate node names are not disambiguated, so only the
// first sink in extraction order can ever be reported as default.
func matchSinkByName(sinks []Sink, name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for _, sink := range sinks {
		if sink.Name == name {
			return sink.ID, true
		}
	}
	return 0, false
}
