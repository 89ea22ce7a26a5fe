package audiograph

import "pwquick/internal/pwdump"

// Snapshot is an immutable view of one dump: its sinks, the resolved default
// sink, and on-demand card and profile lookups against the same dump.
//
// Snapshots are never refreshed in place. Mutations issued from a snapshot act
// on live ids without revalidation, so a snapshot can go stale the moment it is
// built; callers re-acquire a dump and build a new snapshot per query.
type Snapshot struct {
	dump          pwdump.Dump
	sinks         []Sink
	sinkIndex     map[int]int
	defaultName   string
	defaultSinkID *int
}

// Build extracts sinks and resolves the default sink. It never fails; malformed
// elements are absorbed by the extractors. Sinks sharing an id keep only the
// first occurrence.
func Build(dump pwdump.Dump) *Snapshot {
	extracted := ExtractSinks(dump)
	snap := &Snapshot{
		dump:      dump,
		sinks:     make([]Sink, 0, len(extracted)),
		sinkIndex: make(map[int]int, len(extracted)),
	}
	for _, sink := range extracted {
		if _, dup := snap.sinkIndex[sink.ID]; dup {
			continue
		}
		snap.sinkIndex[sink.ID] = len(snap.sinks)
		snap.sinks = append(snap.sinks, sink)
	}

	if name, ok := ResolveDefaultSinkName(dump); ok {
		snap.defaultName = name
		if id, ok := matchSinkByName(snap.sinks, name); ok {
			snap.defaultSinkID = &id
		}
	}
	return snap
}

// Dump returns the dump the snapshot was built from.
func (s *Snapshot) Dump() pwdump.Dump {
	return s.dump
}

// Sinks returns the sinks in extraction order.
func (s *Snapshot) Sinks() []Sink {
	out := make([]Sink, len(s.sinks))
	copy(out, s.sinks)
	return out
}

// Sink looks a sink up by id.
func (s *Snapshot) Sink(id int) (Sink, bool) {
	pos, ok := s.sinkIndex[id]
	if !ok {
		return Sink{}, false
	}
	return s.sinks[pos], true
}

// DefaultSinkID returns the id of the sink named by the default metadata.
func (s *Snapshot) DefaultSinkID() (int, bool) {
	if s.defaultSinkID == nil {
		return 0, false
	}
	return *s.defaultSinkID, true
}

// DefaultSinkName returns the raw name the default metadata points at, even
// when no extracted sink carries it.
func (s *Snapshot) DefaultSinkName() (string, bool) {
	return s.defaultName, s.defaultName != ""
}

// IsDefault reports whether id is the resolved default sink.
func (s *Snapshot) IsDefault(id int) bool {
	def, ok := s.DefaultSinkID()
	return ok && def == id
}

// InitialSelection returns the sink an interactive front end should start on:
// the default sink, else the first sink, else nothing.
func (s *Snapshot) InitialSelection() (int, bool) {
	if id, ok := s.DefaultSinkID(); ok {
		return id, true
	}
	if len(s.sinks) > 0 {
		return s.sinks[0].ID, true
	}
	return 0, false
}

// CardFor resolves the card owning the given sink.
func (s *Snapshot) CardFor(sinkID int) (Card, bool) {
	sink, ok := s.Sink(sinkID)
	if !ok || sink.DeviceID == nil {
		return Card{}, false
	}
	return FindCard(s.dump, *sink.DeviceID)
}

// ProfilesFor returns the selectable profiles of the sink's card and the index
// of the active one. Unknown sinks, sinks without a device and missing cards
// all yield no profiles and a nil index.
func (s *Snapshot) ProfilesFor(sinkID int) ([]Profile, *int) {
	card, ok := s.CardFor(sinkID)
	if !ok {
		return nil, nil
	}
	profiles := ListProfiles(card)
	var active *int
	if profile, ok := ActiveProfile(card); ok {
		index := profile.Index
		active = &index
	}
	return profiles, active
}

// Cards returns every audio card in the dump.
func (s *Snapshot) Cards() []Card {
	return ExtractCards(s.dump)
}

// Clients returns every client in the dump.
func (s *Snapshot) Clients() []Client {
	return ExtractClients(s.dump)
}
