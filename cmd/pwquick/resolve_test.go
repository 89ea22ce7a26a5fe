package main

import (
	"errors"
	"testing"

	"pwquick/internal/audiograph"
	"pwquick/internal/pwdump"
	"pwquick/internal/services"
)

func fixtureSnapshot(t *testing.T) *audiograph.Snapshot {
	t.Helper()
	dump, err := pwdump.Decode([]byte(fixtureDump))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return audiograph.Build(dump)
}

func TestResolveSink(t *testing.T) {
	snap := fixtureSnapshot(t)

	tests := []struct {
		arg  string
		want int
	}{
		{"default", 50},
		{"DEFAULT", 50},
		{"51", 51},
		{"bluez_output.headset", 51},
		{"built-in audio analog stereo", 50},
		{"WH-1000", 51},
		{"analog", 50},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			sink, err := resolveSink(snap, tt.arg)
			if err != nil {
				t.Fatalf("resolveSink(%q): %v", tt.arg, err)
			}
			if sink.ID != tt.want {
				t.Fatalf("resolveSink(%q) = %d, want %d", tt.arg, sink.ID, tt.want)
			}
		})
	}
}

func TestResolveSinkErrors(t *testing.T) {
	snap := fixtureSnapshot(t)

	if _, err := resolveSink(snap, " "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank arg, got %v", err)
	}
	if _, err := resolveSink(snap, "60"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("source node must not resolve as a sink, got %v", err)
	}

	empty := audiograph.Build(pwdump.Dump{})
	if _, err := resolveSink(empty, "default"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found without default, got %v", err)
	}
	if _, err := resolveSink(empty, "anything"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found on empty graph, got %v", err)
	}
}

func TestResolveProfile(t *testing.T) {
	snap := fixtureSnapshot(t)
	profiles, _ := snap.ProfilesFor(50)

	tests := []struct {
		arg  string
		want int
	}{
		{"0", 0},
		{"3", 3},
		{"output:analog-stereo", 1},
		{"analog stereo output", 1},
	}
	for _, tt := range tests {
		profile, err := resolveProfile(profiles, tt.arg)
		if err != nil {
			t.Fatalf("resolveProfile(%q): %v", tt.arg, err)
		}
		if profile.Index != tt.want {
			t.Fatalf("resolveProfile(%q) = %d, want %d", tt.arg, profile.Index, tt.want)
		}
	}

	if _, err := resolveProfile(profiles, "2"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for unenumerated index, got %v", err)
	}
	if _, err := resolveProfile(profiles, "surround"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for unknown name, got %v", err)
	}
	if _, err := resolveProfile(nil, ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank profile, got %v", err)
	}
}
