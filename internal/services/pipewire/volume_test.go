package pipewire_test

import (
	"errors"
	"math"
	"testing"

	"pwquick/internal/services"
	"pwquick/internal/services/pipewire"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		input     string
		arg       string
		linear    float64
		direction pipewire.Direction
	}{
		{input: "0.8", arg: "0.8", linear: 0.8, direction: pipewire.Absolute},
		{input: "80%", arg: "80%", linear: 0.8, direction: pipewire.Absolute},
		{input: " 150% ", arg: "150%", linear: 1.5, direction: pipewire.Absolute},
		{input: "+5%", arg: "5%+", linear: 0.05, direction: pipewire.Increase},
		{input: "5%+", arg: "5%+", linear: 0.05, direction: pipewire.Increase},
		{input: "-5%", arg: "5%-", linear: 0.05, direction: pipewire.Decrease},
		{input: "5%-", arg: "5%-", linear: 0.05, direction: pipewire.Decrease},
		{input: "+0.05", arg: "0.05+", linear: 0.05, direction: pipewire.Increase},
		{input: "0", arg: "0", linear: 0, direction: pipewire.Absolute},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			spec, err := pipewire.ParseVolume(tc.input)
			if err != nil {
				t.Fatalf("ParseVolume returned error: %v", err)
			}
			if spec.Arg() != tc.arg {
				t.Fatalf("Arg() = %q, want %q", spec.Arg(), tc.arg)
			}
			if math.Abs(spec.Linear()-tc.linear) > 1e-9 {
				t.Fatalf("Linear() = %v, want %v", spec.Linear(), tc.linear)
			}
			if spec.Direction != tc.direction {
				t.Fatalf("Direction = %v, want %v", spec.Direction, tc.direction)
			}
		})
	}
}

func TestParseVolumeRejects(t *testing.T) {
	for _, input := range []string{"", "  ", "loud", "5%%", "+5%-", "+-5", "80", "151%", "NaN", "Inf", "%", "+"} {
		t.Run(input, func(t *testing.T) {
			_, err := pipewire.ParseVolume(input)
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected ErrValidation for %q, got %v", input, err)
			}
		})
	}
}

func TestVolumeApply(t *testing.T) {
	up := pipewire.Step(0.05, true, 1.0)
	if up.Arg() != "5%+" {
		t.Fatalf("unexpected step arg %q", up.Arg())
	}
	if got := up.Apply(0.98); got != 1.0 {
		t.Fatalf("expected increase to clamp at limit, got %v", got)
	}
	down := pipewire.Step(0.05, false, 1.0)
	if got := down.Apply(0.02); got != 0 {
		t.Fatalf("expected decrease to clamp at zero, got %v", got)
	}
	abs := pipewire.VolumeSpec{Amount: 40, Percent: true}
	if got := abs.Apply(0.9); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("expected absolute value, got %v", got)
	}
}

func TestParseMute(t *testing.T) {
	tests := map[string]pipewire.MuteAction{
		"":       pipewire.MuteToggle,
		"toggle": pipewire.MuteToggle,
		"ON":     pipewire.MuteOn,
		"true":   pipewire.MuteOn,
		"1":      pipewire.MuteOn,
		"yes":    pipewire.MuteOn,
		"off":    pipewire.MuteOff,
		"false":  pipewire.MuteOff,
		"0":      pipewire.MuteOff,
		"no":     pipewire.MuteOff,
	}
	for input, want := range tests {
		got, err := pipewire.ParseMute(input)
		if err != nil {
			t.Fatalf("ParseMute(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMute(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := pipewire.ParseMute("maybe"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if pipewire.MuteFromBool(true).Arg() != "1" || pipewire.MuteFromBool(false).Arg() != "0" {
		t.Fatal("unexpected MuteFromBool args")
	}
}
