package pipewire

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"pwquick/internal/services"
)

// MaxVolume is the highest linear volume accepted for absolute settings.
const MaxVolume = 1.5

// Direction distinguishes absolute settings from relative steps.
type Direction int

const (
	Absolute Direction = iota
	Increase
	Decrease
)

// VolumeSpec is a parsed volume argument in the form wpctl expects.
type VolumeSpec struct {
	// Amount is the number as written: a fraction, or a percentage when Percent is set.
	Amount    float64
	Percent   bool
	Direction Direction
	// Limit caps increases; zero leaves wpctl's default in place.
	Limit float64
}

// Linear returns Amount as a linear fraction (0.5 for "50%").
func (v VolumeSpec) Linear() float64 {
	if v.Percent {
		return v.Amount / 100
	}
	return v.Amount
}

// Arg renders the wpctl value argument, e.g. "0.8", "50%" or "5%+".
func (v VolumeSpec) Arg() string {
	out := formatFloat(v.Amount)
	if v.Percent {
		out += "%"
	}
	switch v.Direction {
	case Increase:
		out += "+"
	case Decrease:
		out += "-"
	}
	return out
}

// String implements fmt.Stringer for log lines and prompts.
func (v VolumeSpec) String() string {
	return v.Arg()
}

// Apply predicts the resulting volume for a sink currently at current.
func (v VolumeSpec) Apply(current float64) float64 {
	var next float64
	switch v.Direction {
	case Increase:
		next = current + v.Linear()
		if v.Limit > 0 && next > v.Limit {
			next = math.Max(current, v.Limit)
		}
	case Decrease:
		next = math.Max(0, current-v.Linear())
	default:
		next = v.Linear()
	}
	return next
}

// Step builds a relative change of the given linear size.
func Step(size float64, up bool, limit float64) VolumeSpec {
	spec := VolumeSpec{Amount: size * 100, Percent: true, Direction: Decrease, Limit: limit}
	if up {
		spec.Direction = Increase
	}
	spec.Amount = math.Round(spec.Amount*100) / 100
	return spec
}

// ParseVolume accepts "0.8", "80%", "+5%", "5%+", "-5%", "5%-", "+0.05" and
// "0.05-". A leading or trailing sign makes the change relative. Absolute
// values above MaxVolume and malformed numbers are rejected with
// services.ErrValidation.
func ParseVolume(input string) (VolumeSpec, error) {
	raw := strings.TrimSpace(input)
	invalid := func(reason string) error {
		return services.Wrap(services.ErrValidation, "volume", "parse", fmt.Sprintf("%q: %s", input, reason), nil)
	}
	if raw == "" {
		return VolumeSpec{}, invalid("empty value")
	}

	var spec VolumeSpec
	switch {
	case strings.HasPrefix(raw, "+"):
		spec.Direction = Increase
		raw = raw[1:]
	case strings.HasPrefix(raw, "-"):
		spec.Direction = Decrease
		raw = raw[1:]
	}
	if strings.HasSuffix(raw, "+") || strings.HasSuffix(raw, "-") {
		if spec.Direction != Absolute {
			return VolumeSpec{}, invalid("sign given twice")
		}
		spec.Direction = Increase
		if strings.HasSuffix(raw, "-") {
			spec.Direction = Decrease
		}
		raw = raw[:len(raw)-1]
	}
	if strings.HasSuffix(raw, "%") {
		spec.Percent = true
		raw = raw[:len(raw)-1]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "+-%") {
		return VolumeSpec{}, invalid("not a number")
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return VolumeSpec{}, invalid("not a number")
	}
	if amount < 0 {
		return VolumeSpec{}, invalid("negative volume")
	}
	spec.Amount = amount
	if spec.Linear() > MaxVolume {
		if spec.Direction == Absolute && !spec.Percent {
			return VolumeSpec{}, invalid(fmt.Sprintf("above %s; did you mean %s%%?", formatFloat(MaxVolume), raw))
		}
		return VolumeSpec{}, invalid(fmt.Sprintf("above %s%%", formatFloat(MaxVolume*100)))
	}
	return spec, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
