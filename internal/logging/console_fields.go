package logging

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

type infoField struct {
	label string
	value string
}

const (
	infoFieldLimit = 8
	maxErrorLength = 200
)

// infoPriority lists the keys shown first on info lines, in this order.
var infoPriority = []string{
	FieldEventType,
	"description",
	FieldCardID,
	"profile",
	FieldVolume,
	"mute",
	"device",
	FieldError,
	FieldErrorHint,
	FieldImpact,
	"elapsed",
}

// infoFields selects the user-facing fields of an info or warning record.
// It returns at most limit fields (0 means no limit) plus the number left out.
func infoFields(fields []field, limit int) ([]infoField, int) {
	var ordered []field
	for _, key := range infoPriority {
		for _, f := range fields {
			if f.key == key {
				ordered = append(ordered, f)
				break
			}
		}
	}
	for _, f := range fields {
		if !isPriorityKey(f.key) {
			ordered = append(ordered, f)
		}
	}

	var shown []infoField
	hidden := 0
	for _, f := range ordered {
		if hiddenAtInfo(f.key) {
			continue
		}
		if limit > 0 && len(shown) >= limit {
			hidden++
			continue
		}
		shown = append(shown, infoField{label: fieldLabel(f.key), value: friendlyValue(f.key, f.value)})
	}
	return shown, hidden
}

func isPriorityKey(key string) bool {
	for _, candidate := range infoPriority {
		if candidate == key {
			return true
		}
	}
	return false
}

// hiddenAtInfo reports keys that are either already in the header or only
// useful when debugging.
func hiddenAtInfo(key string) bool {
	switch key {
	case "", FieldComponent, FieldCommand, FieldSinkID, FieldSessionID, FieldCorrelationID, "args", "output_bytes", "devpath":
		return true
	}
	return strings.HasSuffix(key, "_path")
}

func fieldLabel(key string) string {
	switch key {
	case FieldEventType:
		return "Event"
	case FieldErrorHint:
		return "Hint"
	case FieldCardID:
		return "Card"
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// friendlyValue formats a field for info lines: linear volumes become
// percentages, booleans become yes/no and long errors are truncated.
func friendlyValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindFloat64:
		if key == FieldVolume {
			return strconv.Itoa(int(math.Round(v.Float64()*100))) + "%"
		}
	case slog.KindBool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	}
	out := plainValue(v)
	if key == FieldError && len(out) > maxErrorLength {
		out = out[:maxErrorLength] + "…"
	}
	return out
}

// plainValue renders a value without quoting.
func plainValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindTime:
		return v.Time().Local().Format(consoleTimestampLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

// quotedValue is plainValue with quoting for strings that would be ambiguous
// in key: value debug output.
func quotedValue(v slog.Value) string {
	s := plainValue(v)
	if v.Kind() != slog.KindString && v.Kind() != slog.KindAny {
		return s
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
