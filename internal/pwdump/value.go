package pwdump

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a read-only accessor over a decoded JSON value. The zero Value is
// absent, and every accessor on an absent Value reports absence.
type Value struct {
	raw any
}

// ValueOf wraps an already-decoded JSON value. A nil input yields an absent Value.
func ValueOf(raw any) Value {
	return Value{raw: raw}
}

// Present reports whether the value exists and is not JSON null.
func (v Value) Present() bool {
	return v.raw != nil
}

// Raw returns the underlying decoded value, or nil when absent.
func (v Value) Raw() any {
	return v.raw
}

// Get returns the member named key when v is an object.
func (v Value) Get(key string) Value {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}
	}
	return Value{raw: m[key]}
}

// Has reports whether v is an object carrying key, even when its value is null.
func (v Value) Has(key string) bool {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}

// Path follows a chain of object keys, stopping at the first absent step.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, key := range keys {
		cur = cur.Get(key)
		if !cur.Present() {
			return Value{}
		}
	}
	return cur
}

// Index returns the i-th element when v is an array.
func (v Value) Index(i int) Value {
	list, ok := v.raw.([]any)
	if !ok || i < 0 || i >= len(list) {
		return Value{}
	}
	return Value{raw: list[i]}
}

// List returns the elements of v when it is an array, or nil otherwise.
func (v Value) List() []Value {
	list, ok := v.raw.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(list))
	for i, item := range list {
		out[i] = Value{raw: item}
	}
	return out
}

// IsObject reports whether v is a JSON object.
func (v Value) IsObject() bool {
	_, ok := v.raw.(map[string]any)
	return ok
}

// String returns v when it is a JSON string.
func (v Value) String() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// StringOr returns the string value or fallback when absent, empty or not a string.
func (v Value) StringOr(fallback string) string {
	if s, ok := v.String(); ok && s != "" {
		return s
	}
	return fallback
}

// Bool returns v when it is a JSON boolean. No other type is coerced.
func (v Value) Bool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}

// Int coerces v to an integer using AsInt.
func (v Value) Int() (int, bool) {
	return AsInt(v.raw)
}

// Float returns v when it is a JSON number. Strings are not treated as numbers here;
// use AsFloat for lenient parsing.
func (v Value) Float() (float64, bool) {
	switch n := v.raw.(type) {
	case json.Number, float64, float32, int, int64, int32, uint32, uint64:
		return AsFloat(n)
	default:
		return 0, false
	}
}

// AsInt parses raw as an integer. JSON numbers must be whole; strings are
// trimmed and parsed in base 10. Anything else, including booleans, is absent.
func AsInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFrom64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	case float64:
		return intFromFloat(n)
	case float32:
		return intFromFloat(float64(n))
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return intFrom64(n)
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 0)
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// AsFloat parses raw as a finite float. Numeric strings are accepted.
func AsFloat(raw any) (float64, bool) {
	var f float64
	switch n := raw.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func intFrom64(i int64) (int, bool) {
	if i > math.MaxInt || i < math.MinInt {
		return 0, false
	}
	return int(i), true
}

func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return intFrom64(int64(f))
}
