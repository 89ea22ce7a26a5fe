package pwdump

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDump reports that the input is not a pw-dump object array.
// Individual malformed elements never trigger it.
var ErrMalformedDump = errors.New("malformed pw-dump output")

// Dump is the ordered list of graph objects from one pw-dump invocation.
type Dump []Object

// Decode parses raw pw-dump JSON. Numbers are kept as json.Number so large
// ids survive intact.
func Decode(data []byte) (Dump, error) {
	return Read(bytes.NewReader(data))
}

// Read parses pw-dump JSON from r. The whole document must be a single JSON
// array; partial or trailing garbage is rejected.
func Read(r io.Reader) (Dump, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDump, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedDump)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after array", ErrMalformedDump)
	}

	dump := make(Dump, len(items))
	for i, item := range items {
		dump[i] = NewObject(item)
	}
	return dump, nil
}

// FromObjects builds a dump from already-decoded elements, mainly for tests
// and callers that obtained the graph by other means.
func FromObjects(items ...any) Dump {
	dump := make(Dump, len(items))
	for i, item := range items {
		dump[i] = NewObject(item)
	}
	return dump
}

// OfKind returns the objects of the given kind in dump order.
func (d Dump) OfKind(kind Kind) []Object {
	var out []Object
	for _, obj := range d {
		if obj.Kind() == kind {
			out = append(out, obj)
		}
	}
	return out
}

// Find returns the first object of kind whose id equals id.
func (d Dump) Find(kind Kind, id int) (Object, bool) {
	for _, obj := range d {
		if obj.Kind() != kind {
			continue
		}
		if got, ok := obj.ID(); ok && got == id {
			return obj, true
		}
	}
	return Object{}, false
}

// CountByKind tallies objects per kind.
func (d Dump) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, obj := range d {
		counts[obj.Kind()]++
	}
	return counts
}
