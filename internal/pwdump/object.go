package pwdump

import "strings"

// Kind classifies a graph object by its PipeWire interface type.
type Kind string

const (
	KindNode     Kind = "Node"
	KindDevice   Kind = "Device"
	KindMetadata Kind = "Metadata"
	KindPort     Kind = "Port"
	KindClient   Kind = "Client"
	KindLink     Kind = "Link"
	KindModule   Kind = "Module"
	KindFactory  Kind = "Factory"
	KindCore     Kind = "Core"
	KindProfiler Kind = "Profiler"
	KindUnknown  Kind = "Unknown"
)

const interfacePrefix = "PipeWire:Interface:"

var knownKinds = map[string]Kind{
	"Node":     KindNode,
	"Device":   KindDevice,
	"Metadata": KindMetadata,
	"Port":     KindPort,
	"Client":   KindClient,
	"Link":     KindLink,
	"Module":   KindModule,
	"Factory":  KindFactory,
	"Core":     KindCore,
	"Profiler": KindProfiler,
}

// ParseKind maps a raw type string such as "PipeWire:Interface:Node" to a Kind.
func ParseKind(typ string) Kind {
	name, ok := strings.CutPrefix(strings.TrimSpace(typ), interfacePrefix)
	if !ok {
		return KindUnknown
	}
	if kind, ok := knownKinds[name]; ok {
		return kind
	}
	return KindUnknown
}

// Object is one element of a dump. It is never mutated after decoding.
type Object struct {
	v Value
}

// NewObject wraps a decoded dump element.
func NewObject(raw any) Object {
	return Object{v: ValueOf(raw)}
}

// Value exposes the whole element for reads the helpers below do not cover.
func (o Object) Value() Value {
	return o.v
}

// ID returns the object's global id when it is a resolvable integer.
func (o Object) ID() (int, bool) {
	return o.v.Get("id").Int()
}

// Type returns the raw interface type string, or "" when absent.
func (o Object) Type() string {
	s, _ := o.v.Get("type").String()
	return s
}

// Kind returns the object's interface kind.
func (o Object) Kind() Kind {
	return ParseKind(o.Type())
}

// Info returns the "info" member carried by nodes, devices, clients and ports.
func (o Object) Info() Value {
	return o.v.Get("info")
}

// Props returns the object's property bag. Metadata objects keep their props
// at the top level; every other kind nests them under info.
func (o Object) Props() Value {
	if o.Kind() == KindMetadata {
		return o.v.Get("props")
	}
	return o.v.Path("info", "props")
}

// Prop is shorthand for Props().Get(key).
func (o Object) Prop(key string) Value {
	return o.Props().Get(key)
}

// Params returns the entries of the named parameter list under info.params.
func (o Object) Params(name string) []Value {
	return o.v.Path("info", "params", name).List()
}

// ParamBag returns the whole info.params object.
func (o Object) ParamBag() Value {
	return o.v.Path("info", "params")
}

// State returns info.state, or "unknown" when it is absent.
func (o Object) State() string {
	return o.Info().Get("state").StringOr("unknown")
}

// MetadataEntry is one key/value item of a Metadata object.
type MetadataEntry struct {
	Subject int
	Key     string
	Type    string
	Value   Value
}

// MetadataEntries returns the items of a Metadata object. Items without a
// string key are skipped.
func (o Object) MetadataEntries() []MetadataEntry {
	items := o.v.Get("metadata").List()
	entries := make([]MetadataEntry, 0, len(items))
	for _, item := range items {
		key, ok := item.Get("key").String()
		if !ok {
			continue
		}
		subject, _ := item.Get("subject").Int()
		typ, _ := item.Get("type").String()
		entries = append(entries, MetadataEntry{
			Subject: subject,
			Key:     key,
			Type:    typ,
			Value:   item.Get("value"),
		})
	}
	return entries
}
