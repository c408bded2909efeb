package binding

import (
	"fmt"
	"sort"
	"time"

	"formbind/field"
)

// Session binds one record instance for editing. It owns the current record
// value, the ordered field descriptors, and the raw edits that have not been
// committed yet. All methods are single-threaded by contract: the editing
// surface serializes input events, and each committed edit replaces the
// current record atomically.
type Session[R Assignable[R]] struct {
	conv    Converter
	current R
	fields  []field.Descriptor
	index   map[string]int
	pending map[string]string
	edited  map[string]struct{}
	focus   string
}

// SessionOption configures a Session at construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	clock  func() time.Time
	hints  field.Hints
	fields []field.Descriptor
}

// WithClock replaces the time source used for the date-parse fallback.
func WithClock(clock func() time.Time) SessionOption {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithHints supplies per-key inference hints (text subkinds, date configs).
func WithHints(hints field.Hints) SessionOption {
	return func(c *sessionConfig) { c.hints = hints }
}

// WithFields bypasses reflection and binds the given descriptors directly.
// Used for records whose fields are not struct members, e.g. schema-driven
// dynamic records.
func WithFields(fields []field.Descriptor) SessionOption {
	return func(c *sessionConfig) { c.fields = fields }
}

// NewSession reflects rec and starts an editing session over it.
//
// Every reflected field must have a key path in the record's registry; a gap
// between the two means the record type is out of sync with itself, so
// NewSession panics rather than limp along with an incomplete binding.
func NewSession[R Assignable[R]](rec R, opts ...SessionOption) *Session[R] {
	var cfg sessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fields := cfg.fields
	if fields == nil {
		fields = Reflect(rec, cfg.hints)
	}

	paths := rec.KeyPaths()
	index := make(map[string]int, len(fields))

	for i, d := range fields {
		if _, ok := paths[d.Key]; !ok {
			panic(fmt.Sprintf("binding: record %T has no key path for field %q", rec, d.Key))
		}

		index[d.Key] = i
	}

	return &Session[R]{
		conv:    Converter{Clock: cfg.clock},
		current: rec,
		fields:  fields,
		index:   index,
		pending: map[string]string{},
		edited:  map[string]struct{}{},
	}
}

// Fields returns the ordered descriptors of the bound record.
func (s *Session[R]) Fields() []field.Descriptor {
	return s.fields
}

// Record returns the current record value, reflecting every committed edit.
func (s *Session[R]) Record() R {
	return s.current
}

// Descriptor returns the descriptor for key.
func (s *Session[R]) Descriptor(key string) (field.Descriptor, bool) {
	i, ok := s.index[key]
	if !ok {
		return field.Descriptor{}, false
	}

	return s.fields[i], true
}

// Convert converts a raw string for the field at key without committing it.
func (s *Session[R]) Convert(key, raw string) Value {
	d, ok := s.Descriptor(key)
	if !ok {
		panic(fmt.Sprintf("binding: unknown field key %q", key))
	}

	return s.conv.Convert(d, raw)
}

// Edit records a raw edit for key without writing it back. Pending edits
// show through in Values and are committed by Commit.
func (s *Session[R]) Edit(key, raw string) {
	if _, ok := s.index[key]; !ok {
		panic(fmt.Sprintf("binding: unknown field key %q", key))
	}

	s.pending[key] = raw
}

// Commit converts the pending edit for key and writes it back, replacing the
// current record. Committing a key with no pending edit is a no-op and
// returns the field's current value. The converted value is returned so the
// surface can re-render the field normalized.
func (s *Session[R]) Commit(key string) Value {
	d, ok := s.Descriptor(key)
	if !ok {
		panic(fmt.Sprintf("binding: unknown field key %q", key))
	}

	raw, ok := s.pending[key]
	if !ok {
		return s.current.KeyPaths()[key].Get(s.current)
	}

	v := s.conv.Convert(d, raw)
	s.current = s.writeBack(d, v)

	delete(s.pending, key)
	s.edited[key] = struct{}{}

	return v
}

// Apply is Edit followed by Commit: one full convert + write-back cycle.
func (s *Session[R]) Apply(key, raw string) Value {
	s.Edit(key, raw)
	return s.Commit(key)
}

// writeBack dispatches a converted value into the record. Enumeration and
// date values go through the record's AssignTyped hook first, because their
// boundary representation (label, timestamp) is not the storage type and
// only the record knows the downcast. Everything else, and records without
// the hook, goes through the erased key path.
func (s *Session[R]) writeBack(d field.Descriptor, v Value) R {
	if d.Kind == field.KindEnumeration || d.Kind == field.KindDate {
		if ta, ok := any(s.current).(TypedAssigner[R]); ok {
			if next, ok := ta.AssignTyped(d.Key, v); ok {
				return next
			}
		}
	}

	path, ok := s.current.KeyPaths()[d.Key]
	if !ok {
		panic(fmt.Sprintf("binding: record %T has no key path for field %q", s.current, d.Key))
	}

	next, ok := path.Set(s.current, v)
	if !ok {
		return s.current
	}

	return next
}

// Values snapshots every bound field: pending edits are converted on the
// fly, everything else reads from the last committed record. Hosts call
// this on submit.
func (s *Session[R]) Values() map[string]Value {
	paths := s.current.KeyPaths()
	out := make(map[string]Value, len(s.fields))

	for _, d := range s.fields {
		if raw, ok := s.pending[d.Key]; ok {
			out[d.Key] = s.conv.Convert(d, raw)
			continue
		}

		out[d.Key] = paths[d.Key].Get(s.current)
	}

	return out
}

// Edited returns the keys that have had at least one committed edit, sorted.
func (s *Session[R]) Edited() []string {
	keys := make([]string, 0, len(s.edited))
	for k := range s.edited {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// CurrentKey returns the field the surface reports as focused, or "".
func (s *Session[R]) CurrentKey() string {
	return s.focus
}

// SetCurrentKey tracks focus. Pure state; the session subscribes to nothing.
func (s *Session[R]) SetCurrentKey(key string) {
	s.focus = key
}
