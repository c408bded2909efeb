// Package dynamic provides a schema-driven record: field layout comes from a
// form schema instead of a compiled struct, and values live in a map of the
// engine's own Value type. It implements the full Assignable contract, so
// the binding engine drives it exactly like a static record. The CLI and the
// integration tests run on it.
package dynamic

import (
	"fmt"

	"formbind/binding"
	"formbind/field"
	"formbind/internal/schema"
)

// Record is a value-semantics record. Copies share the descriptor slice
// (read-only) but never the value map: every Set clones it, so write-back is
// atomic replacement like everywhere else in the engine.
type Record struct {
	fields []field.Descriptor
	vals   map[string]binding.Value
}

// New materializes an empty record from a schema.
func New(f *schema.File) (Record, error) {
	descs, err := f.Descriptors()
	if err != nil {
		return Record{}, fmt.Errorf("failed to materialize schema: %w", err)
	}

	return Record{fields: descs, vals: map[string]binding.Value{}}, nil
}

// Fields returns the record's descriptors in schema order.
func (r Record) Fields() []field.Descriptor {
	return r.fields
}

// Value returns the stored value for key; absent when never set.
func (r Record) Value(key string) binding.Value {
	return r.vals[key]
}

// KeyPaths builds the record's key-path registry. Each path checks that the
// incoming value's tag is legal for the field's kind; a mismatch is a
// recoverable no-op per the accessor contract.
func (r Record) KeyPaths() binding.Mapping[Record] {
	paths := make(binding.Mapping[Record], len(r.fields))

	for _, d := range r.fields {
		paths[d.Key] = binding.Path[Record]{
			Get: getter(d.Key),
			Set: setter(d),
		}
	}

	return paths
}

// AssignTyped stores enumeration labels and dates directly. Dynamic records
// keep Values as their storage type, so the "downcast" is a kind check.
func (r Record) AssignTyped(key string, v binding.Value) (Record, bool) {
	for _, d := range r.fields {
		if d.Key != key {
			continue
		}

		if d.Kind != field.KindEnumeration && d.Kind != field.KindDate {
			return r, false
		}

		return setter(d)(r, v)
	}

	return r, false
}

func getter(key string) func(Record) binding.Value {
	return func(r Record) binding.Value {
		return r.vals[key]
	}
}

func setter(d field.Descriptor) func(Record, binding.Value) (Record, bool) {
	return func(r Record, v binding.Value) (Record, bool) {
		if v.IsAbsent() {
			if !d.Optional {
				return r, false
			}

			return r.with(d.Key, v), true
		}

		if !kindAccepts(d, v.Kind()) {
			return r, false
		}

		return r.with(d.Key, v), true
	}
}

func kindAccepts(d field.Descriptor, tag binding.ValueEnum) bool {
	switch d.Kind {
	case field.KindInteger:
		return tag == binding.ValueInt
	case field.KindDecimal:
		return tag == binding.ValueDecimal
	case field.KindText:
		if d.Subkind == field.TextURL {
			return tag == binding.ValueURL
		}
		return tag == binding.ValueText
	case field.KindEnumeration:
		return tag == binding.ValueLabel
	case field.KindDate:
		return tag == binding.ValueDate
	default:
		return false
	}
}

// with returns a copy of the record with key set to v. The value map is
// cloned; the receiver is never touched.
func (r Record) with(key string, v binding.Value) Record {
	vals := make(map[string]binding.Value, len(r.vals)+1)
	for k, old := range r.vals {
		vals[k] = old
	}

	if v.IsAbsent() {
		delete(vals, key)
	} else {
		vals[key] = v
	}

	return Record{fields: r.fields, vals: vals}
}
