package binding

// Path is the typed accessor for one field of a record type R. Get reads the
// field as a Value; Set writes a Value into a copy of the record and returns
// it. Set reports false when the value's representation cannot be coerced
// into the field (a recoverable conversion mismatch, not an error) — the
// record passed in is then returned unchanged by the caller.
//
// Set must never mutate its argument: records move through the engine by
// value, and write-back is atomic replacement.
type Path[R any] struct {
	Get func(R) Value
	Set func(R, Value) (R, bool)
}

// Mapping is the key-path registry of a record type: the closed, exhaustive
// map from field key to accessor. Every key produced by reflecting R must be
// present; a missing key is a programming error, not a runtime condition.
type Mapping[R any] map[string]Path[R]

// Assignable is the capability contract a record type implements to become
// bindable.
type Assignable[R any] interface {
	KeyPaths() Mapping[R]
}

// TypedAssigner is the optional coercion hook consulted for enumeration and
// date fields before the erased key-path. Those fields cross the boundary as
// labels and timestamps, which are not their storage types; AssignTyped owns
// the downcast into the concrete case or date field. Returning false falls
// the engine back to the plain key-path.
type TypedAssigner[R any] interface {
	AssignTyped(key string, v Value) (R, bool)
}
