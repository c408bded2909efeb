// Package binding implements the reflective data-binding engine.
//
// Engine pipeline:
//  1. Reflect a record instance → ordered field descriptors
//  2. The editing surface renders descriptors and forwards raw edits
//  3. Convert a raw string per the field's kind → a Value
//  4. Write the Value back through the record's key-path registry,
//     producing a replacement record instance
//
// The engine's one currency type is Value, a tagged union over the handful
// of representations a field can take at the editing boundary. Records opt
// in through the Assignable contract (a key-path registry) and may
// additionally implement TypedAssigner to coerce enumeration labels and
// dates into their concrete storage types.
package binding
