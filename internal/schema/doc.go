// Package schema loads YAML form schemas: an ordered list of field
// definitions (key, kind, optionality, kind-specific configuration) that
// describes an editable form independently of any compiled record type.
//
// A schema serves two purposes:
//   - as a hint source when reflecting a compiled struct (text subkinds,
//     date layouts and ranges the type system cannot express)
//   - as the full field list for dynamic, data-defined records
package schema
