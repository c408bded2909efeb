package binding

import (
	"reflect"

	"formbind/field"
)

// Reflect walks the exported fields of a record struct in declaration order
// and returns a descriptor for each recognizable one. Fields whose type
// matches no recognized kind are dropped silently; declaration order is
// preserved because it drives the editing surface's layout and tab order.
//
// rec may be a struct or a pointer to one. Reflect holds no per-type cache,
// so it is safe to call with records of any shape at any time.
func Reflect(rec any, hints field.Hints) []field.Descriptor {
	rv := reflect.ValueOf(rec)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()

	var out []field.Descriptor

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		key := field.KeyOf(sf)
		if key == "" {
			continue
		}

		d, ok := field.Describe(key, sf.Type, hints[key])
		if !ok {
			continue
		}

		out = append(out, d)
	}

	return out
}
