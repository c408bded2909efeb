package field

import (
	"net/url"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"formbind/enumset"
)

var (
	labeledType = reflect.TypeOf((*enumset.Labeled)(nil)).Elem()
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	urlType     = reflect.TypeOf(url.URL{})
)

// Describe builds the descriptor for one reflected field. A single level of
// pointer indirection marks the field optional; double pointers are not
// supported. The ok result is false when the field's type matches none of
// the recognized kinds — such fields are simply not bindable.
//
// The checks run in a fixed order that is part of the contract: enumeration,
// text (with the key-keyword subkind scan), date, integer, decimal, and
// finally URL as a text field with the url subkind. An enumeration value
// satisfies no other check, so it must be tested first; everything after
// follows the same precedence every time, which keeps inference
// deterministic across repeated calls.
func Describe(key string, rtype reflect.Type, hint Hint) (Descriptor, bool) {
	d := Descriptor{Key: key}

	if rtype.Kind() == reflect.Ptr {
		if rtype.Elem().Kind() == reflect.Ptr {
			return Descriptor{}, false
		}

		d.Optional = true
		rtype = rtype.Elem()
	}

	switch {
	case rtype.Implements(labeledType):
		d.Kind = KindEnumeration
		d.Enum = reflect.Zero(rtype).Interface().(enumset.Labeled).EnumSet()

	case rtype.Kind() == reflect.String:
		d.Kind = KindText
		d.Subkind = hint.Subkind
		if d.Subkind == TextPlain {
			d.Subkind = SubkindForKey(key)
		}

	case rtype == timeType:
		d.Kind = KindDate
		if hint.Date != nil {
			d.Date = *hint.Date
		}

	case isIntegerKind(rtype.Kind()):
		d.Kind = KindInteger

	case rtype == decimalType || rtype.Kind() == reflect.Float32 || rtype.Kind() == reflect.Float64:
		d.Kind = KindDecimal

	case rtype == urlType:
		d.Kind = KindText
		d.Subkind = TextURL

	default:
		return Descriptor{}, false
	}

	return d, true
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
}
