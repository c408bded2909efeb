package binding

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"formbind/field"
)

// Formatter renders Values back into display strings for the editing
// surface: grouped, locale-aware numbers and layout-formatted dates. This is
// the engine→surface direction of the boundary; Convert is the other.
type Formatter struct {
	Locale language.Tag // language.Und renders numbers ungrouped
}

// Format renders v for display in the field described by d. Absent values
// render as the empty string.
func (f Formatter) Format(d field.Descriptor, v Value) string {
	switch v.Kind() {
	case ValueInt:
		n, _ := v.Int()
		return f.printer().Sprint(number.Decimal(n))

	case ValueDecimal:
		dec, _ := v.Decimal()
		if f.Locale == language.Und {
			return dec.String()
		}
		// Display only; the stored value stays exact.
		scale := int(-dec.Exponent())
		if scale < 0 {
			scale = 0
		}
		fl, _ := dec.Float64()
		return f.printer().Sprint(number.Decimal(fl, number.Scale(scale)))

	case ValueDate:
		t, _ := v.Date()
		return t.In(d.Date.EffectiveLocation()).Format(d.Date.EffectiveLayout())

	default:
		return v.String()
	}
}

func (f Formatter) printer() *message.Printer {
	return message.NewPrinter(f.Locale)
}
