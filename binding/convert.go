package binding

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"formbind/field"
)

// Converter turns raw editing-surface strings into Values according to a
// field's kind. The zero Converter is ready to use; Clock exists so date
// fallback behavior is testable.
type Converter struct {
	Clock func() time.Time // time.Now when nil
}

// Convert applies the per-kind conversion rules:
//
//   - empty input on an optional field is absent, regardless of kind
//   - integers parse base-10; decimals parse exactly (never through float)
//   - a failed integer or decimal parse yields absent — including empty
//     input on a non-optional field, which the write-back then no-ops
//   - url-subkind text parses as a URL; malformed input yields absent
//   - phone-subkind text strips every non-digit character and always
//     succeeds
//   - other text subkinds pass through unchanged
//   - enumeration input must match a label of the field's case set
//   - a date that fails to parse falls back to the current clock time,
//     clamped into the field's configured range, rather than absent
func (c Converter) Convert(d field.Descriptor, raw string) Value {
	if raw == "" && d.Optional {
		return Value{}
	}

	switch d.Kind {
	case field.KindInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}
		}
		return IntValue(n)

	case field.KindDecimal:
		dec, err := decimal.NewFromString(raw)
		if err != nil {
			return Value{}
		}
		return DecimalValue(dec)

	case field.KindText:
		return c.convertText(d, raw)

	case field.KindEnumeration:
		if d.Enum == nil {
			return Value{}
		}
		label, ok := d.Enum.Canonical(raw)
		if !ok {
			return Value{}
		}
		return LabelValue(label)

	case field.KindDate:
		return DateValue(c.convertDate(d.Date, raw))

	default:
		return Value{}
	}
}

func (c Converter) convertText(d field.Descriptor, raw string) Value {
	switch d.Subkind {
	case field.TextURL:
		u, err := url.Parse(raw)
		if err != nil || u.String() == "" {
			return Value{}
		}
		return URLValue(u)

	case field.TextPhone:
		return TextValue(stripNonDigits(raw))

	default:
		return TextValue(raw)
	}
}

func (c Converter) convertDate(cfg field.DateConfig, raw string) time.Time {
	t, err := time.ParseInLocation(cfg.EffectiveLayout(), raw, cfg.EffectiveLocation())
	if err != nil {
		// Deliberate fallback: a bad date string must not block the
		// editing surface.
		t = c.now()
	}

	return cfg.Clamp(t.In(cfg.EffectiveLocation()))
}

func (c Converter) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}

	return time.Now()
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
