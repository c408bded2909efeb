package binding

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ValueEnum tags the representation carried by a Value.
type ValueEnum int

const (
	ValueAbsent ValueEnum = iota
	ValueInt
	ValueDecimal
	ValueText
	ValueURL
	ValueLabel
	ValueDate

	// ValueTotal is a constant that represents the total number of value tags defined
	ValueTotal = int(iota)
)

// String returns a human-readable tag name.
func (e ValueEnum) String() string {
	switch e {
	case ValueAbsent:
		return "absent"
	case ValueInt:
		return "int"
	case ValueDecimal:
		return "decimal"
	case ValueText:
		return "text"
	case ValueURL:
		return "url"
	case ValueLabel:
		return "label"
	case ValueDate:
		return "date"
	default:
		return "ValueEnum(" + strconv.Itoa(int(e)) + ")"
	}
}

// Value is the engine's tagged-union currency type: the one shape in which
// field values cross the boundary between the typed record and the untyped
// editing surface. The zero Value is absent.
type Value struct {
	kind ValueEnum
	num  int64
	dec  decimal.Decimal
	str  string // text or enumeration label
	ref  *url.URL
	when time.Time
}

// IntValue wraps a base-10 integer.
func IntValue(n int64) Value { return Value{kind: ValueInt, num: n} }

// DecimalValue wraps an exact decimal.
func DecimalValue(d decimal.Decimal) Value { return Value{kind: ValueDecimal, dec: d} }

// TextValue wraps a plain string.
func TextValue(s string) Value { return Value{kind: ValueText, str: s} }

// URLValue wraps a parsed URL.
func URLValue(u *url.URL) Value { return Value{kind: ValueURL, ref: u} }

// LabelValue wraps the canonical label of an enumeration case.
func LabelValue(s string) Value { return Value{kind: ValueLabel, str: s} }

// DateValue wraps a point in time.
func DateValue(t time.Time) Value { return Value{kind: ValueDate, when: t} }

// Kind returns the value's tag.
func (v Value) Kind() ValueEnum { return v.kind }

// IsAbsent reports whether the value carries nothing.
func (v Value) IsAbsent() bool { return v.kind == ValueAbsent }

// Int unwraps an integer value.
func (v Value) Int() (int64, bool) { return v.num, v.kind == ValueInt }

// Decimal unwraps a decimal value.
func (v Value) Decimal() (decimal.Decimal, bool) { return v.dec, v.kind == ValueDecimal }

// Text unwraps a text value.
func (v Value) Text() (string, bool) { return v.str, v.kind == ValueText }

// URL unwraps a URL value.
func (v Value) URL() (*url.URL, bool) { return v.ref, v.kind == ValueURL }

// Label unwraps an enumeration label value.
func (v Value) Label() (string, bool) { return v.str, v.kind == ValueLabel }

// Date unwraps a date value.
func (v Value) Date() (time.Time, bool) { return v.when, v.kind == ValueDate }

// String renders the value without locale awareness. Use Formatter for
// surface-facing output.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueDecimal:
		return v.dec.String()
	case ValueText, ValueLabel:
		return v.str
	case ValueURL:
		if v.ref == nil {
			return ""
		}
		return v.ref.String()
	case ValueDate:
		return v.when.Format(time.RFC3339)
	default:
		return ""
	}
}
