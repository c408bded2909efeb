package field

import (
	"time"

	"formbind/enumset"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies a field's representation and conversion rules.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInteger
	KindDecimal
	KindText
	KindEnumeration
	KindDate

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

//go:generate go tool stringer -type=TextSubkindEnum -output=textsubkind_string.go

// TextSubkindEnum refines KindText. It selects the editing affordance and
// character-filtering policy on the editing surface; the engine itself only
// uses it for the phone stripping and URL parsing rules.
type TextSubkindEnum int

const (
	TextPlain TextSubkindEnum = iota
	TextEmail
	TextURL
	TextPhone
	TextHandle

	// TextSubkindTotal is a constant that represents the total number of subkinds defined
	TextSubkindTotal = int(iota)
)

// DateConfig carries the formatting and constraint parameters of a date
// field. The zero value means "default layout, local time, unbounded".
type DateConfig struct {
	Layout         string         // time layout string; DefaultDateLayout when empty
	Location       *time.Location // time.Local when nil
	Min, Max       time.Time      // zero values mean unbounded
	MinuteInterval int            // 0 means no snapping
}

// DefaultDateLayout is used when a date field carries no explicit layout.
const DefaultDateLayout = "2006-01-02 15:04"

// EffectiveLayout returns the configured layout or the default.
func (c DateConfig) EffectiveLayout() string {
	if c.Layout == "" {
		return DefaultDateLayout
	}

	return c.Layout
}

// EffectiveLocation returns the configured location or time.Local.
func (c DateConfig) EffectiveLocation() *time.Location {
	if c.Location == nil {
		return time.Local
	}

	return c.Location
}

// InRange reports whether t lies within the configured min/max, both
// inclusive. Unset bounds never exclude.
func (c DateConfig) InRange(t time.Time) bool {
	if !c.Min.IsZero() && t.Before(c.Min) {
		return false
	}

	if !c.Max.IsZero() && t.After(c.Max) {
		return false
	}

	return true
}

// Clamp forces t into the configured range and snaps its minutes down to the
// configured interval.
func (c DateConfig) Clamp(t time.Time) time.Time {
	if !c.Min.IsZero() && t.Before(c.Min) {
		t = c.Min
	}

	if !c.Max.IsZero() && t.After(c.Max) {
		t = c.Max
	}

	if c.MinuteInterval > 1 {
		t = t.Add(-time.Duration(t.Minute()%c.MinuteInterval) * time.Minute).Truncate(time.Minute)
	}

	return t
}

// Descriptor describes one bindable field of a record: its stable key, its
// optionality and its kind, plus the kind-specific payload.
type Descriptor struct {
	Key      string
	Optional bool
	Kind     KindEnum

	Subkind TextSubkindEnum // meaningful when Kind == KindText
	Enum    enumset.Labeler // meaningful when Kind == KindEnumeration
	Date    DateConfig      // meaningful when Kind == KindDate
}

// Hint overrides parts of kind inference for one key. Hints come from a form
// schema or from the host; zero fields leave inference untouched.
type Hint struct {
	Subkind TextSubkindEnum // nonzero replaces the key-keyword scan result
	Date    *DateConfig     // replaces the default date config
}

// Hints maps field keys to their hints. A nil map is valid and hints nothing.
type Hints map[string]Hint
