package schema

import (
	"fmt"
	"time"

	"formbind/enumset"
	"formbind/field"
)

// File is the root of a form schema document.
type File struct {
	Version string  `yaml:"version,omitempty"`
	Title   string  `yaml:"title,omitempty"`
	Fields  []Field `yaml:"fields"`
}

// Field defines one form field.
type Field struct {
	Key      string `yaml:"key"`
	Kind     string `yaml:"kind"` // integer | decimal | text | enum | date
	Optional bool   `yaml:"optional,omitempty"`

	Text string      `yaml:"text,omitempty"` // subkind: plain | email | url | phone | handle
	Enum *EnumConfig `yaml:"enum,omitempty"`
	Date *DateConfig `yaml:"date,omitempty"`
}

// EnumConfig defines the closed case set of an enum field.
type EnumConfig struct {
	Labels []string `yaml:"labels"`
	Match  string   `yaml:"match,omitempty"` // exact | first-token
}

// DateConfig defines layout and constraints of a date field. Min and Max use
// the field's own layout.
type DateConfig struct {
	Layout   string `yaml:"layout,omitempty"`
	Location string `yaml:"location,omitempty"`
	Min      string `yaml:"min,omitempty"`
	Max      string `yaml:"max,omitempty"`
	Interval int    `yaml:"interval,omitempty"` // minute interval, 0 disables snapping
}

const (
	KindInteger = "integer"
	KindDecimal = "decimal"
	KindText    = "text"
	KindEnum    = "enum"
	KindDate    = "date"

	MatchExact      = "exact"
	MatchFirstToken = "first-token"
)

// Descriptor materializes the field definition into an engine descriptor.
func (f Field) Descriptor() (field.Descriptor, error) {
	d := field.Descriptor{Key: f.Key, Optional: f.Optional}

	switch f.Kind {
	case KindInteger:
		d.Kind = field.KindInteger

	case KindDecimal:
		d.Kind = field.KindDecimal

	case KindText:
		d.Kind = field.KindText
		sub, err := parseSubkind(f.Text)
		if err != nil {
			return field.Descriptor{}, fmt.Errorf("field %s: %w", f.Key, err)
		}
		if f.Text == "" {
			sub = field.SubkindForKey(f.Key)
		}
		d.Subkind = sub

	case KindEnum:
		d.Kind = field.KindEnumeration
		if f.Enum == nil || len(f.Enum.Labels) == 0 {
			return field.Descriptor{}, fmt.Errorf("field %s: enum field needs labels", f.Key)
		}
		set := enumset.Strings(f.Enum.Labels...)
		if f.Enum.Match == MatchFirstToken {
			set = set.WithFirstToken()
		}
		d.Enum = set

	case KindDate:
		d.Kind = field.KindDate
		cfg, err := f.dateConfig()
		if err != nil {
			return field.Descriptor{}, fmt.Errorf("field %s: %w", f.Key, err)
		}
		d.Date = cfg

	default:
		return field.Descriptor{}, fmt.Errorf("field %s: unknown kind %q", f.Key, f.Kind)
	}

	return d, nil
}

func (f Field) dateConfig() (field.DateConfig, error) {
	var cfg field.DateConfig

	if f.Date == nil {
		return cfg, nil
	}

	cfg.Layout = f.Date.Layout
	cfg.MinuteInterval = f.Date.Interval

	if f.Date.Location != "" {
		loc, err := time.LoadLocation(f.Date.Location)
		if err != nil {
			return field.DateConfig{}, fmt.Errorf("bad location %q: %w", f.Date.Location, err)
		}
		cfg.Location = loc
	}

	layout := cfg.EffectiveLayout()
	loc := cfg.EffectiveLocation()

	if f.Date.Min != "" {
		t, err := time.ParseInLocation(layout, f.Date.Min, loc)
		if err != nil {
			return field.DateConfig{}, fmt.Errorf("bad min %q: %w", f.Date.Min, err)
		}
		cfg.Min = t
	}

	if f.Date.Max != "" {
		t, err := time.ParseInLocation(layout, f.Date.Max, loc)
		if err != nil {
			return field.DateConfig{}, fmt.Errorf("bad max %q: %w", f.Date.Max, err)
		}
		cfg.Max = t
	}

	return cfg, nil
}

// Descriptors materializes every field, in order.
func (f *File) Descriptors() ([]field.Descriptor, error) {
	out := make([]field.Descriptor, 0, len(f.Fields))

	for _, fld := range f.Fields {
		d, err := fld.Descriptor()
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

// Hints extracts the inference hints for reflecting a compiled struct
// against this schema: text subkinds and date configs, keyed by field key.
func (f *File) Hints() (field.Hints, error) {
	hints := make(field.Hints, len(f.Fields))

	for _, fld := range f.Fields {
		var h field.Hint

		switch fld.Kind {
		case KindText:
			if fld.Text == "" {
				continue
			}
			sub, err := parseSubkind(fld.Text)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", fld.Key, err)
			}
			h.Subkind = sub

		case KindDate:
			cfg, err := fld.dateConfig()
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", fld.Key, err)
			}
			h.Date = &cfg

		default:
			continue
		}

		hints[fld.Key] = h
	}

	return hints, nil
}

func parseSubkind(s string) (field.TextSubkindEnum, error) {
	switch s {
	case "", "plain":
		return field.TextPlain, nil
	case "email":
		return field.TextEmail, nil
	case "url":
		return field.TextURL, nil
	case "phone":
		return field.TextPhone, nil
	case "handle":
		return field.TextHandle, nil
	default:
		return field.TextPlain, fmt.Errorf("unknown text subkind %q", s)
	}
}
