package binding_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/binding"
	"formbind/enumset"
	"formbind/field"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestConvert_IntegerRoundTrip(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{Key: "age", Kind: field.KindInteger}

	for _, n := range []int64{0, 1, -1, 42, 1<<62 - 1} {
		v := conv.Convert(d, binding.IntValue(n).String())

		got, ok := v.Int()
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestConvert_IntegerMalformed(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{Key: "age", Kind: field.KindInteger}

	for _, raw := range []string{"abc", "1.5", "1e3", " 7", ""} {
		assert.True(t, conv.Convert(d, raw).IsAbsent(), "raw=%q", raw)
	}
}

func TestConvert_DecimalRoundTrip(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{Key: "salary", Kind: field.KindDecimal}

	for _, raw := range []string{"0", "1234.56", "-0.001", "99999999999999999999.99"} {
		v := conv.Convert(d, raw)

		got, ok := v.Decimal()
		require.True(t, ok, "raw=%q", raw)

		want, err := decimal.NewFromString(raw)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "raw=%q got=%s", raw, got)

		// exact: converting the rendered value again loses nothing
		again := conv.Convert(d, v.String())
		gotAgain, _ := again.Decimal()
		assert.True(t, got.Equal(gotAgain))
	}
}

func TestConvert_OptionalEmptyIsAbsent(t *testing.T) {
	var conv binding.Converter

	kinds := []field.Descriptor{
		{Key: "a", Kind: field.KindInteger, Optional: true},
		{Key: "b", Kind: field.KindDecimal, Optional: true},
		{Key: "c", Kind: field.KindText, Optional: true},
		{Key: "d", Kind: field.KindText, Subkind: field.TextPhone, Optional: true},
		{Key: "e", Kind: field.KindEnumeration, Optional: true, Enum: enumset.Strings("x")},
		{Key: "f", Kind: field.KindDate, Optional: true},
	}

	for _, d := range kinds {
		assert.True(t, conv.Convert(d, "").IsAbsent(), "kind=%s", d.Kind)
	}
}

func TestConvert_PhoneStripping(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{Key: "phone", Kind: field.KindText, Subkind: field.TextPhone}

	tests := []struct{ raw, want string }{
		{"(5", "5"},
		{"(55", "55"},
		{"(555) 12", "55512"},
		{"+1 (555) 123-4567", "15551234567"},
		{"no digits", ""},
	}

	for _, tt := range tests {
		v := conv.Convert(d, tt.raw)

		got, ok := v.Text()
		require.True(t, ok, "phone conversion always succeeds")
		assert.Equal(t, tt.want, got)

		// idempotent: stripping twice equals stripping once
		twice := conv.Convert(d, got)
		gotTwice, _ := twice.Text()
		assert.Equal(t, got, gotTwice)
	}
}

func TestConvert_URL(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{Key: "website", Kind: field.KindText, Subkind: field.TextURL}

	v := conv.Convert(d, "https://example.com/a?b=c")
	u, ok := v.URL()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a?b=c", u.String())

	assert.True(t, conv.Convert(d, "http://[::1]:namedport").IsAbsent())
	assert.True(t, conv.Convert(d, "").IsAbsent())
}

func TestConvert_PlainTextIsIdentity(t *testing.T) {
	var conv binding.Converter

	for _, sub := range []field.TextSubkindEnum{field.TextPlain, field.TextEmail, field.TextHandle} {
		d := field.Descriptor{Key: "t", Kind: field.KindText, Subkind: sub}

		got, ok := conv.Convert(d, "as typed  ").Text()
		require.True(t, ok)
		assert.Equal(t, "as typed  ", got)
	}
}

func TestConvert_EnumerationLabels(t *testing.T) {
	var conv binding.Converter
	d := field.Descriptor{
		Key:  "status",
		Kind: field.KindEnumeration,
		Enum: enumset.Strings("Active", "Closed"),
	}

	v := conv.Convert(d, "Closed")
	label, ok := v.Label()
	require.True(t, ok)
	assert.Equal(t, "Closed", label)

	assert.True(t, conv.Convert(d, "closed").IsAbsent())
	assert.True(t, conv.Convert(d, "Open").IsAbsent())
}

func TestConvert_DateParse(t *testing.T) {
	conv := binding.Converter{Clock: fixedClock(time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))}
	d := field.Descriptor{
		Key:  "birthday",
		Kind: field.KindDate,
		Date: field.DateConfig{Layout: "2006-01-02", Location: time.UTC},
	}

	v := conv.Convert(d, "1984-06-15")
	got, ok := v.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(1984, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestConvert_DateFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 38, 0, 0, time.UTC)
	conv := binding.Converter{Clock: fixedClock(now)}

	d := field.Descriptor{
		Key:  "birthday",
		Kind: field.KindDate,
		Date: field.DateConfig{Layout: "2006-01-02 15:04", Location: time.UTC},
	}

	// malformed input falls back to the clock, never to absent
	got, ok := conv.Convert(d, "not-a-date").Date()
	require.True(t, ok)
	assert.Equal(t, now, got)
}

func TestConvert_DateFallbackRespectsRangeAndInterval(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 38, 0, 0, time.UTC)
	max := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	conv := binding.Converter{Clock: fixedClock(now)}

	d := field.Descriptor{
		Key:  "due",
		Kind: field.KindDate,
		Date: field.DateConfig{Layout: "2006-01-02 15:04", Location: time.UTC, Max: max, MinuteInterval: 15},
	}

	got, ok := conv.Convert(d, "garbage").Date()
	require.True(t, ok)
	assert.Equal(t, max, got, "fallback clamps into the configured range")

	parsed, ok := conv.Convert(d, "2025-06-01 09:38").Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), parsed, "parsed values snap to the minute interval")
}
