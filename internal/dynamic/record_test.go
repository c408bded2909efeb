package dynamic

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbind/binding"
	"formbind/internal/schema"
)

const testSchema = `
fields:
  - key: name
    kind: text
  - key: phone
    kind: text
    text: phone
    optional: true
  - key: age
    kind: integer
    optional: true
  - key: status
    kind: enum
    enum:
      labels: [Active, Closed]
  - key: birthday
    kind: date
    optional: true
    date:
      layout: "2006-01-02"
      location: UTC
`

func newTestRecord(t *testing.T) Record {
	t.Helper()

	f, err := schema.Parse([]byte(testSchema))
	require.NoError(t, err)
	diags := schema.Validate(f)
	require.True(t, diags.IsValid())

	rec, err := New(f)
	require.NoError(t, err)

	return rec
}

func TestRecord_SessionEndToEnd(t *testing.T) {
	rec := newTestRecord(t)
	sess := binding.NewSession(rec, binding.WithFields(rec.Fields()))

	sess.Apply("name", "Ada Lovelace")
	sess.Apply("phone", "(555) 123-4567")
	sess.Apply("age", "36")
	sess.Apply("status", "Closed")
	sess.Apply("birthday", "1815-12-10")

	values := sess.Values()

	name, _ := values["name"].Text()
	assert.Equal(t, "Ada Lovelace", name)

	phone, _ := values["phone"].Text()
	assert.Equal(t, "5551234567", phone)

	age, _ := values["age"].Int()
	assert.Equal(t, int64(36), age)

	status, _ := values["status"].Label()
	assert.Equal(t, "Closed", status)

	birthday, _ := values["birthday"].Date()
	assert.Equal(t, time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC), birthday)

	// a second identical run produces a structurally identical snapshot
	other := binding.NewSession(newTestRecord(t), binding.WithFields(rec.Fields()))
	for _, edit := range [][2]string{
		{"name", "Ada Lovelace"}, {"phone", "(555) 123-4567"}, {"age", "36"},
		{"status", "Closed"}, {"birthday", "1815-12-10"},
	} {
		other.Apply(edit[0], edit[1])
	}

	otherValues := other.Values()
	if !assert.Equal(t, values, otherValues) {
		t.Logf("first:\n%s\nsecond:\n%s", spew.Sdump(values), spew.Sdump(otherValues))
	}
}

func TestRecord_WriteBackDoesNotAliasPreviousCopies(t *testing.T) {
	rec := newTestRecord(t)
	sess := binding.NewSession(rec, binding.WithFields(rec.Fields()))

	sess.Apply("name", "Ada")

	assert.True(t, rec.Value("name").IsAbsent(), "the seed record copy is never mutated")

	name, _ := sess.Record().Value("name").Text()
	assert.Equal(t, "Ada", name)
}

func TestRecord_KindMismatchIsNoOp(t *testing.T) {
	rec := newTestRecord(t)
	paths := rec.KeyPaths()

	next, ok := paths["age"].Set(rec, binding.TextValue("nope"))
	assert.False(t, ok)
	assert.True(t, next.Value("age").IsAbsent())

	// required field rejects absence
	_, ok = paths["name"].Set(rec, binding.Value{})
	assert.False(t, ok)

	// optional field accepts absence
	withAge, ok := paths["age"].Set(rec, binding.IntValue(36))
	require.True(t, ok)

	cleared, ok := paths["age"].Set(withAge, binding.Value{})
	require.True(t, ok)
	assert.True(t, cleared.Value("age").IsAbsent())
}

func TestRecord_AssignTyped(t *testing.T) {
	rec := newTestRecord(t)

	next, ok := rec.AssignTyped("status", binding.LabelValue("Closed"))
	require.True(t, ok)

	label, _ := next.Value("status").Label()
	assert.Equal(t, "Closed", label)

	_, ok = rec.AssignTyped("name", binding.TextValue("x"))
	assert.False(t, ok, "the typed hook only covers enum and date fields")

	_, ok = rec.AssignTyped("missing", binding.LabelValue("x"))
	assert.False(t, ok)
}
