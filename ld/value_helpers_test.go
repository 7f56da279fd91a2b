package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubject() Value {
	m := NewOMap()
	m.Set("@id", Str("http://x/s"))
	return MapOf(m)
}

func TestArrayify(t *testing.T) {
	assert.Equal(t, []Value{Int(1)}, Arrayify(Int(1)))
	assert.Equal(t, []Value{Int(1), Int(2)}, Arrayify(Seq(Int(1), Int(2))))
}

func TestIsListSetSubjectPredicates(t *testing.T) {
	list := NewOMap()
	list.Set("@list", Seq(Int(1)))
	assert.True(t, IsListValue(MapOf(list)))
	assert.False(t, IsSetValue(MapOf(list)))

	set := NewOMap()
	set.Set("@set", Seq(Int(1)))
	assert.True(t, IsSetValue(MapOf(set)))

	lit := NewOMap()
	lit.Set("@value", Str("x"))
	assert.True(t, IsValueObject(MapOf(lit)))
	assert.False(t, IsSubject(MapOf(lit)))

	ref := NewOMap()
	ref.Set("@id", Str("http://x/s"))
	assert.True(t, IsSubjectReference(MapOf(ref)))
	assert.False(t, IsSubject(MapOf(ref)))

	subj := NewOMap()
	subj.Set("@id", Str("http://x/s"))
	subj.Set("http://x/name", Str("Bob"))
	assert.True(t, IsSubject(MapOf(subj)))
	assert.False(t, IsSubjectReference(MapOf(subj)))
}

func TestHasProperty_HasValue(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)

	assert.True(t, HasProperty(s, "http://x/name"))
	assert.False(t, HasProperty(s, "http://x/missing"))

	assert.True(t, HasValue(s, "http://x/name", Str("Bob")))
	assert.False(t, HasValue(s, "http://x/name", Str("Alice")))
}

func TestHasValue_ArrayParameterNeverMatchesScalarField(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)

	assert.False(t, HasValue(s, "http://x/name", Seq(Str("Bob"))),
		"an array value parameter must not match a scalar-valued field")
}

func TestAddValue_CoercesToArrayOnSecondInsert(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)
	AddValue(s, "http://x/name", Str("Alice"), false)

	values := GetValues(s, "http://x/name")
	assert.Len(t, values, 2)
}

func TestAddValue_SuppressesDuplicates(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)
	AddValue(s, "http://x/name", Str("Bob"), false)

	values := GetValues(s, "http://x/name")
	assert.Len(t, values, 1)
}

func TestAddValue_AlwaysArray(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), true)

	v, ok := s.Map().Get("http://x/name")
	require.True(t, ok)
	assert.True(t, v.IsSeq())
}

func TestGetValues_AbsentPropertyIsEmpty(t *testing.T) {
	s := newSubject()
	assert.Empty(t, GetValues(s, "http://x/missing"))
}

func TestRemoveProperty(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)
	RemoveProperty(s, "http://x/name")
	assert.False(t, HasProperty(s, "http://x/name"))
}

func TestRemoveValue_CollapsesBackToScalar(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)
	AddValue(s, "http://x/name", Str("Alice"), false)

	RemoveValue(s, "http://x/name", Str("Alice"), false)

	v, ok := s.Map().Get("http://x/name")
	require.True(t, ok)
	assert.False(t, v.IsSeq())
	assert.Equal(t, "Bob", v.Str())
}

func TestRemoveValue_EmptyResultRemovesKey(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), false)
	RemoveValue(s, "http://x/name", Str("Bob"), false)
	assert.False(t, HasProperty(s, "http://x/name"))
}

func TestRemoveValue_AlwaysArrayStaysArrayAtLengthOne(t *testing.T) {
	s := newSubject()
	AddValue(s, "http://x/name", Str("Bob"), true)
	AddValue(s, "http://x/name", Str("Alice"), true)

	RemoveValue(s, "http://x/name", Str("Alice"), true)

	v, ok := s.Map().Get("http://x/name")
	require.True(t, ok)
	require.True(t, v.IsSeq())
	require.Len(t, v.SeqItems(), 1)
	assert.Equal(t, "Bob", v.SeqItems()[0].Str())
}

func TestCompareValues(t *testing.T) {
	a := NewOMap()
	a.Set("@value", Str("x"))
	a.Set("@language", Str("en"))
	b := NewOMap()
	b.Set("@value", Str("x"))
	b.Set("@language", Str("en"))

	assert.True(t, CompareValues(MapOf(a), MapOf(b)))

	r1 := NewOMap()
	r1.Set("@id", Str("http://x/s"))
	r2 := NewOMap()
	r2.Set("@id", Str("http://x/s"))
	assert.True(t, CompareValues(MapOf(r1), MapOf(r2)))

	assert.True(t, CompareValues(Str("x"), Str("x")))
	assert.False(t, CompareValues(Str("x"), Int(1)))
}

func TestDeepCompare_OrderInsensitiveMode(t *testing.T) {
	a := Seq(Int(1), Int(2))
	b := Seq(Int(2), Int(1))

	assert.False(t, DeepCompare(a, b, true), "order-sensitive mode must distinguish these")
	assert.True(t, DeepCompare(a, b, false), "order-insensitive mode must treat these as equal")
}

func TestCloneDocument_IsIndependentCopy(t *testing.T) {
	m := NewOMap()
	m.Set("a", Seq(Int(1)))
	v := MapOf(m)

	clone := CloneDocument(v)
	clone.Map().Set("b", Int(2))

	assert.False(t, v.Map().Has("b"))
}
