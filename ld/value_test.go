package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Constructors(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, Bool(true).IsBool())
	assert.True(t, Bool(true).Bool())
	assert.True(t, Str("x").IsString())
	assert.Equal(t, "x", Str("x").Str())

	i := Int(3)
	f, isDouble := i.Num()
	assert.Equal(t, 3.0, f)
	assert.False(t, isDouble)

	d := Double(3.5)
	f, isDouble = d.Num()
	assert.Equal(t, 3.5, f)
	assert.True(t, isDouble)
}

func TestValue_Number_InfersDoubleFlag(t *testing.T) {
	_, isDouble := Number(3).Num()
	assert.False(t, isDouble, "whole-valued Number should not be flagged as a double")

	_, isDouble = Number(3.5).Num()
	assert.True(t, isDouble)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Str("a").Equal(Str("a")))
	assert.False(t, Str("a").Equal(Str("b")))
	assert.True(t, Seq(Int(1), Int(2)).Equal(Seq(Int(1), Int(2))))
	assert.False(t, Seq(Int(1), Int(2)).Equal(Seq(Int(2), Int(1))), "sequence equality is order-sensitive")
	assert.False(t, Int(1).Equal(Double(1)), "an int and a double carrying the same magnitude are distinct values")
}

func TestOMap_PreservesInsertionOrder(t *testing.T) {
	m := NewOMap()
	m.Set("z", Int(1))
	m.Set("a", Int(2))
	m.Set("m", Int(3))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, []string{"a", "m", "z"}, m.SortedKeys())
}

func TestOMap_SetOverwritesWithoutReordering(t *testing.T) {
	m := NewOMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(99))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(99), v)
}

func TestOMap_Delete(t *testing.T) {
	m := NewOMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Delete("a")

	assert.False(t, m.Has("a"))
	assert.Equal(t, []string{"b"}, m.Keys())
	assert.Equal(t, 1, m.Len())

	m.Delete("nope") // no-op, must not panic
}

func TestValue_CloneIsDeepAndSortsMapKeys(t *testing.T) {
	inner := NewOMap()
	inner.Set("z", Int(1))
	inner.Set("a", Seq(Int(1), Int(2)))
	v := MapOf(inner)

	clone := v.Clone()
	require.True(t, clone.IsMap())
	assert.Equal(t, []string{"a", "z"}, clone.Map().Keys())
	assert.True(t, v.Equal(clone))

	// mutating the clone's nested sequence must not affect the original
	cloneInnerSeq, _ := clone.Map().Get("a")
	cloneInnerSeq.SeqItems()[0] = Int(999)
	originalInnerSeq, _ := v.Map().Get("a")
	assert.Equal(t, Int(1), originalInnerSeq.SeqItems()[0])
}
