// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ld

import (
	"sort"
)

// Kind is the tag of a Value's closed variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSeq
	KindMap
)

// Value is a tagged union over the JSON-like values a document is built
// from: null, boolean, number (integer or double), string, an ordered
// sequence of values, or a key->value map with stable iteration order.
//
// Value is the closed representation the rewriters operate on; helpers
// that accept a Value must discriminate on Kind, never by reflecting on
// a Go interface{}'s dynamic type.
type Value struct {
	kind Kind

	boolVal   bool
	numVal    float64
	isDouble  bool
	strVal    string
	seqVal    []Value
	mapVal    *OMap
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int wraps an integer-valued number.
func Int(i int64) Value { return Value{kind: KindNumber, numVal: float64(i)} }

// Double wraps a floating-point number, always rendered with a fractional part.
func Double(f float64) Value { return Value{kind: KindNumber, numVal: f, isDouble: true} }

// Number wraps a number, inferring the integer/double flag from whether
// the value has a fractional component.
func Number(f float64) Value {
	if f == float64(int64(f)) {
		return Int(int64(f))
	}
	return Double(f)
}

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, strVal: s} }

// Seq wraps an ordered sequence of values.
func Seq(items ...Value) Value {
	return Value{kind: KindSeq, seqVal: items}
}

// SeqOf builds a sequence Value from a slice.
func SeqOf(items []Value) Value {
	return Value{kind: KindSeq, seqVal: items}
}

// MapOf wraps an *OMap as a map Value.
func MapOf(m *OMap) Value {
	if m == nil {
		m = NewOMap()
	}
	return Value{kind: KindMap, mapVal: m}
}

// NewMapValue creates an empty map Value.
func NewMapValue() Value {
	return MapOf(NewOMap())
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsSeq() bool    { return v.kind == KindSeq }
func (v Value) IsMap() bool    { return v.kind == KindMap }

func (v Value) Bool() bool { return v.boolVal }

// Num returns the number and whether it was constructed as a double.
func (v Value) Num() (float64, bool) { return v.numVal, v.isDouble }

func (v Value) Str() string { return v.strVal }

// SeqItems returns the underlying slice (shared, not copied).
func (v Value) SeqItems() []Value { return v.seqVal }

// Map returns the underlying ordered map (shared, not copied). Nil if not a map.
func (v Value) Map() *OMap {
	if v.kind != KindMap {
		return nil
	}
	return v.mapVal
}

// Equal reports whether two values are structurally identical, including
// sequence order. Used by round-trip tests rather than document semantics
// (use CompareValues for JSON-LD value-equality).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindNumber:
		return v.numVal == o.numVal && v.isDouble == o.isDouble
	case KindString:
		return v.strVal == o.strVal
	case KindSeq:
		if len(v.seqVal) != len(o.seqVal) {
			return false
		}
		for i := range v.seqVal {
			if !v.seqVal[i].Equal(o.seqVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.mapVal.equal(o.mapVal)
	}
	return false
}

// Clone returns a deep copy of the value. Map clones iterate their keys
// in sorted order, matching the teacher's deterministic-clone policy, so
// that downstream traversal order is bit-reproducible for a fixed input.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSeq:
		items := make([]Value, len(v.seqVal))
		for i, item := range v.seqVal {
			items[i] = item.Clone()
		}
		return SeqOf(items)
	case KindMap:
		return MapOf(v.mapVal.sortedClone())
	default:
		return v
	}
}

// OMap is an order-preserving string->Value map.
type OMap struct {
	keys []string
	vals map[string]Value
}

// NewOMap creates an empty ordered map.
func NewOMap() *OMap {
	return &OMap{vals: make(map[string]Value)}
}

// Set inserts or overwrites a key, appending new keys to the iteration order.
func (m *OMap) Set(key string, v Value) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get returns the value for key and whether it was present.
func (m *OMap) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OMap) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.vals[key]
	return ok
}

// Delete removes a key, no-op if absent.
func (m *OMap) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice must not be mutated.
func (m *OMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// SortedKeys returns the keys sorted alphabetically.
func (m *OMap) SortedKeys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (m *OMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone deep-clones the map preserving insertion order.
func (m *OMap) Clone() *OMap {
	out := NewOMap()
	if m == nil {
		return out
	}
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out.Set(k, v.Clone())
	}
	return out
}

// sortedClone deep-clones the map, visiting (and re-inserting) keys in
// alphabetical order so the clone's iteration order is deterministic.
func (m *OMap) sortedClone() *OMap {
	out := NewOMap()
	if m == nil {
		return out
	}
	for _, k := range m.SortedKeys() {
		v, _ := m.Get(k)
		out.Set(k, v.Clone())
	}
	return out
}

func (m *OMap) equal(o *OMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, k := range m.Keys() {
		v1, _ := m.Get(k)
		v2, ok := o.Get(k)
		if !ok || !v1.Equal(v2) {
			return false
		}
	}
	return true
}
