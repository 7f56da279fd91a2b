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

// CloneDocument returns a deep, deterministically-ordered copy of v. Map
// keys are visited (and re-inserted) in sorted order so output is
// bit-reproducible for a fixed input.
func CloneDocument(v Value) Value {
	return v.Clone()
}

// Arrayify returns v's items if v is a sequence, otherwise a single
// element slice containing v.
func Arrayify(v Value) []Value {
	if v.IsSeq() {
		return v.SeqItems()
	}
	return []Value{v}
}

// IsValueObject reports whether v is a {@value, ...} literal.
func IsValueObject(v Value) bool {
	return v.IsMap() && v.Map().Has("@value")
}

// IsListValue reports whether v is a {@list: ...} wrapper.
func IsListValue(v Value) bool {
	return v.IsMap() && v.Map().Has("@list")
}

// IsSetValue reports whether v is a {@set: ...} wrapper.
func IsSetValue(v Value) bool {
	return v.IsMap() && v.Map().Has("@set")
}

// IsSubject reports whether v is a subject: a map that is neither a
// value object, a set, nor a list, and that either has more than one key
// or no @id.
func IsSubject(v Value) bool {
	if !v.IsMap() {
		return false
	}
	m := v.Map()
	if m.Has("@value") || m.Has("@set") || m.Has("@list") {
		return false
	}
	return m.Len() > 1 || !m.Has("@id")
}

// IsSubjectReference reports whether v is a bare {@id: ...} reference.
func IsSubjectReference(v Value) bool {
	return v.IsMap() && v.Map().Len() == 1 && v.Map().Has("@id")
}

// HasProperty reports whether subject has any value for property.
func HasProperty(subject Value, property string) bool {
	m := subject.Map()
	if m == nil {
		return false
	}
	return m.Has(property)
}

// HasValue reports whether subject[property] exists and either contains
// value (if it's a sequence) or equals value.
func HasValue(subject Value, property string, value Value) bool {
	m := subject.Map()
	if m == nil {
		return false
	}
	existing, ok := m.Get(property)
	if !ok {
		return false
	}
	if existing.IsSeq() {
		for _, item := range existing.SeqItems() {
			if CompareValues(item, value) {
				return true
			}
		}
		return false
	}
	if value.IsSeq() {
		// avoid matching the set of values with an array value parameter
		return false
	}
	return CompareValues(existing, value)
}

// AddValue adds value to subject[property]. If the property is absent
// it is set to value (or [value] if alwaysArray). If present, value is
// appended, coercing to an array first if needed; a duplicate (by
// CompareValues) is never added twice.
func AddValue(subject Value, property string, value Value, alwaysArray bool) {
	m := subject.Map()
	if m == nil {
		return
	}
	existing, found := m.Get(property)
	if !found {
		if alwaysArray {
			m.Set(property, Seq(value))
		} else {
			m.Set(property, value)
		}
		return
	}

	if HasValue(subject, property, value) {
		return
	}

	if existing.IsSeq() {
		m.Set(property, SeqOf(append(append([]Value{}, existing.SeqItems()...), value)))
		return
	}

	m.Set(property, Seq(existing, value))
}

// GetValues returns subject[property] as a slice: empty if absent, the
// sequence's items if it is a sequence, or a single-element slice
// otherwise.
func GetValues(subject Value, property string) []Value {
	m := subject.Map()
	if m == nil {
		return nil
	}
	existing, ok := m.Get(property)
	if !ok {
		return []Value{}
	}
	return Arrayify(existing)
}

// RemoveProperty deletes property from subject entirely.
func RemoveProperty(subject Value, property string) {
	m := subject.Map()
	if m == nil {
		return
	}
	m.Delete(property)
}

// RemoveValue rebuilds subject[property] excluding value. A length-0
// result removes the key; a length-1 result collapses to a scalar unless
// alwaysArray is set, matching AddValue's own alwaysArray parameter.
func RemoveValue(subject Value, property string, value Value, alwaysArray bool) {
	m := subject.Map()
	if m == nil {
		return
	}
	existing, ok := m.Get(property)
	if !ok {
		return
	}

	var kept []Value
	for _, item := range Arrayify(existing) {
		if !CompareValues(item, value) {
			kept = append(kept, item)
		}
	}

	switch len(kept) {
	case 0:
		m.Delete(property)
	case 1:
		if alwaysArray {
			m.Set(property, SeqOf(kept))
		} else {
			m.Set(property, kept[0])
		}
	default:
		m.Set(property, SeqOf(kept))
	}
}

// GetContextValue resolves one coercion property (@id, @type, @container
// or @language) of a term directly from a raw (unparsed) context value,
// for callers that only have the JSON-level context description on hand.
func GetContextValue(ctxValue Value, key, kind string) (Value, bool) {
	ctx, err := BuildContext(ctxValue)
	if err != nil {
		return Value{}, false
	}
	raw, ok := GetProp(ctx, key, kind, false)
	if !ok {
		return Value{}, false
	}
	return Str(raw), true
}

// CompareValues reports whether v1 and v2 are equal as JSON-LD values:
// equal primitives, equal {@value,@type,@language} literals, or equal
// @id references.
func CompareValues(v1, v2 Value) bool {
	if IsValueObject(v1) && IsValueObject(v2) {
		m1, m2 := v1.Map(), v2.Map()
		return valueFieldsEqual(m1, m2, "@value") &&
			valueFieldsEqual(m1, m2, "@type") &&
			valueFieldsEqual(m1, m2, "@language")
	}

	if v1.IsMap() && v2.IsMap() {
		id1, ok1 := v1.Map().Get("@id")
		id2, ok2 := v2.Map().Get("@id")
		if ok1 && ok2 {
			return id1.IsString() && id2.IsString() && id1.Str() == id2.Str()
		}
		return false
	}

	if v1.IsMap() || v2.IsMap() {
		return false
	}

	return v1.Equal(v2)
}

func valueFieldsEqual(m1, m2 *OMap, key string) bool {
	v1, ok1 := m1.Get(key)
	v2, ok2 := m2.Get(key)
	if ok1 != ok2 {
		return false
	}
	if !ok1 {
		return true
	}
	return v1.Equal(v2)
}

// DeepCompare returns true if v1 and v2 are structurally equal. Unlike
// Value.Equal, sequence comparison can optionally ignore element order
// (matching each element of v1 against an unused element of v2), which
// is what the round-trip invariants in spec.md §8 need.
func DeepCompare(v1, v2 Value, listOrderMatters bool) bool {
	if v1.Kind() != v2.Kind() {
		return false
	}

	switch v1.Kind() {
	case KindMap:
		m1, m2 := v1.Map(), v2.Map()
		if m1.Len() != m2.Len() {
			return false
		}
		for _, k := range m1.Keys() {
			val1, _ := m1.Get(k)
			val2, ok := m2.Get(k)
			if !ok || !DeepCompare(val1, val2, listOrderMatters) {
				return false
			}
		}
		return true
	case KindSeq:
		l1, l2 := v1.SeqItems(), v2.SeqItems()
		if len(l1) != len(l2) {
			return false
		}
		if listOrderMatters {
			for i := range l1 {
				if !DeepCompare(l1[i], l2[i], listOrderMatters) {
					return false
				}
			}
			return true
		}
		matched := make([]bool, len(l2))
		for _, item := range l1 {
			found := false
			for j, candidate := range l2 {
				if !matched[j] && DeepCompare(item, candidate, listOrderMatters) {
					matched[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return v1.Equal(v2)
	}
}
