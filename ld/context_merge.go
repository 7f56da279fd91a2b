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

// MergeContextValues folds ctx2 into ctx1, honoring IRI replacement: a
// key in ctx2 that defines an @id causes any existing ctx1 key mapped to
// the same IRI to be dropped before ctx2's keys are overlaid (later wins
// on a plain key collision). Either argument may be a sequence of
// contexts, folded left with an empty map seed.
func MergeContextValues(ctx1, ctx2 Value) (Value, error) {
	if ctx1.IsSeq() {
		acc := NewMapValue()
		var err error
		for _, item := range ctx1.SeqItems() {
			if acc, err = MergeContextValues(acc, item); err != nil {
				return Value{}, err
			}
		}
		ctx1 = acc
	}
	if ctx1.IsNull() {
		ctx1 = NewMapValue()
	}
	if !ctx1.IsMap() {
		return Value{}, NewJsonLdError(InvalidContext,
			"context must be an object, a list of objects, or null", nil)
	}

	if ctx2.IsSeq() {
		acc := ctx1
		var err error
		for _, item := range ctx2.SeqItems() {
			if acc, err = MergeContextValues(acc, item); err != nil {
				return Value{}, err
			}
		}
		return acc, nil
	}
	if ctx2.IsNull() {
		return ctx1, nil
	}
	m2 := ctx2.Map()
	if m2 == nil {
		return Value{}, NewJsonLdError(InvalidContext,
			"context must be an object, a list of objects, or null", nil)
	}

	result := ctx1.Map().Clone()

	// IRI replacement: a later mapping to an already-used IRI removes the
	// earlier term.
	var toRemove []string
	for _, k := range m2.Keys() {
		v2, _ := m2.Get(k)
		newID, ok := resolvedID(v2)
		if !ok {
			continue
		}
		for _, rk := range result.Keys() {
			rv, _ := result.Get(rk)
			if oldID, ok2 := resolvedID(rv); ok2 && oldID == newID {
				toRemove = append(toRemove, rk)
			}
		}
	}
	for _, k := range toRemove {
		result.Delete(k)
	}

	// Overlay ctx2's keys; later wins on collision.
	for _, k := range m2.Keys() {
		v2, _ := m2.Get(k)
		if v2.IsNull() {
			result.Delete(k)
			continue
		}
		result.Set(k, v2.Clone())
	}

	return MapOf(result), nil
}

// resolvedID returns the @id a context entry would register, whether
// expressed as a bare string term definition or a {"@id": ...} map.
func resolvedID(v Value) (string, bool) {
	if v.IsString() {
		return v.Str(), true
	}
	if v.IsMap() {
		if id, ok := v.Map().Get("@id"); ok && id.IsString() {
			return id.Str(), true
		}
	}
	return "", false
}
