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

// Compact recursively rewrites an expanded value back to its short form
// under the target context ctx. It is the inverse of Expand.
func Compact(ctx *Context, property string, value Value) (Value, error) {
	if value.IsNull() {
		return Null(), nil
	}

	if value.IsSeq() || IsListValue(value) {
		return compactArrayOrList(ctx, property, value)
	}

	if value.IsMap() {
		m := value.Map()

		if g, ok := m.Get("@graph"); ok && m.Len() == 1 {
			compacted, err := Compact(ctx, property, g)
			if err != nil {
				return Value{}, err
			}
			out := NewOMap()
			out.Set(ctx.aliases.AliasOf("@graph"), compacted)
			return MapOf(out), nil
		}

		if IsSetValue(value) {
			inner, _ := m.Get("@set")
			return Compact(ctx, property, inner)
		}

		if m.Has("@value") {
			return compactScalar(ctx, property, value)
		}

		if IsSubjectReference(value) && isIDCoercedProperty(ctx, property) {
			// A bare {"@id": ...} reference under an @type:@id coerced
			// property compacts to the plain IRI string, same as the
			// literal @id/@type special cases below.
			return compactScalar(ctx, property, value)
		}

		return compactSubject(ctx, property, m)
	}

	return compactScalar(ctx, property, value)
}

func compactArrayOrList(ctx *Context, property string, value Value) (Value, error) {
	var items []Value
	usedList := IsListValue(value)

	if usedList {
		inner, _ := value.Map().Get("@list")
		if inner.IsSeq() {
			items = inner.SeqItems()
		}
	} else {
		items = value.SeqItems()
	}

	result := make([]Value, 0, len(items))
	for _, item := range items {
		if item.IsSeq() {
			return Value{}, NewJsonLdError(SyntaxError, "arrays may not directly contain arrays", nil)
		}
		compacted, err := Compact(ctx, property, item)
		if err != nil {
			return Value{}, err
		}
		result = append(result, compacted)
	}

	if usedList && !ContainerIs(ctx, property, "@list") {
		out := NewOMap()
		out.Set(ctx.aliases.AliasOf("@list"), SeqOf(result))
		return MapOf(out), nil
	}
	return SeqOf(result), nil
}

func compactSubject(ctx *Context, property string, m *OMap) (Value, error) {
	out := NewOMap()

	for _, k := range m.Keys() {
		if k == "@context" {
			continue
		}
		if !IsKeyword(k) && !IsAbsoluteIRI(k) {
			// Defensive: shouldn't occur on valid expanded input, since
			// every non-keyword key of an expanded document is absolute.
			continue
		}
		v, _ := m.Get(k)

		var compactedKey string
		var compactedVal Value
		var err error

		switch k {
		case "@id":
			compactedKey = ctx.aliases.AliasOf("@id")
			if v.IsString() {
				compactedVal = Str(CompactIRI(ctx, v.Str()))
			} else {
				compactedVal = v
			}

		case "@type":
			compactedKey = ctx.aliases.AliasOf("@type")
			items := Arrayify(v)
			compacted := make([]Value, 0, len(items))
			for _, it := range items {
				if it.IsString() {
					compacted = append(compacted, Str(CompactIRI(ctx, it.Str())))
				} else {
					compacted = append(compacted, it)
				}
			}
			if len(compacted) == 1 {
				compactedVal = compacted[0]
			} else {
				compactedVal = SeqOf(compacted)
			}

		default:
			term := CompactIRI(ctx, k)
			compactedKey = term
			compactedVal, err = Compact(ctx, term, v)
			if err != nil {
				return Value{}, err
			}
			if ContainerIs(ctx, term, "@list") && compactedVal.IsSeq() &&
				len(compactedVal.SeqItems()) == 1 && compactedVal.SeqItems()[0].IsSeq() {
				// The expanded value is [{"@list": [...]}]; under a declared
				// @list container the list's own items are the value.
				compactedVal = compactedVal.SeqItems()[0]
			}
		}

		alwaysArr := ContainerIs(ctx, compactedKey, "@set") || ContainerIs(ctx, compactedKey, "@list")
		if alwaysArr && !compactedVal.IsSeq() {
			compactedVal = Seq(compactedVal)
		}
		if !alwaysArr && compactedVal.IsSeq() && len(compactedVal.SeqItems()) == 1 {
			compactedVal = compactedVal.SeqItems()[0]
		}

		out.Set(compactedKey, compactedVal)
	}

	return MapOf(out), nil
}
