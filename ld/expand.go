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

// Expand recursively rewrites value from short form to long form under
// ctx, threading the active context through recursion and replacing it
// when a subject carries its own @context. property is the active
// property under which value occurs, in its original (unexpanded) form
// so term-definition lookups (coercion type/container/language) can find
// it; pass "" at the top of the recursion, when there is no enclosing
// property.
//
// The source's expand routine starts with `var isList = value`, which
// unconditionally treats any truthy value as list-eligible. The intended
// behavior (matching the compactor) is to test the value's actual shape,
// which is what IsListValue does here (spec.md §9(d)).
func Expand(ctx *Context, property string, value Value) (Value, error) {
	if value.IsNull() {
		return Null(), nil
	}

	if property == "" && value.IsString() {
		expanded, err := ExpandTerm(ctx, value.Str())
		if err != nil {
			return Value{}, err
		}
		return Str(expanded), nil
	}

	if value.IsSeq() || IsListValue(value) {
		return expandArrayOrList(ctx, property, value)
	}

	if value.IsMap() {
		if IsSetValue(value) {
			inner, _ := value.Map().Get("@set")
			return Expand(ctx, property, inner)
		}
		if IsValueObject(value) {
			return expandLiteralObject(ctx, value.Map())
		}
		return expandSubject(ctx, property, value.Map())
	}

	return expandScalar(ctx, property, value)
}

func expandArrayOrList(ctx *Context, property string, value Value) (Value, error) {
	var items []Value
	usedListWrapper := IsListValue(value)

	if usedListWrapper {
		inner, _ := value.Map().Get("@list")
		switch {
		case inner.IsNull():
			items = nil
		case inner.IsSeq():
			items = inner.SeqItems()
		default:
			return Value{}, NewJsonLdError(SyntaxError, "@list value must be an array or null",
				map[string]interface{}{"property": property})
		}
	} else {
		items = value.SeqItems()
	}

	result := make([]Value, 0, len(items))
	for _, item := range items {
		if item.IsSeq() {
			return Value{}, NewJsonLdError(SyntaxError, "arrays may not directly contain arrays", nil)
		}
		expanded, err := Expand(ctx, property, item)
		if err != nil {
			return Value{}, err
		}
		if expanded.IsNull() {
			continue
		}
		result = append(result, expanded)
	}

	if usedListWrapper || ContainerIs(ctx, property, "@list") {
		m := NewOMap()
		m.Set("@list", SeqOf(result))
		return MapOf(m), nil
	}
	return SeqOf(result), nil
}

func expandLiteralObject(ctx *Context, m *OMap) (Value, error) {
	out := NewOMap()
	if v, ok := m.Get("@value"); ok {
		out.Set("@value", v)
	}
	if t, ok := m.Get("@type"); ok && t.IsString() {
		expanded, err := ExpandTerm(ctx, t.Str())
		if err != nil {
			return Value{}, err
		}
		out.Set("@type", Str(expanded))
	}
	if lang, ok := m.Get("@language"); ok {
		out.Set("@language", lang)
	}
	return MapOf(out), nil
}

func expandSubject(ctx *Context, property string, m *OMap) (Value, error) {
	effectiveCtx := ctx
	if ctxVal, ok := m.Get("@context"); ok {
		mergedRaw, err := MergeContextValues(ctx.raw, ctxVal)
		if err != nil {
			return Value{}, err
		}
		newCtx, err := BuildContext(mergedRaw)
		if err != nil {
			return Value{}, err
		}
		effectiveCtx = newCtx
	}

	out := NewOMap()
	for _, k := range m.Keys() {
		if k == "@context" {
			continue
		}
		v, _ := m.Get(k)

		if IsFramingKeyword(k) {
			out.Set(k, alwaysArray(v))
			continue
		}

		expandedKey, err := ExpandTerm(effectiveCtx, k)
		if err != nil {
			return Value{}, err
		}

		if !IsAbsoluteIRI(expandedKey) && !IsKeyword(expandedKey) {
			// Neither an absolute IRI nor a keyword once expanded (an
			// undefined term, or a term whose IRI is not absolute): dropped.
			continue
		}

		switch expandedKey {
		case "@id":
			if !v.IsString() {
				return Value{}, NewJsonLdError(SyntaxError, "@id value must be a string", nil)
			}
			expandedIRI, err := ExpandTerm(effectiveCtx, v.Str())
			if err != nil {
				return Value{}, err
			}
			out.Set("@id", Str(expandedIRI))

		case "@type":
			items := Arrayify(v)
			expItems := make([]Value, 0, len(items))
			for _, it := range items {
				if !it.IsString() {
					return Value{}, NewJsonLdError(SyntaxError, "@type value must be a string", nil)
				}
				expanded, err := ExpandTerm(effectiveCtx, it.Str())
				if err != nil {
					return Value{}, err
				}
				expItems = append(expItems, Str(expanded))
			}
			out.Set("@type", SeqOf(expItems))

		default:
			expanded, err := Expand(effectiveCtx, k, v)
			if err != nil {
				return Value{}, err
			}
			if expanded.IsNull() {
				continue
			}
			out.Set(expandedKey, alwaysArray(expanded))
		}
	}
	return MapOf(out), nil
}

func alwaysArray(v Value) Value {
	if v.IsSeq() {
		return v
	}
	return Seq(v)
}
