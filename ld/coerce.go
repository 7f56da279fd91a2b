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

import "strconv"

// expandScalar expands a single scalar value in light of its property's
// declared @type/@language/@container (spec.md §4.6, expansion
// direction). property is already the original (short) key; the
// property's own IRI expansion is performed by the caller (the
// expander), since @id-coercion needs the raw term to look up the
// property's @type, not its expanded IRI.
func expandScalar(ctx *Context, property string, value Value) (Value, error) {
	typ, hasType := GetProp(ctx, property, "@type", true)

	if hasType && typ == "@id" {
		str, ok := asIRIString(value)
		if !ok {
			return Value{}, NewJsonLdError(SyntaxError, "@id-coerced value must be a string", map[string]interface{}{"property": property})
		}
		expanded, err := ExpandTerm(ctx, str)
		if err != nil {
			return Value{}, err
		}
		m := NewOMap()
		m.Set("@id", Str(expanded))
		return MapOf(m), nil
	}

	if hasType {
		m := NewOMap()
		m.Set("@type", Str(typ))
		m.Set("@value", Str(stringifyScalar(value)))
		return MapOf(m), nil
	}

	litValue := value
	if value.IsNumber() {
		if f, isDouble := value.Num(); isDouble {
			litValue = Str(FormatCanonicalDouble(f))
		}
	}

	m := NewOMap()
	m.Set("@value", litValue)
	if lang, ok := GetProp(ctx, property, "@language", false); ok && value.IsString() {
		m.Set("@language", Str(lang))
	}
	return MapOf(m), nil
}

// isIDCoercedProperty reports whether property has an @type:@id coercion
// declared in ctx. property == "" (no enclosing property, e.g. a
// top-level value) never carries a coercion.
func isIDCoercedProperty(ctx *Context, property string) bool {
	if property == "" {
		return false
	}
	typ, ok := GetProp(ctx, property, "@type", true)
	return ok && typ == "@id"
}

// asIRIString extracts a plain string from a value that should denote an
// IRI: either already a bare string, or (defensively) a {@id: ...} wrapper.
func asIRIString(value Value) (string, bool) {
	if value.IsString() {
		return value.Str(), true
	}
	if value.IsMap() {
		if id, ok := value.Map().Get("@id"); ok && id.IsString() {
			return id.Str(), true
		}
	}
	return "", false
}

func stringifyScalar(v Value) string {
	switch v.Kind() {
	case KindString:
		return v.Str()
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindNumber:
		f, isDouble := v.Num()
		if isDouble {
			return FormatCanonicalDouble(f)
		}
		return strconv.FormatInt(int64(f), 10)
	default:
		return ""
	}
}

// compactScalar compacts a single expanded literal/reference value back
// to its short form in light of property's declared coercion (spec.md
// §4.6, compaction direction).
//
// The source text describing this step reads "emit compact_iri(value['@value'])"
// for the @id-typed case; taken literally that can never apply, since an
// @id-coerced value is expanded to {"@id": iri}, never {"@value": iri}
// (see the expansion direction just above, and E3). This is read as the
// same kind of slip spec.md §9(d) calls out elsewhere in the source, and
// implemented with the evidently intended key, @id.
func compactScalar(ctx *Context, property string, value Value) (Value, error) {
	if !value.IsMap() {
		return value, nil
	}
	m := value.Map()

	if property == "@id" || property == "@type" {
		if id, ok := m.Get("@id"); ok && id.IsString() {
			return Str(CompactIRI(ctx, id.Str())), nil
		}
		return value, nil
	}

	typeVal, hasTypeCoercion := GetProp(ctx, property, "@type", true)
	_, hasLangCoercion := GetProp(ctx, property, "@language", false)
	_, valueHasLanguage := m.Get("@language")

	if hasTypeCoercion && valueHasLanguage {
		return Value{}, NewJsonLdError(CompactError,
			"cannot compact a typed value that also carries @language",
			map[string]interface{}{"property": property})
	}

	if hasTypeCoercion && typeVal == "@id" {
		if id, ok := m.Get("@id"); ok && id.IsString() {
			return Str(CompactIRI(ctx, id.Str())), nil
		}
	}

	if hasTypeCoercion && typeVal != "@id" {
		if v, ok := m.Get("@value"); ok {
			return v, nil
		}
	}

	if !hasTypeCoercion && !hasLangCoercion {
		if m.Len() == 1 {
			if v, ok := m.Get("@value"); ok {
				// A literal with no @type/@language of its own, and no
				// coercion declared for the property, carries no
				// information beyond its bare value.
				return v, nil
			}
		}

		out := NewOMap()
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			alias := k
			if IsKeyword(k) {
				alias = ctx.aliases.AliasOf(k)
			}
			if (k == "@id" || k == "@type") && v.IsString() {
				v = Str(CompactIRI(ctx, v.Str()))
			}
			out.Set(alias, v)
		}
		return MapOf(out), nil
	}

	return value, nil
}
