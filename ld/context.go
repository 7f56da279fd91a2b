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

import "strings"

// TermDefinition is the parsed form of a context entry: either a bare
// string IRI, or a map carrying @id/@type/@container/@language options.
type TermDefinition struct {
	IRI string

	HasType bool
	Type    string // "@id", or an absolute IRI

	HasContainer bool
	Container    string // "@list" or "@set"

	HasLanguage bool
	Language    string
}

// Context stores term definitions and the keyword alias table derived
// from them. It is built once per rewrite call (by BuildContext) and
// consumed read-only thereafter.
type Context struct {
	terms     map[string]*TermDefinition
	termOrder []string
	aliases   *keywordAliasTable

	// raw is the fully merged context description this Context was built
	// from, kept so a subject's own @context can be folded in with the
	// same n-way merge rule used to build this one in the first place.
	raw Value
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		terms:   make(map[string]*TermDefinition),
		aliases: newIdentityKeywordAliasTable(),
		raw:     NewMapValue(),
	}
}

func (c *Context) setTerm(name string, def *TermDefinition) {
	if _, exists := c.terms[name]; !exists {
		c.termOrder = append(c.termOrder, name)
	}
	c.terms[name] = def
}

// BuildContext parses a (possibly list-valued) raw context description
// into a Context. Lists are folded left-to-right using the same
// IRI-replacement rule as MergeContextValues, since a context list is
// merge(merge(merge({}, c1), c2), c3)....
func BuildContext(raw Value) (*Context, error) {
	merged, err := MergeContextValues(NewMapValue(), raw)
	if err != nil {
		return nil, err
	}

	ctx := NewContext()
	ctx.raw = merged
	m := merged.Map()
	if m == nil {
		return ctx, nil
	}

	for _, key := range m.Keys() {
		if strings.HasPrefix(key, "@") {
			// Keyword-level context options (@base, @vocab, ...) are not
			// part of this core's term model; ignore them.
			continue
		}
		val, _ := m.Get(key)

		if val.IsString() {
			s := val.Str()
			if IsKeyword(s) {
				ctx.aliases.registerAlias(key, s)
				continue
			}
			ctx.setTerm(key, &TermDefinition{IRI: s})
			continue
		}

		if val.IsNull() {
			// An explicit null definition removes any existing mapping.
			delete(ctx.terms, key)
			continue
		}

		defMap := val.Map()
		if defMap == nil {
			return nil, NewJsonLdError(InvalidContext, "term definition must be a string, an object or null", map[string]interface{}{"term": key})
		}

		def := &TermDefinition{}
		if idVal, ok := defMap.Get("@id"); ok && idVal.IsString() {
			if IsKeyword(idVal.Str()) {
				ctx.aliases.registerAlias(key, idVal.Str())
				continue
			}
			def.IRI = idVal.Str()
		}
		if typeVal, ok := defMap.Get("@type"); ok && typeVal.IsString() {
			def.HasType = true
			def.Type = typeVal.Str()
		}
		if containerVal, ok := defMap.Get("@container"); ok && containerVal.IsString() {
			def.HasContainer = true
			def.Container = containerVal.Str()
		}
		if langVal, ok := defMap.Get("@language"); ok && langVal.IsString() {
			def.HasLanguage = true
			def.Language = langVal.Str()
		}
		ctx.setTerm(key, def)
	}

	return ctx, nil
}

// Get returns the raw term definition for a key.
func Get(ctx *Context, key string) (*TermDefinition, bool) {
	def, ok := ctx.terms[key]
	return def, ok
}

// GetProp looks up one coercion property (@id, @type, @container or
// @language) of a term. If expand is true and kind is @type, the raw
// value is itself term-expanded (unless it is the @id sentinel).
func GetProp(ctx *Context, key, kind string, expand bool) (string, bool) {
	def, ok := ctx.terms[key]
	if !ok {
		return "", false
	}

	var raw string
	var has bool
	switch kind {
	case "@id":
		raw, has = def.IRI, def.IRI != ""
	case "@type":
		raw, has = def.Type, def.HasType
	case "@container":
		raw, has = def.Container, def.HasContainer
	case "@language":
		raw, has = def.Language, def.HasLanguage
	}
	if !has {
		return "", false
	}

	if expand && kind == "@type" && raw != "@id" {
		if expanded, err := ExpandTerm(ctx, raw); err == nil {
			raw = expanded
		}
	}
	return raw, true
}

// ContainerIs reports whether property's declared @container equals want.
func ContainerIs(ctx *Context, property, want string) bool {
	c, ok := GetProp(ctx, property, "@container", false)
	return ok && c == want
}

// Keywords returns a copy of the keyword->alias table, for introspection
// and tests. Recomputed on every call to BuildContext; this accessor
// just exposes the table already built.
func Keywords(ctx *Context) map[string]string {
	out := make(map[string]string, len(ctx.aliases.keywordToAlias))
	for k, v := range ctx.aliases.keywordToAlias {
		out[k] = v
	}
	return out
}

// ExpandTerm expands a term, prefix:suffix pair, or keyword alias into an
// absolute IRI (or keyword), repeatedly applying the step rules until the
// result stabilizes. Returns CyclicalContext if the same intermediate
// value recurs before stabilization.
func ExpandTerm(ctx *Context, term string) (string, error) {
	visited := map[string]bool{}
	cur := term
	for {
		if visited[cur] {
			return "", NewJsonLdError(CyclicalContext, "cyclical context definition", map[string]interface{}{"term": term})
		}
		visited[cur] = true

		next, changed := stepExpand(ctx, cur)
		if !changed {
			return next, nil
		}
		cur = next
	}
}

func stepExpand(ctx *Context, cur string) (string, bool) {
	if idx := strings.IndexByte(cur, ':'); idx >= 0 {
		prefix, suffix := cur[:idx], cur[idx+1:]
		if def, ok := ctx.terms[prefix]; ok && def.IRI != "" {
			return def.IRI + suffix, true
		}
		// May already be absolute; case 1 is terminal regardless of match.
		return cur, false
	}

	if def, ok := ctx.terms[cur]; ok {
		return def.IRI, true
	}

	if kw, ok := ctx.aliases.KeywordFor(cur); ok && kw != cur {
		return kw, true
	}

	return cur, false
}

// CompactIRI compacts an absolute IRI (or keyword) back to the shortest
// form the context permits: an exact term match, a keyword alias, a
// prefix:suffix pair, or (failing all of those) the IRI unchanged.
func CompactIRI(ctx *Context, iri string) string {
	for _, term := range ctx.termOrder {
		if def := ctx.terms[term]; def.IRI == iri {
			return term
		}
	}

	if IsKeyword(iri) {
		if alias := ctx.aliases.AliasOf(iri); alias != iri {
			return alias
		}
	}

	for _, term := range ctx.termOrder {
		def := ctx.terms[term]
		if def.IRI != "" && len(iri) > len(def.IRI) && strings.HasPrefix(iri, def.IRI) {
			return term + ":" + iri[len(def.IRI):]
		}
	}

	return iri
}
