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

// coreKeywords is the closed set of control keys the rewriters interpret.
var coreKeywords = map[string]bool{
	"@context":   true,
	"@id":        true,
	"@type":      true,
	"@value":     true,
	"@language":  true,
	"@list":      true,
	"@set":       true,
	"@graph":     true,
	"@container": true,
}

// framingKeywords are preserved verbatim through expansion: never resolved
// as IRIs, and not otherwise interpreted by the rewrite core.
var framingKeywords = map[string]bool{
	"@embed":       true,
	"@explicit":    true,
	"@default":     true,
	"@omitDefault": true,
}

// IsKeyword reports whether key is one of the core control keys.
func IsKeyword(key string) bool {
	return coreKeywords[key]
}

// IsFramingKeyword reports whether key is a framing keyword, passed
// through expansion untouched.
func IsFramingKeyword(key string) bool {
	return framingKeywords[key]
}

// keywordAliasTable is a bidirectional map between a built-in keyword and
// the user-chosen alias registered for it in a context, e.g. a context
// entry {"id": "@id"} registers alias["@id"] == "id".
//
// It starts as the identity mapping and is recomputed per call (no
// caching) as required by the context model.
type keywordAliasTable struct {
	// keywordToAlias maps a built-in keyword to the user key that aliases it.
	keywordToAlias map[string]string
	// aliasToKeyword is the reverse index, used by the expander to
	// recognize user keys as keywords.
	aliasToKeyword map[string]string
}

func newIdentityKeywordAliasTable() *keywordAliasTable {
	t := &keywordAliasTable{
		keywordToAlias: make(map[string]string, len(coreKeywords)),
		aliasToKeyword: make(map[string]string, len(coreKeywords)),
	}
	for kw := range coreKeywords {
		t.keywordToAlias[kw] = kw
		t.aliasToKeyword[kw] = kw
	}
	return t
}

func (t *keywordAliasTable) registerAlias(alias, keyword string) {
	// A user alias overrides the identity entry.
	t.keywordToAlias[keyword] = alias
	delete(t.aliasToKeyword, keyword)
	t.aliasToKeyword[alias] = keyword
}

// AliasOf returns the user alias registered for a built-in keyword, or
// the keyword itself if none was registered.
func (t *keywordAliasTable) AliasOf(keyword string) string {
	if a, ok := t.keywordToAlias[keyword]; ok {
		return a
	}
	return keyword
}

// KeywordFor returns the built-in keyword a user key aliases, and whether
// one was found.
func (t *keywordAliasTable) KeywordFor(key string) (string, bool) {
	kw, ok := t.aliasToKeyword[key]
	return kw, ok
}
