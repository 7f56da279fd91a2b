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

import "sync"

// ResolveURLs performs the two-traversal, one-fetch-phase pass described
// in spec.md §4.3: it discovers every string @context reference, fetches
// each unique URL at most once (concurrently) via resolver, then
// replaces each reference in place with the fetched content's @context
// value (or an empty map if the fetched document carried none).
//
// Discovery fully completes before any fetch is issued, all fetches
// settle before replacement begins, and replacement is driven by a
// second, deterministic tree walk rather than fetch-completion order.
func ResolveURLs(doc Value, resolver ContextURLResolver) (Value, error) {
	seen := map[string]bool{}
	discoverContextURLs(doc, seen)
	if len(seen) == 0 {
		return doc, nil
	}

	if resolver == nil {
		resolver = NotImplementedResolver
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}

	results := make(map[string]Value, len(urls))
	errs := make(map[string]error)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, u := range urls {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()

			if !IsFetchableURL(u) {
				mu.Lock()
				errs[u] = NewJsonLdError(InvalidURL, "not a fetchable URL", map[string]interface{}{"url": u})
				mu.Unlock()
				return
			}

			ctxVal, err := resolver.Resolve(u)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[u] = err
				return
			}
			results[u] = ctxVal
		}(u)
	}
	wg.Wait()

	if len(errs) > 0 {
		details := make(map[string]interface{}, len(errs))
		for u, e := range errs {
			details[u] = e.Error()
		}
		return Value{}, NewJsonLdError(ContextURLError, "one or more context URLs failed to resolve", details)
	}

	return substituteContextURLs(doc, results), nil
}

func discoverContextURLs(v Value, seen map[string]bool) {
	switch v.Kind() {
	case KindSeq:
		for _, item := range v.SeqItems() {
			discoverContextURLs(item, seen)
		}
	case KindMap:
		for _, k := range v.Map().Keys() {
			val, _ := v.Map().Get(k)
			if k == "@context" {
				collectContextStrings(val, seen)
			}
			discoverContextURLs(val, seen)
		}
	}
}

func collectContextStrings(v Value, seen map[string]bool) {
	if v.IsString() {
		seen[v.Str()] = true
		return
	}
	if v.IsSeq() {
		for _, item := range v.SeqItems() {
			collectContextStrings(item, seen)
		}
	}
}

func substituteContextURLs(v Value, results map[string]Value) Value {
	switch v.Kind() {
	case KindSeq:
		items := make([]Value, len(v.SeqItems()))
		for i, item := range v.SeqItems() {
			items[i] = substituteContextURLs(item, results)
		}
		return SeqOf(items)
	case KindMap:
		out := NewOMap()
		for _, k := range v.Map().Keys() {
			val, _ := v.Map().Get(k)
			if k == "@context" {
				out.Set(k, substituteContextValue(val, results))
				continue
			}
			out.Set(k, substituteContextURLs(val, results))
		}
		return MapOf(out)
	default:
		return v
	}
}

func substituteContextValue(v Value, results map[string]Value) Value {
	if v.IsString() {
		if resolved, ok := results[v.Str()]; ok {
			return resolved
		}
		return v
	}
	if v.IsSeq() {
		items := make([]Value, len(v.SeqItems()))
		for i, item := range v.SeqItems() {
			items[i] = substituteContextValue(item, results)
		}
		return SeqOf(items)
	}
	return v
}
