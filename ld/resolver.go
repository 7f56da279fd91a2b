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
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pquerna/cachecontrol"
)

// ContextURLResolver is the pluggable capability the URL-resolution pass
// invokes for each unique @context URL it discovers. It is the
// language-neutral "injected resolver" of spec.md §4.3.
type ContextURLResolver interface {
	Resolve(url string) (Value, error)
}

// ContextURLResolverFunc adapts a plain function to ContextURLResolver.
type ContextURLResolverFunc func(url string) (Value, error)

func (f ContextURLResolverFunc) Resolve(url string) (Value, error) { return f(url) }

// NotImplementedResolver is the default resolver: it fails every lookup.
// Installing a real resolver (via a DocumentLoader adapter or
// UseURLResolver) is required before resolving any document containing
// a URL-valued @context.
var NotImplementedResolver ContextURLResolver = ContextURLResolverFunc(func(url string) (Value, error) {
	return Value{}, NewJsonLdError(NotImplemented, "no context URL resolver installed", map[string]interface{}{"url": url})
})

// DocumentLoader knows how to load a remote document. It is the
// lower-level capability the HTTP-backed resolvers are built on,
// mirroring the teacher's DocumentLoader/RemoteDocument split.
type DocumentLoader interface {
	LoadDocument(url string) (*RemoteDocument, error)
}

// RemoteDocument is a document retrieved from a remote source.
type RemoteDocument struct {
	DocumentURL string
	Document    Value
}

// documentLoaderResolver adapts a DocumentLoader to ContextURLResolver,
// extracting the @context member of whatever was fetched (an empty map
// if the fetched document carries none).
type documentLoaderResolver struct {
	loader DocumentLoader
}

func (r documentLoaderResolver) Resolve(url string) (Value, error) {
	rd, err := r.loader.LoadDocument(url)
	if err != nil {
		return Value{}, err
	}
	if !rd.Document.IsMap() {
		return Value{}, NewJsonLdError(InvalidURL, "fetched content is not a map", map[string]interface{}{"url": url})
	}
	if ctxVal, ok := rd.Document.Map().Get("@context"); ok {
		return ctxVal, nil
	}
	return NewMapValue(), nil
}

// AsContextURLResolver wraps a DocumentLoader as a ContextURLResolver.
func AsContextURLResolver(loader DocumentLoader) ContextURLResolver {
	return documentLoaderResolver{loader: loader}
}

// DefaultDocumentLoader fetches documents over plain HTTP(S), the Go
// equivalent of the source's built-in cross-origin JSON fetcher.
type DefaultDocumentLoader struct {
	httpClient *http.Client
}

// NewDefaultDocumentLoader creates a DefaultDocumentLoader. A nil client
// uses http.DefaultClient.
func NewDefaultDocumentLoader(httpClient *http.Client) *DefaultDocumentLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DefaultDocumentLoader{httpClient: httpClient}
}

func (dl *DefaultDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	if !IsFetchableURL(u) {
		return nil, NewJsonLdError(InvalidURL, "not a fetchable URL", map[string]interface{}{"url": u})
	}

	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "failed to build request", map[string]interface{}{"url": u, "cause": err})
	}
	req.Header.Set("Accept", "application/ld+json, application/json;q=0.9, */*;q=0.1")

	res, err := dl.httpClient.Do(req)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "request failed", map[string]interface{}{"url": u, "cause": err})
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, NewJsonLdError(ContextURLError,
			fmt.Sprintf("bad response status code: %d", res.StatusCode),
			map[string]interface{}{"url": u})
	}

	doc, err := DecodeJSON(res.Body)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "failed to decode document", map[string]interface{}{"url": u, "cause": err})
	}

	return &RemoteDocument{DocumentURL: u, Document: doc}, nil
}

type cachedDocument struct {
	doc        *RemoteDocument
	expireTime time.Time
	never      bool
}

// RFC7234CachingDocumentLoader fetches like DefaultDocumentLoader and honors
// HTTP cache-control headers via github.com/pquerna/cachecontrol, so a
// context fetched once during a burst of resolutions isn't refetched
// until the server says it may go stale.
type RFC7234CachingDocumentLoader struct {
	httpClient *http.Client
	mu         sync.Mutex
	cache      map[string]*cachedDocument
}

// NewRFC7234CachingDocumentLoader creates a caching HTTP document loader.
func NewRFC7234CachingDocumentLoader(httpClient *http.Client) *RFC7234CachingDocumentLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RFC7234CachingDocumentLoader{
		httpClient: httpClient,
		cache:      make(map[string]*cachedDocument),
	}
}

func (cl *RFC7234CachingDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	now := time.Now()

	cl.mu.Lock()
	if entry, ok := cl.cache[u]; ok && (entry.never || entry.expireTime.After(now)) {
		cl.mu.Unlock()
		return entry.doc, nil
	}
	cl.mu.Unlock()

	if !IsFetchableURL(u) {
		return nil, NewJsonLdError(InvalidURL, "not a fetchable URL", map[string]interface{}{"url": u})
	}

	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "failed to build request", map[string]interface{}{"url": u, "cause": err})
	}
	req.Header.Set("Accept", "application/ld+json, application/json;q=0.9, */*;q=0.1")

	res, err := cl.httpClient.Do(req)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "request failed", map[string]interface{}{"url": u, "cause": err})
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, NewJsonLdError(ContextURLError,
			fmt.Sprintf("bad response status code: %d", res.StatusCode),
			map[string]interface{}{"url": u})
	}

	doc, err := DecodeJSON(res.Body)
	if err != nil {
		return nil, NewJsonLdError(ContextURLError, "failed to decode document", map[string]interface{}{"url": u, "cause": err})
	}

	remoteDoc := &RemoteDocument{DocumentURL: u, Document: doc}

	reasons, expireTime, ccErr := cachecontrol.CachableResponse(req, res, cachecontrol.Options{})
	if ccErr == nil && len(reasons) == 0 {
		cl.mu.Lock()
		cl.cache[u] = &cachedDocument{doc: remoteDoc, expireTime: expireTime}
		cl.mu.Unlock()
	}

	return remoteDoc, nil
}

// CachingDocumentLoader preloads in-memory documents, for tests that
// want to stand in for a network fetch. Mirrors the teacher's
// CachingDocumentLoader/PreloadWithMapping pair.
type CachingDocumentLoader struct {
	mu    sync.Mutex
	cache map[string]*RemoteDocument
}

// NewCachingDocumentLoader creates an empty preloadable document loader.
func NewCachingDocumentLoader() *CachingDocumentLoader {
	return &CachingDocumentLoader{cache: make(map[string]*RemoteDocument)}
}

func (cdl *CachingDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	cdl.mu.Lock()
	defer cdl.mu.Unlock()
	if doc, ok := cdl.cache[u]; ok {
		return doc, nil
	}
	return nil, NewJsonLdError(ContextURLError, "document not preloaded", map[string]interface{}{"url": u})
}

// AddDocument preloads a document for url.
func (cdl *CachingDocumentLoader) AddDocument(url string, doc Value) {
	cdl.mu.Lock()
	defer cdl.mu.Unlock()
	cdl.cache[url] = &RemoteDocument{DocumentURL: url, Document: doc}
}

// UseURLResolver installs a named resolver kind, forwarding params
// directly to its constructor. The source's JS equivalent slices
// `arguments` starting at index 1 even when called with a single
// non-array argument, which is almost certainly a bug (spec.md §9(c));
// this port instead accepts a plain variadic parameter list. Only the
// "memory" kind reads params, as (url string, document Value) pairs;
// pairs of any other types are skipped, and the "http" and
// "http-cached" kinds ignore params.
func UseURLResolver(kind string, params ...interface{}) (ContextURLResolver, error) {
	switch kind {
	case "http":
		return AsContextURLResolver(NewDefaultDocumentLoader(nil)), nil
	case "http-cached":
		return AsContextURLResolver(NewRFC7234CachingDocumentLoader(nil)), nil
	case "memory":
		loader := NewCachingDocumentLoader()
		for i := 0; i+1 < len(params); i += 2 {
			url, isURL := params[i].(string)
			doc, isDoc := params[i+1].(Value)
			if isURL && isDoc {
				loader.AddDocument(url, doc)
			}
		}
		return AsContextURLResolver(loader), nil
	default:
		return nil, NewJsonLdError(UnknownURLResolver, kind, map[string]interface{}{"kind": kind})
	}
}
