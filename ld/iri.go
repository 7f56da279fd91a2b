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

import "regexp"

// absoluteIRIPattern matches the spec's loose absolute-IRI grammar:
// scheme://rest, no internal whitespace.
var absoluteIRIPattern = regexp.MustCompile(`^\w+://\S+$`)

// fetchableURLPattern additionally requires an http(s) scheme.
var fetchableURLPattern = regexp.MustCompile(`^(?:http|https)://\S+$`)

// IsAbsoluteIRI returns true if value matches \w+://\S+.
func IsAbsoluteIRI(value string) bool {
	return absoluteIRIPattern.MatchString(value)
}

// IsFetchableURL returns true if value is an http(s) URL eligible for
// context-URL resolution.
func IsFetchableURL(value string) bool {
	return fetchableURLPattern.MatchString(value)
}
