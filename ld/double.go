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

// FormatCanonicalDouble renders v in the canonical JSON-LD double form:
// a sixteen-significant-digit mantissa (one integer digit, fifteen
// fractional digits) and a signed, zero-padded two-digit exponent, e.g.
// "1.500000000000000e+00".
func FormatCanonicalDouble(v float64) string {
	return strconv.FormatFloat(v, 'e', 15, 64)
}
