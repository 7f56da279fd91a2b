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
	"encoding/json"
	"io"
	"sort"
)

// FromJSONInterface converts a value produced by encoding/json (the
// family nil/bool/string/float64/json.Number/[]interface{}/map[string]interface{})
// into a Value. Map keys are visited in sorted order on the way in,
// since Go's map iteration order is random and this is the only point
// where JSON's own (irrelevant, per RFC 8259) key order would otherwise
// leak through nondeterministically.
func FromJSONInterface(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return Str(t)
	case float64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Str(t.String())
		}
		return Number(f)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case []interface{}:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromJSONInterface(e)
		}
		return SeqOf(items)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewOMap()
		for _, k := range keys {
			m.Set(k, FromJSONInterface(t[k]))
		}
		return MapOf(m)
	default:
		return Null()
	}
}

// ToJSONInterface converts a Value back into the plain interface{} tree
// encoding/json expects, e.g. for (*json.Encoder).Encode.
func ToJSONInterface(v Value) interface{} {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool()
	case KindString:
		return v.Str()
	case KindNumber:
		f, isDouble := v.Num()
		if isDouble {
			return f
		}
		return int64(f)
	case KindSeq:
		items := v.SeqItems()
		out := make([]interface{}, len(items))
		for i, it := range items {
			out[i] = ToJSONInterface(it)
		}
		return out
	case KindMap:
		out := make(map[string]interface{})
		for _, k := range v.Map().Keys() {
			val, _ := v.Map().Get(k)
			out[k] = ToJSONInterface(val)
		}
		return out
	default:
		return nil
	}
}

// DecodeJSON reads a single JSON document from r and converts it to a Value.
func DecodeJSON(r io.Reader) (Value, error) {
	var raw interface{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Value{}, NewJsonLdError(InvalidContext, "failed to decode JSON document", map[string]interface{}{"cause": err})
	}
	return FromJSONInterface(raw), nil
}
