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

import "fmt"

// ErrorCode is a stable identifier a caller can switch on.
type ErrorCode string

const (
	SyntaxError        ErrorCode = "syntax error"
	CyclicalContext    ErrorCode = "cyclical context"
	InvalidContext     ErrorCode = "invalid context"
	ContextURLError    ErrorCode = "context url error"
	InvalidURL         ErrorCode = "invalid url"
	UnknownURLResolver ErrorCode = "unknown url resolver"
	CompactError       ErrorCode = "compact error"
	NotImplemented     ErrorCode = "not implemented"
)

// JsonLdError carries a stable error kind plus a human-readable message
// and an optional details payload (which may itself hold a wrapped cause).
type JsonLdError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
}

// NewJsonLdError creates a new JsonLdError.
func NewJsonLdError(code ErrorCode, message string, details map[string]interface{}) *JsonLdError {
	return &JsonLdError{Code: code, Message: message, Details: details}
}

func (e *JsonLdError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

// WithCause returns a copy of e with details["cause"] set, for building a
// wrapped-error chain without losing the stable Code.
func (e *JsonLdError) WithCause(cause error) *JsonLdError {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = cause
	return &JsonLdError{Code: e.Code, Message: e.Message, Details: details}
}
