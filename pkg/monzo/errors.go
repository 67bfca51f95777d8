/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package monzo

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons a payload can fail to decode. Every *DecodeError carries exactly one.
var (
	ErrMalformedJSON    = errors.New("malformed json")
	ErrMissingField     = errors.New("missing required field")
	ErrTypeMismatch     = errors.New("unexpected json type")
	ErrInvalidURL       = errors.New("invalid url")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidEmoji     = errors.New("emoji must be exactly one unicode scalar value")
	ErrUnknownEventType = errors.New("unrecognized webhook event type")
)

var errEmptyEvent = errors.New("webhook event has no payload")

// DecodeError describes why a payload was rejected.
//
// Field is the JSON path of the offending value, e.g. "data.merchant.emoji"
// or "webhooks[1].url". It is empty when the document itself is at fault.
type DecodeError struct {
	Field  string
	Reason error
	Err    error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode")
	if e.Field != "" {
		fmt.Fprintf(&b, " %s", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// withPath returns a copy of err scoped under the given field or index segment.
func withPath(err error, segment string) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return &DecodeError{Field: segment, Reason: ErrTypeMismatch, Err: err}
	}

	scoped := *de
	switch {
	case scoped.Field == "":
		scoped.Field = segment
	case strings.HasPrefix(scoped.Field, "["):
		scoped.Field = segment + scoped.Field
	default:
		scoped.Field = segment + "." + scoped.Field
	}
	return &scoped
}
