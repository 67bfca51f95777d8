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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Entity lists every type that can be decoded from or encoded to the wire format.
type Entity interface {
	WhoAmI | WebhookInner | Webhook | Webhooks | WebhookEvent | TransactionCreated | Merchant | Address
}

// Decode parses a JSON document into an entity. It fails with a *DecodeError
// and the zero value if any required field is missing or invalid.
func Decode[T Entity](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, classify(err)
	}
	return v, nil
}

// DecodeString is Decode for payloads held as strings, such as WhoAmIExample.
func DecodeString[T Entity](text string) (T, error) {
	return Decode[T]([]byte(text))
}

// Encode serializes an entity using the same field names Decode expects.
func Encode[T Entity](v T) ([]byte, error) {
	return json.Marshal(v)
}

// object is a decoded JSON object whose members have not been interpreted yet.
type object map[string]json.RawMessage

type binding struct {
	name string
	dst  any
}

func bind(name string, dst any) binding {
	return binding{name: name, dst: dst}
}

// decodeFields decodes data as an object and fills every binding, in order.
// Members without a binding are ignored. The first failure wins.
func decodeFields(data []byte, bindings ...binding) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	for _, b := range bindings {
		if err := obj.field(b.name, b.dst); err != nil {
			return err
		}
	}
	return nil
}

func decodeObject(data []byte) (object, error) {
	if isNull(data) {
		return nil, &DecodeError{Reason: ErrTypeMismatch, Err: errors.New("expected object, got null")}
	}

	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, classify(err)
	}
	return obj, nil
}

func (o object) field(name string, dst any) error {
	raw, ok := o[name]
	if !ok {
		return &DecodeError{Field: name, Reason: ErrMissingField}
	}
	if err := decodeValue(raw, dst); err != nil {
		return withPath(err, name)
	}
	return nil
}

func decodeValue(raw json.RawMessage, dst any) error {
	if isNull(raw) {
		return &DecodeError{Reason: ErrTypeMismatch, Err: errors.New("unexpected null")}
	}

	if ts, ok := dst.(*time.Time); ok {
		return decodeTimestamp(raw, ts)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return classify(err)
	}
	return nil
}

// decodeTimestamp accepts RFC 3339 date-times only, so an offset is always
// present, and normalises the instant to UTC.
func decodeTimestamp(raw json.RawMessage, dst *time.Time) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return classify(err)
	}

	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return &DecodeError{Reason: ErrInvalidTimestamp, Err: err}
	}
	*dst = ts.UTC()
	return nil
}

// classify maps encoding/json failures onto the DecodeError taxonomy.
func classify(err error) error {
	var (
		decodeErr *DecodeError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &decodeErr):
		return decodeErr
	case errors.As(err, &syntaxErr):
		return &DecodeError{Reason: ErrMalformedJSON, Err: err}
	case errors.As(err, &typeErr):
		return &DecodeError{Reason: ErrTypeMismatch, Err: fmt.Errorf("expected %v, got json %s", typeErr.Type, typeErr.Value)}
	default:
		return &DecodeError{Reason: ErrTypeMismatch, Err: err}
	}
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
