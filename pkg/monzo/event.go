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
	"encoding/json"
	"fmt"
	"sort"
)

// EventTypeTransactionCreated tags a TransactionCreated payload.
const EventTypeTransactionCreated = "transaction.created"

// EventPayload is implemented by every webhook event variant.
// New variants are added alongside a new entry in eventDecoders.
type EventPayload interface {
	EventType() string
	isEventPayload()
}

type payloadDecoder func(data json.RawMessage) (EventPayload, error)

var eventDecoders = map[string]payloadDecoder{
	EventTypeTransactionCreated: decodePayload[TransactionCreated],
}

func decodePayload[T EventPayload](data json.RawMessage) (EventPayload, error) {
	var payload T
	if err := decodeValue(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// KnownEventTypes returns the event type tags this package can decode, sorted.
func KnownEventTypes() []string {
	types := make([]string, 0, len(eventDecoders))
	for t := range eventDecoders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// WebhookEvent is a webhook delivery body: a "type" tag and the "data" it
// describes. Unrecognized tags fail to decode with ErrUnknownEventType so
// callers can tell them apart from malformed deliveries.
type WebhookEvent struct {
	Payload EventPayload
}

func NewWebhookEvent(payload EventPayload) WebhookEvent {
	return WebhookEvent{Payload: payload}
}

// Type returns the event's tag, or "" for the zero value.
func (e WebhookEvent) Type() string {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventType()
}

// TransactionCreated returns the payload if the event is a "transaction.created".
func (e WebhookEvent) TransactionCreated() (TransactionCreated, bool) {
	tx, ok := e.Payload.(TransactionCreated)
	return tx, ok
}

type wireEvent struct {
	Type string       `json:"type"`
	Data EventPayload `json:"data"`
}

func (e WebhookEvent) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return nil, errEmptyEvent
	}
	return json.Marshal(wireEvent{Type: e.Payload.EventType(), Data: e.Payload})
}

func (e *WebhookEvent) UnmarshalJSON(data []byte) error {
	var (
		eventType string
		raw       json.RawMessage
	)
	if err := decodeFields(data,
		bind("type", &eventType),
		bind("data", &raw),
	); err != nil {
		return err
	}

	decode, ok := eventDecoders[eventType]
	if !ok {
		return &DecodeError{Field: "type", Reason: ErrUnknownEventType, Err: fmt.Errorf("%q", eventType)}
	}

	payload, err := decode(raw)
	if err != nil {
		return withPath(err, "data")
	}

	*e = WebhookEvent{Payload: payload}
	return nil
}
