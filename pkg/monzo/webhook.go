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
	"errors"
	"fmt"
	"net/url"
)

// URL is an absolute URL, such as a webhook callback address.
type URL struct {
	url.URL
}

// ParseURL parses s and rejects anything that is not an absolute URL.
func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, err
	}
	if !u.IsAbs() {
		return URL{}, fmt.Errorf("%q has no scheme", s)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return URL{}, fmt.Errorf("%q has no host", s)
	}
	return URL{URL: *u}, nil
}

func (u URL) String() string {
	return u.URL.String()
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return classify(err)
	}

	parsed, err := ParseURL(s)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &DecodeError{Reason: ErrInvalidURL, Err: err}
	}

	*u = parsed
	return nil
}

// WebhookInner is a single registered webhook.
type WebhookInner struct {
	AccountID string `json:"account_id"`
	ID        string `json:"id"`
	URL       URL    `json:"url"`
}

func (w *WebhookInner) UnmarshalJSON(data []byte) error {
	var out WebhookInner
	if err := decodeFields(data,
		bind("account_id", &out.AccountID),
		bind("id", &out.ID),
		bind("url", &out.URL),
	); err != nil {
		return err
	}

	*w = out
	return nil
}

// Webhook is the envelope returned when a webhook is registered.
type Webhook struct {
	Webhook WebhookInner `json:"webhook"`
}

func (w *Webhook) UnmarshalJSON(data []byte) error {
	var out Webhook
	if err := decodeFields(data, bind("webhook", &out.Webhook)); err != nil {
		return err
	}

	*w = out
	return nil
}

// Webhooks is the envelope returned when listing an account's webhooks.
// Entries keep the order the provider sent them in.
type Webhooks struct {
	Webhooks []WebhookInner `json:"webhooks"`
}

// MarshalJSON writes an empty list rather than null, which Decode would reject.
func (w Webhooks) MarshalJSON() ([]byte, error) {
	list := w.Webhooks
	if list == nil {
		list = []WebhookInner{}
	}
	return json.Marshal(struct {
		Webhooks []WebhookInner `json:"webhooks"`
	}{list})
}

func (w *Webhooks) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := decodeFields(data, bind("webhooks", &raw)); err != nil {
		return err
	}

	var out Webhooks
	for i, item := range raw {
		var inner WebhookInner
		if err := decodeValue(item, &inner); err != nil {
			return withPath(withPath(err, fmt.Sprintf("[%d]", i)), "webhooks")
		}
		out.Webhooks = append(out.Webhooks, inner)
	}

	*w = out
	return nil
}
