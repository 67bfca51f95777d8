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
	"time"
	"unicode/utf8"
)

// Emoji is a single Unicode scalar value. It travels as a one-character string.
type Emoji rune

func (e Emoji) String() string {
	return string(rune(e))
}

func (e Emoji) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *Emoji) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return classify(err)
	}

	if n := utf8.RuneCountInString(s); n != 1 {
		return &DecodeError{Reason: ErrInvalidEmoji, Err: fmt.Errorf("got %d code points in %q", n, s)}
	}

	r, _ := utf8.DecodeRuneInString(s)
	*e = Emoji(r)
	return nil
}

// Address is where a merchant trades.
type Address struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Postcode  string  `json:"postcode"`
	Region    string  `json:"region"`
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var out Address
	if err := decodeFields(data,
		bind("address", &out.Address),
		bind("city", &out.City),
		bind("country", &out.Country),
		bind("latitude", &out.Latitude),
		bind("longitude", &out.Longitude),
		bind("postcode", &out.Postcode),
		bind("region", &out.Region),
	); err != nil {
		return err
	}

	*a = out
	return nil
}

// Merchant is the counterparty of a card transaction. Logo is kept as the
// raw string the provider sends.
type Merchant struct {
	Address  Address   `json:"address"`
	Created  time.Time `json:"created"`
	GroupID  string    `json:"group_id"`
	ID       string    `json:"id"`
	Logo     string    `json:"logo"`
	Emoji    Emoji     `json:"emoji"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func (m *Merchant) UnmarshalJSON(data []byte) error {
	var out Merchant
	if err := decodeFields(data,
		bind("address", &out.Address),
		bind("created", &out.Created),
		bind("group_id", &out.GroupID),
		bind("id", &out.ID),
		bind("logo", &out.Logo),
		bind("emoji", &out.Emoji),
		bind("name", &out.Name),
		bind("category", &out.Category),
	); err != nil {
		return err
	}

	*m = out
	return nil
}

// TransactionCreated is the payload of a "transaction.created" webhook event.
// Amount is in minor units of Currency; debits are negative.
type TransactionCreated struct {
	AccountID   string    `json:"account_id"`
	Amount      int64     `json:"amount"`
	Created     time.Time `json:"created"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	IsLoad      bool      `json:"is_load"`
	Settled     time.Time `json:"settled"`
	Merchant    Merchant  `json:"merchant"`
}

func (t *TransactionCreated) UnmarshalJSON(data []byte) error {
	var out TransactionCreated
	if err := decodeFields(data,
		bind("account_id", &out.AccountID),
		bind("amount", &out.Amount),
		bind("created", &out.Created),
		bind("currency", &out.Currency),
		bind("description", &out.Description),
		bind("id", &out.ID),
		bind("category", &out.Category),
		bind("is_load", &out.IsLoad),
		bind("settled", &out.Settled),
		bind("merchant", &out.Merchant),
	); err != nil {
		return err
	}

	*t = out
	return nil
}

func (TransactionCreated) EventType() string { return EventTypeTransactionCreated }

func (TransactionCreated) isEventPayload() {}

// IsDebit reports whether money left the account.
func (t TransactionCreated) IsDebit() bool {
	return t.Amount < 0
}
