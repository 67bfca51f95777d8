package monzo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustParseURL(t *testing.T, s string) URL {
	t.Helper()
	u, err := ParseURL(s)
	if err != nil {
		t.Fatalf("ParseURL(%q) failed: %v", s, err)
	}
	return u
}

func TestDecodeTransactionCreatedExample(t *testing.T) {
	event, err := DecodeString[WebhookEvent](TransactionCreatedExample)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if event.Type() != EventTypeTransactionCreated {
		t.Errorf("Expected type %s, got %s", EventTypeTransactionCreated, event.Type())
	}

	tx, ok := event.TransactionCreated()
	if !ok {
		t.Fatalf("Expected a TransactionCreated payload, got %T", event.Payload)
	}

	want := TransactionCreated{
		AccountID:   "acc_00008gju41AHyfLUzBUk8A",
		Amount:      -350,
		Created:     time.Date(2015, 9, 4, 14, 28, 40, 0, time.UTC),
		Currency:    "GBP",
		Description: "Ozone Coffee Roasters",
		ID:          "tx_00008zjky19HyFLAzlUk7t",
		Category:    "eating_out",
		IsLoad:      false,
		Settled:     time.Date(2015, 9, 5, 14, 28, 40, 0, time.UTC),
		Merchant: Merchant{
			Address: Address{
				Address:   "98 Southgate Road",
				City:      "London",
				Country:   "GB",
				Latitude:  51.54151,
				Longitude: -0.08482400000002599,
				Postcode:  "N1 3JD",
				Region:    "Greater London",
			},
			Created:  time.Date(2015, 8, 22, 12, 20, 18, 0, time.UTC),
			GroupID:  "grp_00008zIcpbBOaAr7TTP3sv",
			ID:       "merch_00008zIcpbAKe8shBxXUtl",
			Logo:     "https://pbs.twimg.com/profile_images/527043602623389696/68_SgUWJ.jpeg",
			Emoji:    '🍞',
			Name:     "The De Beauvoir Deli Co.",
			Category: "eating_out",
		},
	}
	if diff := cmp.Diff(want, tx); diff != "" {
		t.Errorf("Decoded transaction mismatch (-want +got):\n%s", diff)
	}

	if tx.Merchant.Emoji.String() != "🍞" {
		t.Errorf("Expected emoji 🍞, got %q", tx.Merchant.Emoji.String())
	}
	if !tx.IsDebit() {
		t.Error("Expected a negative amount to be a debit")
	}
}

func TestDecodeWhoAmIExample(t *testing.T) {
	who, err := DecodeString[WhoAmI](WhoAmIExample)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := WhoAmI{
		Authenticated: true,
		ClientID:      "oauthclient_00009Tmb0TTo2aFEmXMBR",
		UserID:        "user_00009238aMBIIrS5Rdncq9",
	}
	if diff := cmp.Diff(want, who); diff != "" {
		t.Errorf("Decoded identity mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRegisterWebhookExample(t *testing.T) {
	hook, err := DecodeString[Webhook](RegisterWebhookExample)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := Webhook{Webhook: WebhookInner{
		AccountID: "account_id",
		ID:        "webhook_id",
		URL:       mustParseURL(t, "http://example.com"),
	}}
	if diff := cmp.Diff(want, hook); diff != "" {
		t.Errorf("Decoded webhook mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeListWebhooksPreservesOrder(t *testing.T) {
	hooks, err := DecodeString[Webhooks](ListWebhooksExample)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(hooks.Webhooks) != 2 {
		t.Fatalf("Expected 2 webhooks, got %d", len(hooks.Webhooks))
	}

	wantIds := []string{"webhook_000091yhhOmrXQaVZ1Irsv", "webhook_000091yhhzvJSxLYGAceC9"}
	wantUrls := []string{"http://example.com/callback", "http://example2.com/anothercallback"}
	for i, hook := range hooks.Webhooks {
		if hook.ID != wantIds[i] {
			t.Errorf("webhooks[%d]: expected id %s, got %s", i, wantIds[i], hook.ID)
		}
		if hook.URL.String() != wantUrls[i] {
			t.Errorf("webhooks[%d]: expected url %s, got %s", i, wantUrls[i], hook.URL.String())
		}
		if hook.AccountID != "acc_000091yf79yMwNaZHhHGzp" {
			t.Errorf("webhooks[%d]: unexpected account id %s", i, hook.AccountID)
		}
	}
}

func decodeErr[T Entity](text string) error {
	_, err := DecodeString[T](text)
	return err
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		decode func(string) error
		input  string
		reason error
		field  string
	}{
		{
			name:   "unknown event type",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"transaction.created"`, `"unknown.event"`, 1),
			reason: ErrUnknownEventType,
			field:  "type",
		},
		{
			name:   "missing event type",
			decode: decodeErr[WebhookEvent],
			input:  `{"data": {}}`,
			reason: ErrMissingField,
			field:  "type",
		},
		{
			name:   "missing event data",
			decode: decodeErr[WebhookEvent],
			input:  `{"type": "transaction.created"}`,
			reason: ErrMissingField,
			field:  "data",
		},
		{
			name:   "data does not match tag",
			decode: decodeErr[WebhookEvent],
			input:  `{"type": "transaction.created", "data": "tx_1"}`,
			reason: ErrTypeMismatch,
			field:  "data",
		},
		{
			name:   "data missing a required field",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"currency": "GBP",`, "", 1),
			reason: ErrMissingField,
			field:  "data.currency",
		},
		{
			name:   "two character emoji",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"emoji": "🍞"`, `"emoji": "ab"`, 1),
			reason: ErrInvalidEmoji,
			field:  "data.merchant.emoji",
		},
		{
			name:   "empty emoji",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"emoji": "🍞"`, `"emoji": ""`, 1),
			reason: ErrInvalidEmoji,
			field:  "data.merchant.emoji",
		},
		{
			name:   "timestamp without offset",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"created": "2015-09-04T14:28:40Z"`, `"created": "2015-09-04T14:28:40"`, 1),
			reason: ErrInvalidTimestamp,
			field:  "data.created",
		},
		{
			name:   "timestamp that is not a date",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"settled": "2015-09-05T14:28:40Z"`, `"settled": "yesterday"`, 1),
			reason: ErrInvalidTimestamp,
			field:  "data.settled",
		},
		{
			name:   "amount as string",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"amount": -350`, `"amount": "-350"`, 1),
			reason: ErrTypeMismatch,
			field:  "data.amount",
		},
		{
			name:   "fractional amount",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"amount": -350`, `"amount": -3.5`, 1),
			reason: ErrTypeMismatch,
			field:  "data.amount",
		},
		{
			name:   "null description",
			decode: decodeErr[WebhookEvent],
			input:  strings.Replace(TransactionCreatedExample, `"description": "Ozone Coffee Roasters"`, `"description": null`, 1),
			reason: ErrTypeMismatch,
			field:  "data.description",
		},
		{
			name:   "url that is not a url",
			decode: decodeErr[Webhook],
			input:  strings.Replace(RegisterWebhookExample, `"http://example.com"`, `"not a url"`, 1),
			reason: ErrInvalidURL,
			field:  "webhook.url",
		},
		{
			name:   "url without host",
			decode: decodeErr[WebhookInner],
			input:  `{"account_id": "acc_1", "id": "webhook_1", "url": "http://"}`,
			reason: ErrInvalidURL,
			field:  "url",
		},
		{
			name:   "invalid url in list",
			decode: decodeErr[Webhooks],
			input:  strings.Replace(ListWebhooksExample, `"http://example2.com/anothercallback"`, `"example2.com"`, 1),
			reason: ErrInvalidURL,
			field:  "webhooks[1].url",
		},
		{
			name:   "webhooks is not a list",
			decode: decodeErr[Webhooks],
			input:  `{"webhooks": {}}`,
			reason: ErrTypeMismatch,
			field:  "webhooks",
		},
		{
			name:   "field names are case sensitive",
			decode: decodeErr[WhoAmI],
			input:  `{"Authenticated": true, "client_id": "c", "user_id": "u"}`,
			reason: ErrMissingField,
			field:  "authenticated",
		},
		{
			name:   "malformed json",
			decode: decodeErr[WhoAmI],
			input:  `{"authenticated": true,`,
			reason: ErrMalformedJSON,
			field:  "",
		},
		{
			name:   "document is not an object",
			decode: decodeErr[Address],
			input:  `["London"]`,
			reason: ErrTypeMismatch,
			field:  "",
		},
		{
			name:   "null document",
			decode: decodeErr[WhoAmI],
			input:  `null`,
			reason: ErrTypeMismatch,
			field:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(tt.input)
			if err == nil {
				t.Fatal("Expected decode to fail")
			}
			if !errors.Is(err, tt.reason) {
				t.Errorf("Expected reason %v, got %v", tt.reason, err)
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Expected *DecodeError, got %T", err)
			}
			if de.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, de.Field)
			}
		})
	}
}

func TestDecodeFlagEmojiFails(t *testing.T) {
	input := strings.Replace(TransactionCreatedExample, `"emoji": "🍞"`, `"emoji": "🇬🇧"`, 1)
	_, err := DecodeString[WebhookEvent](input)
	if !errors.Is(err, ErrInvalidEmoji) {
		t.Errorf("Expected ErrInvalidEmoji, got %v", err)
	}
}

func TestDecodeFailureReturnsZeroValue(t *testing.T) {
	input := strings.Replace(TransactionCreatedExample, `"is_load": false,`, "", 1)
	event, err := DecodeString[WebhookEvent](input)
	if err == nil {
		t.Fatal("Expected decode to fail")
	}
	if event.Payload != nil {
		t.Errorf("Expected no payload on failure, got %#v", event.Payload)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	who, err := DecodeString[WhoAmI](`{
		"authenticated": false,
		"client_id": "client",
		"user_id": "user",
		"scopes": ["accounts:read"]
	}`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if who.Authenticated || who.ClientID != "client" || who.UserID != "user" {
		t.Errorf("Unexpected identity %+v", who)
	}
}

func TestDecodeNormalisesTimestampsToUTC(t *testing.T) {
	input := strings.Replace(TransactionCreatedExample, `"created": "2015-09-04T14:28:40Z"`, `"created": "2015-09-04T15:28:40+01:00"`, 1)
	event, err := DecodeString[WebhookEvent](input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	tx, _ := event.TransactionCreated()
	want := time.Date(2015, 9, 4, 14, 28, 40, 0, time.UTC)
	if !tx.Created.Equal(want) {
		t.Errorf("Expected %s, got %s", want, tx.Created)
	}
	if tx.Created.Location() != time.UTC {
		t.Errorf("Expected UTC location, got %s", tx.Created.Location())
	}
}

func TestDecodeEmptyWebhookList(t *testing.T) {
	hooks, err := DecodeString[Webhooks](`{"webhooks": []}`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(hooks.Webhooks) != 0 {
		t.Errorf("Expected no webhooks, got %d", len(hooks.Webhooks))
	}
}

func TestKnownEventTypes(t *testing.T) {
	if diff := cmp.Diff([]string{"transaction.created"}, KnownEventTypes()); diff != "" {
		t.Errorf("KnownEventTypes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Field: "data.merchant.emoji", Reason: ErrInvalidEmoji, Err: errors.New(`got 2 code points in "ab"`)}
	want := `decode data.merchant.emoji: emoji must be exactly one unicode scalar value (got 2 code points in "ab")`
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	err = &DecodeError{Reason: ErrMalformedJSON}
	if err.Error() != "decode: malformed json" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
