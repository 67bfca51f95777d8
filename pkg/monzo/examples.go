package monzo

// Example payloads, as published in the provider's API documentation.
const (
	WhoAmIExample = `{
		"authenticated": true,
		"client_id": "oauthclient_00009Tmb0TTo2aFEmXMBR",
		"user_id": "user_00009238aMBIIrS5Rdncq9"
	}`

	TransactionCreatedExample = `{
		"type": "transaction.created",
		"data": {
			"account_id": "acc_00008gju41AHyfLUzBUk8A",
			"amount": -350,
			"created": "2015-09-04T14:28:40Z",
			"currency": "GBP",
			"description": "Ozone Coffee Roasters",
			"id": "tx_00008zjky19HyFLAzlUk7t",
			"category": "eating_out",
			"is_load": false,
			"settled": "2015-09-05T14:28:40Z",
			"merchant": {
				"address": {
					"address": "98 Southgate Road",
					"city": "London",
					"country": "GB",
					"latitude": 51.54151,
					"longitude": -0.08482400000002599,
					"postcode": "N1 3JD",
					"region": "Greater London"
				},
				"created": "2015-08-22T12:20:18Z",
				"group_id": "grp_00008zIcpbBOaAr7TTP3sv",
				"id": "merch_00008zIcpbAKe8shBxXUtl",
				"logo": "https://pbs.twimg.com/profile_images/527043602623389696/68_SgUWJ.jpeg",
				"emoji": "🍞",
				"name": "The De Beauvoir Deli Co.",
				"category": "eating_out"
			}
		}
	}`

	RegisterWebhookExample = `{
		"webhook": {
			"account_id": "account_id",
			"id": "webhook_id",
			"url": "http://example.com"
		}
	}`

	ListWebhooksExample = `{
		"webhooks": [
			{
				"account_id": "acc_000091yf79yMwNaZHhHGzp",
				"id": "webhook_000091yhhOmrXQaVZ1Irsv",
				"url": "http://example.com/callback"
			},
			{
				"account_id": "acc_000091yf79yMwNaZHhHGzp",
				"id": "webhook_000091yhhzvJSxLYGAceC9",
				"url": "http://example2.com/anothercallback"
			}
		]
	}`
)

// Example is a named payload together with the kind of entity it decodes to.
type Example struct {
	Name    string
	Kind    string
	Payload string
}

// Examples returns every built-in example payload.
func Examples() []Example {
	return []Example{
		{Name: "whoami", Kind: "whoami", Payload: WhoAmIExample},
		{Name: "transaction-created", Kind: "event", Payload: TransactionCreatedExample},
		{Name: "register-webhook", Kind: "webhook", Payload: RegisterWebhookExample},
		{Name: "list-webhooks", Kind: "webhooks", Payload: ListWebhooksExample},
	}
}
