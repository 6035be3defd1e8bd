// Package swikly provides a Go client SDK for the Swikly API, which secures
// deposits, no-show guarantees and payments through requests sent to end
// users.
//
// Basic usage:
//
//	client, err := swikly.New(
//	    swikly.WithToken("your-token"),
//	    swikly.WithEnvironment(swikly.EnvironmentSandbox),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	req, err := client.Requests.Create(ctx, accountID, swikly.CreateRequestParams{
//	    Description: "Flat rental, 12-19 July",
//	    Language:    "en",
//	    Email:       swikly.String("guest@example.com"),
//	    Deposit:     swikly.Object{"amount": 50000, "startDate": "2025-07-12", "endDate": "2025-07-19"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Send this link:", req.Link)
//
// # Errors
//
// Non-2xx responses are returned as *APIError and match the sentinels with
// errors.Is:
//
//	if errors.Is(err, swikly.ErrValidation) {
//	    var apiErr *swikly.APIError
//	    errors.As(err, &apiErr)
//	    fmt.Println(string(apiErr.Errors))
//	}
//
// 429 responses carrying Retry-After, 5xx responses and transport failures
// are retried up to WithRetries times before they are returned. Transport
// failures are returned unchanged.
//
// # Webhooks
//
// Incoming webhooks are verified with the webhook subpackage.
package swikly
