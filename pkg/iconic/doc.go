// Package iconic provides a client library for the SellerCenter-style
// marketplace seller API (v2).
//
// The package exposes typed interfaces for all resource endpoints (brands,
// categories, orders, products, product sets, webhooks, finance statements,
// invoices) together with the shared machinery every endpoint is built on:
//
//   - Params: an ordered parameter bag that serializes snake_case field names
//     into the camelCase wire keys the API expects, including the repeated
//     "key[]" encoding for list-valued filters.
//   - Page and PageIterator: offset-based pagination with an eager FetchAll
//     mode, a lazy single-pass iterator, and a channel-based StreamPages
//     variant for consumers that want to overlap fetching with processing.
//   - APIError: a closed taxonomy of classified HTTP failures
//     (authentication, rate limit, maintenance, generic) carrying full
//     diagnostic context and a Retry-After hint where the server provides one.
//   - Resource: object-style navigation between related entities, e.g. from a
//     product set to the products it contains.
//
// Clients are created via the concrete implementation:
//
//	client, err := iconicclient.New(ctx, &iconic.Config{
//	    APIEndpoint:  "https://sellercenter-api.example.com",
//	    ClientID:     os.Getenv("ICONIC_CLIENT_ID"),
//	    ClientSecret: os.Getenv("ICONIC_CLIENT_SECRET"),
//	})
//
// All methods take a context.Context and never retry automatically; rate
// limit and maintenance errors expose RetryAfter so callers can implement
// their own policy.
package iconic
