// Package iconicclient provides the main entry point for creating seller
// API clients.
//
// Most callers use one of the constructors directly:
//
//	client, err := iconicclient.NewWithClientCredentials(
//		"https://sellercenter-api.example.com",
//		"client-id", "client-secret",
//	)
//
// The returned iconic.Client exposes typed endpoint clients (Brands, Orders,
// ProductSets, ...) and the navigable resource surface via
// ProductSetResource.
package iconicclient
