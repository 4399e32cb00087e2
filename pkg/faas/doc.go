// Package faas provides types, interfaces, and helpers for working with the
// management REST API of an OpenWhisk style function-as-a-service platform.
//
// # Overview
//
// The faas package defines the resource client interfaces (ActionsClient,
// RulesClient, RoutesClient, ...), the request inputs and results, and the
// error taxonomy. A concrete implementation is provided by the faasclient
// package:
//
//	cli, err := faasclient.New(ctx, &faas.Config{
//	  APIHost: "openwhisk.example.com",
//	  APIKey:  "uuid:key",
//	})
//	if err != nil { log.Fatal(err) }
//
//	res, err := cli.Actions().Get(ctx, faas.ID("/ns/pkg/hello"))
//
// # Inputs
//
// Identifier based operations take an Input: a bare identifier (ID), an
// options mapping (Opts) or a batch (Batch, IDs). Identifiers take one of
// the forms "name", "package/name", "/namespace/name" and
// "/namespace/package/name". A batch runs the operation concurrently for each
// element and returns one Result per element, in input order; the first
// failure fails the whole call.
//
// # Errors
//
// Validation failures are returned before any request is sent and match the
// Err* sentinels with errors.Is (see IsValidationError). Failures reported by
// the platform, or by the connection to it, are *APIError values whose
// message has the form
//
//	GET https://host/api/v1/namespaces/_/actions/x Returned HTTP 404 (Not Found) --> "The requested resource does not exist."
//
// # Interceptors
//
// Request and response interceptors observe or modify every request. The
// package ships logging, header and metrics interceptors, and NATSPublisher,
// which publishes a RequestEvent per completed request.
package faas
