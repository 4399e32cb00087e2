// Package faasclient provides the entry point for constructing a client for
// an OpenWhisk compatible serverless platform. The returned faas.Client gives
// access to the actions, activations, feeds, namespaces, packages, routes,
// rules and triggers of the platform.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/faas-client/pkg/faas"
//	  "github.com/fivetwenty-io/faas-client/pkg/faasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := faasclient.New(ctx, &faas.Config{
//	    APIHost: "openwhisk.example.com",
//	    APIKey:  "uuid:key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Actions().Invoke(ctx, faas.Opts(faas.Options{
//	    "name":     "hello",
//	    "params":   map[string]interface{}{"name": "world"},
//	    "blocking": true,
//	    "result":   true,
//	  }))
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Configuration from the environment
//
// Inside a running action the platform injects __OW_API_HOST, __OW_API_KEY
// and __OW_NAMESPACE. LoadConfig reads those variables, plus an optional
// properties file with APIHOST, AUTH and NAMESPACE entries, and
// NewFromEnvironment builds a client from the result.
package faasclient
