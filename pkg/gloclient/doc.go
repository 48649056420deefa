// Package gloclient is the entry point for constructing a Glo Boards API
// client that implements the glo.Client interface.
//
// It wires configuration, the HTTP transport and the Authorization token on
// top of the resource interfaces and types defined in the glo package. Most
// applications import gloclient to build a client and then use the returned
// glo.Client, for example Boards().Cards().Get.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/glo/pkg/glo"
//	  "github.com/fivetwenty-io/glo/pkg/gloclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a personal access token against the public API.
//	  cli, err := gloclient.NewWithToken(os.Getenv("GLO_TOKEN"))
//	  if err != nil { log.Fatal(err) }
//
//	  // Or the full configuration:
//	  cli, err = gloclient.New(&glo.Config{
//	    Token:      os.Getenv("GLO_TOKEN"),
//	    RetryMax:   3,
//	    UserAgent:  "my-tool/1.0",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  card, err := cli.Boards().Cards().Get(ctx, "board-id", "card-id", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = card
//	}
//
// # Endpoints
//
// The default API root is https://gloapi.gitkraken.com/v1/glo. NewWithEndpoint
// and Config.APIEndpoint override it; a missing scheme defaults to https and a
// trailing slash is dropped.
//
// # Retries
//
// Requests are sent once. Set Config.RetryMax to retry 429, 5xx and connection
// failures with exponential backoff between RetryWaitMin and RetryWaitMax.
package gloclient
