// Package glo provides types, interfaces, and helpers for working with the
// Glo Boards REST API.
//
// # Overview
//
// The glo package defines the domain types (Board, Column, Card, Label,
// Comment, Attachment, User), the per-endpoint options with their defaults,
// and the interfaces of the resource clients. A concrete implementation is
// provided by the gloclient package. Most consumers import gloclient to
// construct a client and then work through the interfaces defined here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/glo/pkg/glo"
//	  "github.com/fivetwenty-io/glo/pkg/gloclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gloclient.NewWithToken("Bearer pat-...")
//	  if err != nil { log.Fatal(err) }
//
//	  boards, err := cli.Boards().GetAll(ctx, &glo.BoardListOptions{
//	    Fields: []string{"name", "columns"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = boards
//	}
//
// # Options and defaults
//
// Every GET accessor takes a pointer to its own options struct. Nil means
// "all defaults"; otherwise each zero-valued field falls back to its default
// and each set field replaces it. Fields lists are sent comma-joined in the
// order given. The defaults are exposed as Default<X>Options constructors.
//
// # Batch creation
//
// BatchCreate calls return a BatchResult whose Errors slice lists rejected
// items. Partial failure is not returned as an error; inspect the result.
//
// # Errors
//
// A non-2xx response is returned as *APIError carrying the status code and
// raw body. Transport failures are returned as they come from net/http,
// wrapped with the failing operation. Helpers such as IsNotFound and
// StatusCode read the status without changing how errors propagate.
//
// # Interceptors and metrics
//
// An InterceptorChain passed in Config runs around every request. The
// package ships logging, static header, request ID and Prometheus metrics
// interceptors.
package glo
