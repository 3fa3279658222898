// Package ufm provides types, interfaces, and helpers for managing InfiniBand
// partitions through the NVIDIA UFM REST API.
//
// # Overview
//
// The ufm package defines the domain types (Partition, PortBinding, Port,
// Filter, PartitionQoS), the partition key codec, the error taxonomy, and
// the interfaces for the resource clients (PartitionsClient, PortsClient). A
// concrete implementation is provided by the ufmclient package, which wires
// configuration, transport, and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ufm/pkg/ufm"
//	  "github.com/fivetwenty-io/ufm/pkg/ufmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ufmclient.New(ctx, &ufm.Config{
//	    Address:  "https://ufm.example.com",
//	    Username: "admin",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  parts, err := cli.Partitions().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = parts
//	}
//
// # Partition keys
//
// Partition keys are int32 values whose canonical text form is lower-case hex
// prefixed with "0x". BuildPKey and ParsePKey convert between the two;
// ParsePKey accepts the prefix in either case, or no prefix at all.
// DefaultPKey (0x7fff) is the management partition, which contains every
// host.
//
// # Errors
//
// Every operation returns *Error values carrying an ErrorKind: Unknown,
// NotFound, InvalidPKey, or InvalidConfig. Use errors.Is with the sentinels
// (ErrNotFound, ErrInvalidPKey, ...) or the IsNotFound / IsInvalidPKey /
// IsInvalidConfig helpers. InvalidPKey is always raised locally, before any
// request is sent. Authentication failures are reported as InvalidConfig.
//
// # Interceptors and metrics
//
// An InterceptorChain in Config runs around every HTTP exchange.
// MetricsCollector records Prometheus request counts and latencies, and
// RequestIDInterceptor tags each request with an X-Request-ID.
package ufm
