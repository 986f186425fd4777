// Package client contains client-side building blocks for the peer review CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the peer review backend: Register/GetSalt/Login, Ping, manuscript
//     submission and review, and presigned URL helpers for content upload
//     and download.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Domain rejections
// (duplicate review, finalized manuscript, insufficient funds) keep the server
// message and are wrapped as "rpc error".
//
// Concurrency & Contexts
//
// All operations accept context.Context and must honor cancellation/timeouts.
package client
