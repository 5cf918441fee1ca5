// Package rpc implements the HTTP client for the remote ledger service.
//
// The service speaks JSON-RPC 2.0 over HTTPS POST to a single endpoint. Every
// operation is a "tools/call" invocation naming a tool and its arguments; tool
// results come back as a JSON string nested in result.content[0].text. A
// top-level error object means the service rejected the call and
// short-circuits decoding.
package rpc
