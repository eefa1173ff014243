// Package client talks to the vibe tracker REST API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the board and the CLI.
// RESTClient implements it over net/http with JSON bodies and the
// ?id= query convention of the server.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status and the
// server's {"error"} message. Network failures wrap ErrUnavailable so callers
// can match them with errors.Is.
//
// All operations accept context.Context and honor cancellation. RESTClient is
// safe for concurrent use.
package client
