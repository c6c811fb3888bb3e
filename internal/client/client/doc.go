// Package client is the gateway between the terminal UI and the two upstream
// REST APIs: a user directory that also handles login and signup, and a
// current-weather service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with exactly
//     four operations: Login, Signup, Users and Weather.
//  2. A net/http implementation (see RESTClient) that tags every request
//     with an X-Request-ID, logs it, records Prometheus metrics and maps
//     upstream statuses to sentinel errors.
//
// # Error Handling
//
// Failures unwrap to one of the sentinels in package common and can be
// matched with errors.Is: ErrInvalidCredentials (login rejected),
// ErrValidation (signup rejected), ErrNotFound (unknown city) and
// ErrUnavailable (everything else). Upstream messages, when present, are
// available through *APIError.
//
// Every call is a single round trip. There is no retry, no caching, and the
// only deadline is the transport timeout plus whatever ctx carries.
package client
