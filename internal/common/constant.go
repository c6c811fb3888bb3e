// Package common contains shared constants and helpers used across
// weatherdesk components.
package common

// RequestIDHeaderName is the HTTP header used to correlate a single upstream
// round trip with the log lines it produced.
const RequestIDHeaderName = "X-Request-ID"

// UserAgent identifies the client to upstream APIs.
const UserAgent = "weatherdesk-cli"
