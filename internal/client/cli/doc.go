// Package cli provides the interactive weatherdesk command-line client.
//
// It wires configuration, logging, the REST gateway and the session scopes
// into a REPL with three screens: Login, Signup and Home. Each asynchronous
// action moves a RequestState to Loading, prints a loading line, waits for
// the outcome and renders whatever the state holds afterwards.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set.
package cli
