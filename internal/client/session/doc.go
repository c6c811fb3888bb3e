// Package session holds the per-screen state of the client.
//
// Auth belongs to the login and signup screens and Home to the home screen.
// Each owns its RequestState instances and is handed explicitly to whatever
// renders it; nothing here is global. A screen that goes away calls Close,
// after which responses still in flight are dropped, and Wait to let their
// goroutines finish.
//
// Requests are started in the background and each start returns a channel
// that is closed once the outcome has been recorded (or dropped). Callers
// that want blocking behaviour simply receive from it.
package session
