// Package audit persists session lifecycle events to the optional database.
//
// Each create, navigate, screenshot, close, and shutdown produces one row in
// webdriver_session_events, giving operators a trail of what a remote client
// did with the device. The Recorder is nil-safe and swallows write failures,
// so a missing or broken database never affects protocol behavior.
package audit
