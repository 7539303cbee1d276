// Package session ties the configuration, the compiled command, the log
// relay and process runs together for one interactive user.
//
// Update is the only way to change the configuration. Every call recompiles
// the command from scratch and notifies subscribers once, so the displayed
// command can never drift from the configuration. The user may then edit the
// command text by hand; Run executes whatever text is current.
//
// A run pushes "Starting command: <text>" to the relay and hands the text to
// a fresh runner on its own goroutine. By default a second Run is rejected
// with ErrRunInProgress until the first has reported its outcome; the
// AllowConcurrent policy lifts that guard, in which case output from
// overlapping runs interleaves in the shared relay.
package session
