// Package tui implements the interactive terminal front-end for ocrmypdf.
//
// The screen is a single Bubble Tea model with three panes:
//   - Options: four tabs (Basic, Image, Advanced, Metadata) of toggles,
//     choices and text fields bound to an ocrconfig.OcrConfig
//   - Command: an editable textarea holding the compiled command line
//   - Log: a scrolling viewport over the session's log history
//
// Every option change goes through session.Update, which recompiles the
// command and replaces any manual edit in the command pane. Edits typed in
// the command pane are handed to session.SetCommandText and are what a run
// executes.
//
// # Log consumption
//
// The model keeps exactly one blocking relay wait outstanding. Init starts
// it; each delivered batch is appended to the history and the wait is
// re-armed. Runs report their outcome through a separate command so the
// status line can show the result.
//
// # Key Bindings
//
//   - tab / shift+tab: cycle panes
//   - ←/→, ↑/↓, enter/space: navigate tabs and rows, toggle or edit
//   - ctrl+r: run, ctrl+k: clear command, ctrl+o: reset command
//   - ctrl+l: clear log, ctrl+s: save log
//   - q: quit (outside text entry), ctrl+c: quit anywhere
package tui
