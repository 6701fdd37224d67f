// Package viz formats terminal output for the lyapunov command.
//
//   - [Diagnostics]: styled summary of a finished render
//   - [Plot]: asciigraph chart of a λ profile
//   - [SummaryPanel], [PresetTable], [RunTable]: styled text blocks
//
// Colours are dropped automatically when the output is not a terminal.
package viz
