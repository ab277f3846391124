// Package internal implements the newsletter run: the mode menu, the preview,
// the single test send and the confirmed broadcast.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/dispatch" instead, which re-exports the public API.
//
// # Modes
//
// A run selects exactly one mode:
//
//   - ModePreview: render for a placeholder name with the image referenced by
//     its local path and write the document to the preview file
//   - ModeTestSend: send one message to the configured test address
//   - ModeBroadcast: after the operator types YES, send to every recipient
//     that has an email address, pausing between sends
//
// # Failures
//
// A failed send is reported and the broadcast continues with the next
// recipient. Only errors reading the spreadsheet or writing the preview end a
// run early; use IsFileReadError to tell input file problems apart.
//
// # Interruption
//
// Cancelling the context stops a broadcast before the next recipient. There
// is no checkpoint: running again starts from the top of the list.
package internal
