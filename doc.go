// Package dispatch sends a personalized HTML newsletter to a contact list
// kept in a spreadsheet.
//
// A run does one of three things:
//
//   - preview: render the message for a placeholder name and write it to a
//     local HTML file that shows the header image from disk
//   - test: send one message to the operator's own address
//   - broadcast: after the operator types YES, send one message per
//     spreadsheet row, pausing between sends
//
// # Quick Start
//
//	cfg, err := dispatch.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctrl, err := dispatch.New(cfg, dispatch.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := ctrl.Menu(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Messages
//
// Each message has a plain-text part, an HTML part built from the message
// fragment, the header image as an inline part referenced by content id, and
// the document as a regular attachment. See package mailer.
//
// # Recipients
//
// Recipients are read from the first sheet of an .xlsx workbook. The first
// row is a header. Columns B, C and D hold email, first name and last name.
// Rows without an email address are skipped during a broadcast.
//
// # Transports
//
// TRANSPORT=smtp (default) delivers through an SMTP relay such as a local mail
// bridge. TRANSPORT=resend uses the Resend HTTP API. WithDryRun discards every
// message after it is built.
//
// # Failures
//
// A failed send is reported and the broadcast moves on. Only problems reading
// the spreadsheet or the fragment end a run; check them with IsFileReadError.
// The fragment is read once before the confirmation prompt, so a missing file
// stops the run before any message is sent. Test and broadcast runs also need
// NEWSLETTER_FROM (ErrNoSender); preview does not.
package dispatch
