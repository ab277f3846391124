// Package mailer builds personalized newsletter messages and hands them to a
// pluggable transport.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Renderer: wraps a message fragment in the newsletter layout for one recipient
//   - Mailer: assembles the multipart message and reports a SendResult
//   - Sender: interface that transports implement (see the smtp and resend subpackages)
//
// # Rendering
//
// The fragment is read from disk on every Render call, so edits show up in
// the next preview or send without a restart. Fragments ending in .md are
// converted with goldmark; anything else is inserted verbatim.
//
// A fragment may open with YAML front matter:
//
//	---
//	Subject: Winter update
//	Preheader: Photos from the trip inside
//	---
//	<p>Hi!</p>
//
// First names are inserted without escaping unless WithNameEscaping is set.
//
// # Messages
//
// Each message carries a plain-text part, an HTML part, the header image as
// an inline part and the document as a regular attachment. The image content
// id is generated before the HTML is rendered and the body refers to it as
// cid:<id>.
//
// # Errors
//
// Mailer.Send never returns an error. Failures are folded into SendResult:
//
//	result := m.Send(ctx, recipient, "", "")
//	if !result.OK() {
//		if errors.Is(result.Err, mailer.ErrSendFailed) {
//			// transport failure
//		}
//	}
//
// Markdown fragments support a button link:
//
//	[!button|Read more](https://example.com/letter)
package mailer
