package smtp

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

// BuildMessage converts an Email into a go-mail message: text and HTML as
// alternatives, inline attachments embedded under their content ids and the
// rest attached.
func BuildMessage(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(email.From); err != nil {
		return nil, fmt.Errorf("%w: from %q: %v", ErrBuildMessage, email.From, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("%w: to %v: %v", ErrBuildMessage, email.To, err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: reply-to %q: %v", ErrBuildMessage, email.ReplyTo, err)
		}
	}
	msg.Subject(email.Subject)

	for _, name := range slices.Sorted(maps.Keys(email.Headers)) {
		msg.SetGenHeader(mail.Header(name), email.Headers[name])
	}

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	for _, a := range email.Attachments {
		opts := []mail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}

		var err error
		if a.Inline {
			opts = append(opts, mail.WithFileContentID("<"+a.ContentID+">"))
			err = msg.EmbedReader(a.Filename, bytes.NewReader(a.Content), opts...)
		} else {
			err = msg.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: attachment %s: %v", ErrBuildMessage, a.Filename, err)
		}
	}

	return msg, nil
}
