package internal

import (
	"errors"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/recipients"
)

var (
	// ErrInvalidChoice indicates the menu answer was not one of the offered modes.
	ErrInvalidChoice = errors.New("invalid option")

	// ErrNoTestEmail indicates a test send was requested without a test address.
	ErrNoTestEmail = errors.New("test email address is not configured")

	// ErrNoSender indicates a send was requested without a From address.
	ErrNoSender = errors.New("sender address is not configured")

	// ErrPreviewWrite indicates the preview document could not be written.
	ErrPreviewWrite = errors.New("failed to write preview")
)

// IsFileReadError reports whether err comes from reading one of the operator's
// input files: the recipient spreadsheet or the message fragment.
func IsFileReadError(err error) bool {
	return errors.Is(err, recipients.ErrFileRead) || errors.Is(err, mailer.ErrFragmentRead)
}
