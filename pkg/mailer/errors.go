package mailer

import "errors"

var (
	// ErrNoRecipient indicates the recipient has no email address.
	ErrNoRecipient = errors.New("email must have a recipient address")

	// ErrNoSubject indicates no subject was given, configured, or found in the fragment.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates the rendered HTML is empty.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrFragmentRead indicates the HTML fragment could not be read.
	ErrFragmentRead = errors.New("failed to read message fragment")

	// ErrInvalidFrontmatter indicates invalid YAML front matter in the fragment.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates the HTML document could not be produced.
	ErrRenderFailed = errors.New("failed to render message")

	// ErrAssetLoad indicates the inline image or the attached document could not be loaded.
	ErrAssetLoad = errors.New("failed to load attachment")

	// ErrSendFailed indicates the transport rejected or failed to deliver the message.
	ErrSendFailed = errors.New("failed to send email")
)
