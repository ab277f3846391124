package mailer

import "fmt"

// Address formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully built message handed to a Sender.
type Email struct {
	Headers     map[string]string // Custom headers
	Subject     string
	HTML        string // HTML body
	Text        string // Plain text alternative
	From        string // Formatted sender address
	ReplyTo     string
	To          []string
	Attachments []Attachment
}

// InlineAttachments returns the attachments referenced from the HTML body by content ID.
func (e *Email) InlineAttachments() []Attachment {
	return e.filterAttachments(true)
}

// RegularAttachments returns the attachments offered for download.
func (e *Email) RegularAttachments() []Attachment {
	return e.filterAttachments(false)
}

func (e *Email) filterAttachments(inline bool) []Attachment {
	var out []Attachment
	for _, a := range e.Attachments {
		if a.Inline == inline {
			out = append(out, a)
		}
	}
	return out
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Content-ID referenced as cid:<ContentID>; inline parts only
	Content     []byte
	Inline      bool
}
