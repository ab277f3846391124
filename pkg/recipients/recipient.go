package recipients

import (
	"fmt"
	"strings"
)

// Recipient is one addressee taken from a spreadsheet row.
type Recipient struct {
	Email     string
	FirstName string
	LastName  string
}

// Sendable reports whether the recipient has an address to deliver to.
func (r Recipient) Sendable() bool {
	return strings.TrimSpace(r.Email) != ""
}

// FullName joins first and last name, dropping whichever is empty.
func (r Recipient) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// String formats the recipient as "First Last <email>".
func (r Recipient) String() string {
	name := r.FullName()
	if name == "" {
		return r.Email
	}
	return fmt.Sprintf("%s <%s>", name, r.Email)
}
