package internal

import "strings"

// ConfirmToken is the answer that authorises a broadcast.
const ConfirmToken = "YES"

// Confirm reports whether answer authorises a broadcast. Surrounding
// whitespace is ignored; the comparison is case-sensitive.
func Confirm(answer string) bool {
	return strings.TrimSpace(answer) == ConfirmToken
}
