// Package recipients reads the newsletter contact list from a spreadsheet.
//
// Only the first sheet of the workbook is consulted. Row 1 is always treated as
// a header and skipped, whatever it contains. Rows without any cell values are
// skipped as well. Every remaining row becomes a Recipient, mapped by column
// position rather than by header name:
//
//	A      B          C            D
//	#      Email      First name   Last name
//
// Reordering the columns in the workbook requires updating the Column* constants.
//
// # Usage
//
//	list, err := recipients.Read("contacts.xlsx")
//	if err != nil {
//		// errors.Is(err, recipients.ErrFileRead) holds; no partial list is returned
//		return err
//	}
//	for _, r := range list {
//		if !r.Sendable() {
//			continue
//		}
//		fmt.Println(r) // Amy Lee <amy@example.com>
//	}
//
// Duplicates are returned as they appear; the package does not deduplicate.
package recipients
