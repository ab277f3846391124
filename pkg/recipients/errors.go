package recipients

import "errors"

// ErrFileRead indicates the spreadsheet could not be opened or parsed.
// Callers treat it as fatal for the whole run.
var ErrFileRead = errors.New("recipients: failed to read spreadsheet")
