package internal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

// Report aggregates the outcome of a broadcast.
type Report struct {
	Total     int // rows read from the spreadsheet
	Attempted int // sends handed to the mailer
	Sent      int
	Failed    int
	Skipped   int // rows without an email address

	Cancelled bool
	Failures  []mailer.SendResult
}

func (r *Report) record(res mailer.SendResult) {
	r.Attempted++
	if res.OK() {
		r.Sent++
		return
	}
	r.Failed++
	r.Failures = append(r.Failures, res)
}

// Summary formats the counts for the operator, e.g.
// "Sent 1,203 of 1,210 (5 failed, 2 skipped)."
func (r Report) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Sent %d of %d (%d failed, %d skipped).", r.Sent, r.Total, r.Failed, r.Skipped)
}

func formatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
