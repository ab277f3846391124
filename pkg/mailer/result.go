package mailer

import "github.com/dmitrymomot/dispatch/pkg/recipients"

// Outcome is the result kind of one delivery attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// SendResult describes one delivery attempt. Failures carry the reason and the
// underlying error; errors.Is(result.Err, ErrSendFailed) distinguishes transport
// failures from build failures.
type SendResult struct {
	Recipient recipients.Recipient
	Err       error
	Reason    string
	Outcome   Outcome
}

// OK reports whether the message was handed to the transport successfully.
func (r SendResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

func succeeded(r recipients.Recipient) SendResult {
	return SendResult{Recipient: r, Outcome: OutcomeSuccess}
}

func failed(r recipients.Recipient, err error) SendResult {
	return SendResult{Recipient: r, Outcome: OutcomeFailure, Reason: err.Error(), Err: err}
}
