package smtp

import "errors"

var (
	// ErrInvalidConfig indicates the relay configuration cannot be used.
	ErrInvalidConfig = errors.New("smtp: invalid configuration")

	// ErrBuildMessage indicates the email could not be converted to MIME.
	ErrBuildMessage = errors.New("smtp: failed to build message")

	// ErrUnreachable indicates the relay refused or never answered the connection.
	ErrUnreachable = errors.New("smtp: relay unreachable")

	// ErrDelivery indicates the relay rejected the message.
	ErrDelivery = errors.New("smtp: delivery failed")
)
