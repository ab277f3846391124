// Package smtp delivers mailer.Email values through an SMTP relay using
// github.com/wneessen/go-mail.
//
// The defaults match a local mail bridge: 127.0.0.1:1025, PLAIN auth,
// opportunistic STARTTLS and no certificate verification.
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "127.0.0.1",
//		Port:     1025,
//		Username: "me@example.com",
//		Password: "bridge-password",
//		Auth:     "plain",
//		TLS:      "opportunistic",
//	})
//
// Connection failures wrap ErrUnreachable and name the relay address.
// Other failures wrap ErrDelivery.
package smtp
