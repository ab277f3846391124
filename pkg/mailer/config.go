package mailer

// Config holds the message content settings shared by every recipient.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	From         string `env:"NEWSLETTER_FROM"`
	FromName     string `env:"NEWSLETTER_FROM_NAME"`
	Subject      string `env:"NEWSLETTER_SUBJECT" envDefault:"Newsletter"`
	FragmentPath string `env:"NEWSLETTER_FRAGMENT" envDefault:"message_fragment.html"`
	ImageRef     string `env:"NEWSLETTER_IMAGE" envDefault:"header_photo.jpg"`
	DocumentRef  string `env:"NEWSLETTER_DOCUMENT" envDefault:"letter.pdf"`
	DocLink      string `env:"NEWSLETTER_DOC_LINK"`
	EscapeNames  bool   `env:"NEWSLETTER_ESCAPE_NAMES" envDefault:"false"`
}

// Sender returns the formatted From address, or "" when no address is set.
func (c Config) Sender() string {
	if c.From == "" {
		return ""
	}
	return Address(c.FromName, c.From)
}
