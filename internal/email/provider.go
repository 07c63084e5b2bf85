package email

// Message is an outbound email.
type Message struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends email. The reminder worker is the only producer; the
// noop provider stands in when SMTP is not configured.
type Provider interface {
	Send(msg *Message) error
	Validate() error
}

// Config holds SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
