package clients

import (
	"io"

	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Filename string
	Content  []byte
}

// GomailMailer sends HTML mail through the configured SMTP relay.
type GomailMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewGomailMailer(host string, port int, user, password, from, fromName string) *GomailMailer {
	return &GomailMailer{
		dialer:   gomail.NewDialer(host, port, user, password),
		from:     from,
		fromName: fromName,
	}
}

func (m *GomailMailer) Send(to, subject, html string, attachments []Attachment) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	for _, attachment := range attachments {
		content := attachment.Content
		msg.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	return m.dialer.DialAndSend(msg)
}
