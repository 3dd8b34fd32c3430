package mailer

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/lucianorey/libreria/internal/config"
)

// Message is one outgoing mail with an optional attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Client sends mail through the configured SMTP account.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

// NewClient builds an SMTP client from the provided configuration values.
func NewClient(cfg config.SMTPConfig) *Client {
	return &Client{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Address, cfg.Password),
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.Address),
	}
}

// Send delivers the message. gomail carries no context support, so the
// context is only checked before dialing.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if len(msg.Attachment) > 0 {
		m.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(msg.Attachment)
			return err
		}))
	}

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	return nil
}
