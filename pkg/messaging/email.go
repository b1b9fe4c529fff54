package messaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailGateway sends invoices as PDF attachments over SMTP.
type EmailGateway struct {
	config SMTPConfig
}

// NewEmailGateway creates a new SMTP email gateway.
func NewEmailGateway(config SMTPConfig) *EmailGateway {
	return &EmailGateway{config: config}
}

// Send delivers the message, attaching the PDF when present. The context
// is honored up front; net/smtp itself does not take a context, so a
// caller-side timeout wraps the whole call.
func (g *EmailGateway) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", g.config.Host, g.config.Port)
	auth := smtp.PlainAuth("", g.config.Username, g.config.Password, g.config.Host)

	body := g.buildMessage(msg)
	if err := smtp.SendMail(addr, auth, g.config.FromEmail, []string{msg.Recipient}, body); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart MIME email with an optional
// application/pdf attachment.
func (g *EmailGateway) buildMessage(msg *Message) []byte {
	const boundary = "invoice-attachment-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", g.config.FromName, g.config.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachment) == 0 {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.Body)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: application/pdf\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", msg.AttachmentName)

	encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}
