// Package mail delivers rendered documents over SMTP using gomail. The relay
// is optional: without credentials the sender stays constructed but every send
// fails fast with domain.ErrMailNotConfigured.
package mail

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	gomail "gopkg.in/gomail.v2"

	appbilling "github.com/resonira/invoice-api/internal/application/billing"
	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/domain/money"
	"github.com/resonira/invoice-api/pkg/config"
)

const senderName = "Resonira Technologies"

var _ appbilling.InvoiceMailer = (*GomailSender)(nil)

// GomailSender implements billing.InvoiceMailer over a single SMTP relay.
type GomailSender struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

// NewGomailSender builds the sender. With empty credentials the dialer is left
// nil and Configured() reports false.
func NewGomailSender(cfg config.MailConfig) *GomailSender {
	s := &GomailSender{cfg: cfg}
	if cfg.Configured() {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return s
}

// Configured reports whether relay credentials are present.
func (s *GomailSender) Configured() bool { return s.dialer != nil }

// Verify dials and authenticates against the relay without sending a message.
func (s *GomailSender) Verify(_ context.Context) error {
	if s.dialer == nil {
		return domain.ErrMailNotConfigured
	}
	closer, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("verify relay: %w", err)
	}
	return closer.Close()
}

// SendInvoice mails the document to the recipient with the PDF attached as
// "{Invoice|Quotation}_{reference}.pdf".
func (s *GomailSender) SendInvoice(_ context.Context, inv *entity.Invoice, recipient string, pdf []byte) error {
	if s.dialer == nil {
		return domain.ErrMailNotConfigured
	}

	docType := inv.DocType()
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.Sender(), senderName)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subjectLine(inv))
	msg.SetBody("text/html", BodyHTML(inv))
	msg.Attach(
		fmt.Sprintf("%s_%s.pdf", docType, inv.ReferenceNumber),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s %s: %w", strings.ToLower(docType), inv.ReferenceNumber, err)
	}
	return nil
}

func subjectLine(inv *entity.Invoice) string {
	topic := inv.Subject
	if topic == "" {
		topic = senderName
	}
	return fmt.Sprintf("%s #%s - %s", inv.DocType(), inv.ReferenceNumber, topic)
}

// BodyHTML builds the HTML body shown above the attachment. Kept exported and
// free of SMTP state so the template is testable without a relay.
func BodyHTML(inv *entity.Invoice) string {
	docType := inv.DocType()
	clientName := inv.Client.AttentionTo
	if clientName == "" {
		clientName = inv.Client.CompanyName
	}
	if clientName == "" {
		clientName = "Valued Customer"
	}
	subject := inv.Subject
	if subject == "" {
		subject = "Services"
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .amount { font-size: 24px; font-weight: bold; color: #667eea; }
    .footer { text-align: center; margin-top: 20px; color: #888; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">` + senderName + `</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">` + docType + ` #` + inv.ReferenceNumber + `</p>
    </div>
    <div class="content">
      <p>Dear ` + clientName + `,</p>
      <p>Please find attached your ` + strings.ToLower(docType) + ` for the following:</p>
      <h3 style="color: #333;">` + subject + `</h3>
      <p><strong>Amount:</strong> <span class="amount">&#8377;` + money.FormatINR(inv.GrandTotal) + `</span></p>
      <p><strong>Date:</strong> ` + displayDate(inv.Date) + `</p>
`)
	if inv.ValidityDate != "" {
		b.WriteString(`      <p><strong>Valid Till:</strong> ` + displayDate(inv.ValidityDate) + `</p>
`)
	}
	b.WriteString(`      <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
      <p>If you have any questions about this ` + strings.ToLower(docType) + `, please don't hesitate to contact us.</p>
      <p>Thank you for your business!</p>
      <p>Best regards,<br><strong>` + senderName + `</strong></p>
    </div>
    <div class="footer">
      <p>This is an automated email. Please do not reply directly to this email.</p>
      <p>&copy; ` + fmt.Sprintf("%d", time.Now().Year()) + ` ` + senderName + `. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`)
	return b.String()
}

func displayDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return s
}
