package mailer

import (
	"fmt"

	"adagency/internal/app/config"
	"adagency/internal/app/ds"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendReceipt mails a payment confirmation for a completed transaction.
func (m *Mailer) SendReceipt(to string, txn *ds.Transaction) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payment receipt")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Thank you for your purchase.\n\n%s\nAmount: $%.2f\nReference: %s\n",
		txn.Description, txn.Amount, txn.PaymentReferenceID))

	return m.dialer.DialAndSend(msg)
}
