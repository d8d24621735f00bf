package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
)

// SMTPNotifier sends next-step reminder emails through a plain SMTP relay.
type SMTPNotifier struct {
	addr string
	from string
}

// NewSMTPNotifier creates a notifier pointed at the given relay address
// (host:port) with the given sender address.
func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from}
}

var _ portssvc.NotifierSvc = (*SMTPNotifier)(nil)

func (n *SMTPNotifier) SendNextStepReminder(ctx context.Context, toEmail, employeeName, nextStep string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: Action needed on your visa documents\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Hi %s,\r\n\r\n", employeeName)
	fmt.Fprintf(&msg, "Your next step: %s\r\n\r\n", nextStep)
	msg.WriteString("Please log in to complete it.\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{toEmail}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send reminder to %s: %w", toEmail, err)
	}
	return nil
}
