package emailsending

import (
	"errors"
	"fmt"
	"log/slog"

	smtpclient "github.com/aidbridge/aidbridge-backend/pkg/smtp-client"
)

var smtpClients *smtpclient.SmtpClients

func InitMessageSendingVariables(config smtpclient.SmtpServerList) error {
	if len(config.Servers) < 1 {
		slog.Warn("no smtp servers configured, email sending disabled")
		return nil
	}
	sc, err := smtpclient.NewSmtpClients(config)
	if err != nil {
		return err
	}
	smtpClients = sc
	return nil
}

// SendInstantEmailByTemplate renders one of the built in message templates
// and sends it directly. Sending is fire-and-wait, there is no retry queue.
func SendInstantEmailByTemplate(
	to []string,
	messageType string,
	payload map[string]string,
) error {
	if smtpClients == nil {
		return errors.New("smtp clients not initialized")
	}

	tmpl, ok := defaultTemplates[messageType]
	if !ok {
		return fmt.Errorf("unknown message type: %s", messageType)
	}

	content, err := ResolveTemplate(messageType, tmpl.templateDef, payload)
	if err != nil {
		return err
	}

	if err := smtpClients.SendMail(to, tmpl.subject, content); err != nil {
		slog.Error("failed to send email", slog.String("messageType", messageType), slog.String("error", err.Error()))
		return err
	}
	return nil
}
