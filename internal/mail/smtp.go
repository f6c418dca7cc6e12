// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/canonical/kanban-service/internal/logging"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers invite mail over plain SMTP with optional AUTH.
type SMTPMailer struct {
	config *Config

	logger logging.LoggerInterface
}

var _ MailerInterface = (*SMTPMailer)(nil)

func NewSMTPMailer(config *Config, logger logging.LoggerInterface) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

func (m *SMTPMailer) SendInvite(ctx context.Context, to, organizationName, acceptURL string) error {
	body, err := renderTemplate(inviteTemplate, map[string]string{
		"OrganizationName": organizationName,
		"AcceptURL":        acceptURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render invite template: %w", err)
	}

	subject := fmt.Sprintf("You have been invited to %s", organizationName)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.config.From, to, subject, body,
	)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		m.logger.Errorf("failed to send mail to %s: %v", to, err)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Debugf("mail sent to %s", to)
	return nil
}

func renderTemplate(tmpl string, data map[string]string) (string, error) {
	t, err := template.New("mail").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const inviteTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 12px 24px; background-color: #0E8420; color: white; text-decoration: none; border-radius: 6px; }
        .footer { margin-top: 30px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h1>You have been invited</h1>
        <p>You have been invited to join <strong>{{.OrganizationName}}</strong>.</p>
        <p><a href="{{.AcceptURL}}" class="button">Accept invitation</a></p>
        <p>Or copy and paste this link into your browser:</p>
        <p>{{.AcceptURL}}</p>
        <p>This invitation will expire in 7 days.</p>
        <div class="footer">
            <p>If you weren't expecting this invitation, you can safely ignore this email.</p>
        </div>
    </div>
</body>
</html>
`
