// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/kanban-service/internal/logging"
)

// NoopMailer logs invites instead of delivering them. Used when mail is
// disabled and in tests.
type NoopMailer struct {
	logger logging.LoggerInterface
}

var _ MailerInterface = (*NoopMailer)(nil)

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) SendInvite(ctx context.Context, to, organizationName, acceptURL string) error {
	m.logger.Infof("invite mail suppressed, to: %s, organization: %s", to, organizationName)
	return nil
}
