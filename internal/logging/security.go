// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events on a dedicated "security"
// channel so they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("event", name)}, fields...)
	s.l.Info("security", fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_failure", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.event("authz_failure", zap.String("subject", subject), zap.String("action", action))
}

func (s *SecurityLogger) InviteIssued(orgID, email string) {
	s.event("invite_issued", zap.String("organization_id", orgID), zap.String("email", email))
}

func (s *SecurityLogger) InviteRedeemed(orgID, userID string) {
	s.event("invite_redeemed", zap.String("organization_id", orgID), zap.String("user_id", userID))
}
