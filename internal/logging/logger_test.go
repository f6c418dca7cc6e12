// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().SystemStartup()
	logger.Security().AuthzFailure("user-1", "organization.delete")
	logger.Security().InviteIssued("org-1", "bob@example.com")
	logger.Security().InviteRedeemed("org-1", "user-2")
	logger.Security().SystemShutdown()
}
