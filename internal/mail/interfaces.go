// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type MailerInterface interface {
	SendInvite(ctx context.Context, to, organizationName, acceptURL string) error
}
