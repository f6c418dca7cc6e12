// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newToken returns a 256-bit random token in hex. Tokens are single use and
// act as bearer credentials until redeemed or expired.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
