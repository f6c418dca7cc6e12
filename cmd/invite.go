// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/kanban-service/internal/types"
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage organization invites",
}

var createInviteCmd = &cobra.Command{
	Use:   "create [organization-id] [email] [role]",
	Short: "Invite a user to an organization",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var invite struct {
			types.Invite
			Link string `json:"link"`
		}
		err := getClient().do(context.Background(), http.MethodPost,
			"/api/v0/organizations/"+args[0]+"/invites",
			map[string]string{"email": args[1], "role": args[2]}, &invite)
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		fmt.Printf("User invited: %s\n", invite.Email)
		fmt.Printf("Expires: %s\n", invite.ExpiresAt)
		if invite.Link != "" {
			fmt.Printf("Link: %s\n", invite.Link)
		}
		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [organization-id]",
	Short: "List pending invites for an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var invites []types.Invite
		err := getClient().do(context.Background(), http.MethodGet,
			"/api/v0/organizations/"+args[0]+"/invites", nil, &invites)
		if err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tEXPIRES_AT")
		for _, i := range invites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, i.ExpiresAt)
		}
		w.Flush()
		return nil
	},
}

var cancelInviteCmd = &cobra.Command{
	Use:   "cancel [organization-id] [invite-id]",
	Short: "Cancel a pending invite",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(context.Background(), http.MethodDelete,
			"/api/v0/organizations/"+args[0]+"/invites/"+args[1], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to cancel invite: %w", err)
		}

		fmt.Printf("Invite cancelled: %s\n", args[1])
		return nil
	},
}

var acceptInviteCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept an invite as the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var invite types.Invite
		err := getClient().do(context.Background(), http.MethodPost,
			"/api/v0/invites/"+args[0]+"/accept", nil, &invite)
		if err != nil {
			return fmt.Errorf("failed to accept invite: %w", err)
		}

		fmt.Printf("Joined organization: %s\n", invite.OrganizationID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
	inviteCmd.AddCommand(createInviteCmd)
	inviteCmd.AddCommand(listInvitesCmd)
	inviteCmd.AddCommand(cancelInviteCmd)
	inviteCmd.AddCommand(acceptInviteCmd)
}
