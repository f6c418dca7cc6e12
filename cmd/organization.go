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

var organizationCmd = &cobra.Command{
	Use:   "organization",
	Short: "Manage organizations",
}

var createOrganizationCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var org types.Organization
		err := getClient().do(context.Background(), http.MethodPost, "/api/v0/organizations",
			map[string]string{"name": args[0]}, &org)
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		fmt.Printf("Organization created: %s (ID: %s)\n", org.Name, org.ID)
		return nil
	},
}

var deleteOrganizationCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(context.Background(), http.MethodDelete, "/api/v0/organizations/"+args[0], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		fmt.Printf("Organization deleted: %s\n", args[0])
		return nil
	},
}

var listOrganizationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var orgs []types.Organization
		err := getClient().do(context.Background(), http.MethodGet, "/api/v0/organizations", nil, &orgs)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCREATED_AT")
		for _, o := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", o.ID, o.Name, o.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [organization-id]",
	Short: "List members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []types.Membership
		err := getClient().do(context.Background(), http.MethodGet,
			"/api/v0/organizations/"+args[0]+"/members", nil, &members)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tROLE\tCREATED_AT")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.UserID, m.Role, m.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(organizationCmd)
	organizationCmd.AddCommand(createOrganizationCmd)
	organizationCmd.AddCommand(deleteOrganizationCmd)
	organizationCmd.AddCommand(listOrganizationsCmd)
	organizationCmd.AddCommand(listMembersCmd)
}
