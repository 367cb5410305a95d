package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"holocron/internal/admin"
	"holocron/pkg/passwords"
)

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCommand(a))
	cmd.AddCommand(newUserListCommand(a))
	return cmd
}

func newUserCreateCommand(a *app) *cobra.Command {
	var (
		email         string
		passwordStdin bool
		generate      bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long: `Create stores a user with a bcrypt-hashed password.

Example:
  holocron user create --email luke@rebellion.org --password-stdin < secret.txt
  holocron user create --email leia@rebellion.org --generate-password`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin == generate {
				return fmt.Errorf("use exactly one of --password-stdin or --generate-password")
			}
			password, err := readPassword(cmd.InOrStdin(), generate)
			if err != nil {
				return err
			}

			b, err := openBackend(cmd.Context(), a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if err := b.migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			svc := admin.NewService(b.catalog, passwords.Hasher{}, admin.WithLogger(a.logger))
			user, err := svc.CreateUser(cmd.Context(), &admin.CreateUserRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Email)
			if generate {
				fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", password)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().BoolVar(&generate, "generate-password", false, "generate a random password and print it")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func readPassword(in io.Reader, generate bool) (string, error) {
	if generate {
		return passwords.Generate()
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newUserListCommand(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer b.Close()

			users, err := admin.NewService(b.catalog, passwords.Hasher{}).ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				rows := make([]admin.UserResponse, 0, len(users))
				for _, u := range users {
					rows = append(rows, admin.UserResponse{ID: int64(u.ID), Email: u.Email})
				}
				return enc.Encode(rows)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMAIL")
			for _, u := range users {
				fmt.Fprintf(tw, "%d\t%s\n", u.ID, u.Email)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
