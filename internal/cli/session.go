package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionLoginCmd())
	cmd.AddCommand(newSessionLogoutCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionResult

			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionLoginCmd() *cobra.Command {
	var handle, secret, role string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in under a role claim",
		RunE: func(cmd *cobra.Command, args []string) error {
			if handle == "" {
				return fmt.Errorf("--handle is required")
			}

			req := map[string]string{
				"handle": handle,
				"secret": secret,
				"role":   role,
			}
			var result SessionResult

			if err := client.Post("/api/v1/session/login", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "Account handle (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Account secret")
	cmd.Flags().StringVar(&role, "role", "guest", "Role claim: guest, host or admin")
	_ = cmd.MarkFlagRequired("handle")

	return cmd
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionResult

			if err := client.Post("/api/v1/session/logout", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Signed out")
			return nil
		},
	}
}
