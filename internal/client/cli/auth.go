package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/storefront/internal/client/auth"
)

func (a *App) newLoginCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Login")

			if username == "" {
				var err error
				if username, err = a.io.ReadInput("Username: "); err != nil {
					return fmt.Errorf("failed to read username: %w", err)
				}
			}
			password, err := a.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			a.io.Println("Authenticating...")
			user, err := a.deps.Auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			a.io.Println()
			a.io.Println("✓ Login successful!")
			if user != nil {
				a.io.Printf("Welcome, %s\n", user.DisplayName())
			} else {
				a.io.Println("Could not load your profile; run 'storefront profile' to retry.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when empty)")
	return cmd
}

func (a *App) newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Create Account")

			var in auth.RegisterInput
			prompts := []struct {
				dst    *string
				prompt string
				secret bool
			}{
				{&in.Username, "Username: ", false},
				{&in.Email, "Email: ", false},
				{&in.FirstName, "First name (optional): ", false},
				{&in.LastName, "Last name (optional): ", false},
				{&in.Password, "Password: ", true},
				{&in.PasswordConfirm, "Confirm password: ", true},
			}
			for _, p := range prompts {
				read := a.io.ReadInput
				if p.secret {
					read = a.io.ReadPassword
				}
				value, err := read(p.prompt)
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				*p.dst = value
			}

			result, err := a.deps.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}

			a.io.Println()
			a.io.Println("✓ Account created successfully!")
			if result.LoggedIn {
				a.io.Println("You are now logged in.")
			} else {
				a.io.Println("Please run 'storefront login' to sign in.")
			}
			return nil
		},
	}
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Logout")

			if err := a.deps.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			a.io.Println("✓ Logout successful!")
			a.io.Println("Your local session has been deleted.")
			return nil
		},
	}
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Authentication Status")

			status, err := a.deps.Auth.Status(cmd.Context())
			if err != nil {
				return err
			}

			a.io.Printf("Server: %s\n", a.cfg.ServerURL)
			if !status.Authenticated {
				a.io.Println("Status: Not authenticated")
				a.io.Println()
				a.io.Println("Run 'storefront login' to authenticate.")
				return nil
			}

			a.io.Println("Status: Authenticated")
			a.io.Printf("User: %s (%s)\n", status.User.DisplayName(), status.User.Email)

			now := time.Now()
			switch {
			case status.ExpiresAt == nil:
				a.io.Println("Access token expiry: unknown")
			case status.Expired(now):
				if status.HasRefreshToken {
					a.io.Println("Access token expired; it will be refreshed on the next request.")
				} else {
					a.io.Println("⚠️  Access token has expired. Please login again.")
				}
			default:
				a.io.Printf("Access token expires: %s (in %s)\n",
					status.ExpiresAt.Format(time.RFC3339), status.ExpiresAt.Sub(now).Round(time.Second))
			}
			return nil
		},
	}
}
