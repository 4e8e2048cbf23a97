package cli

import (
	"github.com/spf13/cobra"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func (a *App) newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header(a.io, "Profile")

			user, err := a.deps.Shop.Profile(cmd.Context())
			if err != nil {
				return err
			}
			printUser(a, user)
			return nil
		},
	}

	cmd.AddCommand(a.newProfileUpdateCommand())
	return cmd
}

func (a *App) newProfileUpdateCommand() *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req pkgapi.UpdateProfileRequest
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}

			user, err := a.deps.Shop.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}

			a.io.Println("✓ Profile updated!")
			printUser(a, user)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")
	return cmd
}

func printUser(a *App, user *pkgapi.User) {
	if user.Username != "" {
		a.io.Printf("Username:   %s\n", user.Username)
	}
	a.io.Printf("Email:      %s\n", user.Email)
	if user.FirstName != "" {
		a.io.Printf("First name: %s\n", user.FirstName)
	}
	if user.LastName != "" {
		a.io.Printf("Last name:  %s\n", user.LastName)
	}
}
