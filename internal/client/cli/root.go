package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/storefront/internal/config"
)

// skipSetup marks commands that do not need the store or the backend
const skipSetup = "skip-setup"

// NewRootCommand builds the storefront command tree
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront shop client",
		Long:          "Command line client for the storefront shop: browse the catalog, manage the cart and place orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "API base URL")
	flags.StringVar(&a.cfg.DBPath, "db", a.cfg.DBPath, "path to the local session database")
	flags.StringVar((*string)(&a.cfg.StorageDriver), "storage", string(a.cfg.StorageDriver),
		"session storage driver: "+string(config.StorageBolt)+" or "+string(config.StorageSQLite))
	flags.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP request timeout")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar((*string)(&a.cfg.RegistrationPolicy), "registration-policy", string(a.cfg.RegistrationPolicy),
		"what to do when registration returns no tokens: "+string(config.RegistrationManual)+" or "+string(config.RegistrationAutoLogin))

	root.AddCommand(
		a.newLoginCommand(),
		a.newRegisterCommand(),
		a.newLogoutCommand(),
		a.newStatusCommand(),
		a.newProductsCommand(),
		a.newProductCommand(),
		a.newCategoriesCommand(),
		a.newCartCommand(),
		a.newCheckoutCommand(),
		a.newOrdersCommand(),
		a.newOrderCommand(),
		a.newProfileCommand(),
		a.newVersionCommand(),
	)

	root.SetOut(a.io)
	root.SetErr(a.io)
	return root
}
