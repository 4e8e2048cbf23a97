package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			a.io.Println("Storefront Client")
			a.io.Printf("Version:    %s\n", a.version.Version)
			a.io.Printf("Build Date: %s\n", a.version.BuildDate)
			a.io.Printf("Git Commit: %s\n", a.version.GitCommit)
		},
	}
}
