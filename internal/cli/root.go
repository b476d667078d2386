// Package cli wires configuration, services and transports into the
// admin-console commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"example.com/admin-console/internal/config"
)

type globalFlags struct {
	configPath string
	envFiles   []string
}

func (f *globalFlags) load() (config.Config, error) {
	return config.Load(f.configPath, f.envFiles...)
}

// NewRootCmd creates the root cobra command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "admin-console",
		Short:         "Admin console backend for the store's products and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{".env"}, "dotenv files to load (missing files are skipped)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newHashPasswordCmd())
	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newOrdersCmd(flags))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
