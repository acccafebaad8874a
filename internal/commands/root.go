// Package commands wires the CLI surface: parsing bill exports locally
// and serving the HTTP API.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bill-importer",
		Short:   "Parse WeChat Pay and Alipay bill exports into importable records",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
