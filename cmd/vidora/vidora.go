package main

import (
	"github.com/spf13/cobra"
	"github.com/vidora/cli/cmd/vidora/analytics"
	"github.com/vidora/cli/cmd/vidora/auth"
	"github.com/vidora/cli/cmd/vidora/channels"
	"github.com/vidora/cli/cmd/vidora/form"
	"github.com/vidora/cli/cmd/vidora/media"
	"github.com/vidora/cli/cmd/vidora/metadata"
	"github.com/vidora/cli/pkg/logging"
	"os"
)

var (
	rootCmd = &cobra.Command{
		Use:   "vidora",
		Short: "Manage media on the Vidora platform",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logging.Verbose()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(auth.GetCommands()...)
	rootCmd.AddCommand(media.GetCommands()...)
	rootCmd.AddCommand(channels.GetCommands()...)
	rootCmd.AddCommand(metadata.GetCommands()...)
	rootCmd.AddCommand(analytics.GetCommands()...)
	rootCmd.AddCommand(form.GetCommands()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
