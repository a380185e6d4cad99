package metadata

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
)

func GetCommands() []*cobra.Command {
	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Manage custom metadata properties",
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List registered custom properties",
		Run: func(cmd *cobra.Command, args []string) {
			names, err := creds.GetClient().CustomProperties(context.Background())
			if err != nil {
				logging.Log.Fatal(err)
			}
			for _, name := range names {
				logging.Log.Info(name)
			}
		}}

	createCmd := &cobra.Command{
		Use:   "create <name>...",
		Short: "Register custom properties",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().CreateCustomProperties(context.Background(), args...); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Registered %d custom propert%s", len(args), plural(len(args)))
		}}

	rmCmd := &cobra.Command{
		Use:   "rm <name>...",
		Short: "Remove custom properties",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().DeleteCustomProperties(context.Background(), args...); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Removed %d custom propert%s", len(args), plural(len(args)))
		}}

	metadataCmd.AddCommand(lsCmd, createCmd, rmCmd)

	return []*cobra.Command{metadataCmd}
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
