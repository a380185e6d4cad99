package auth

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
)

func GetCommands() []*cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  `Store the organization, access key and secret for later calls`,
		Run: func(cmd *cobra.Command, args []string) {
			login(cmd, args)
		}}

	loginCmd.Flags().StringP("organization", "o", "", "Organization ID")
	loginCmd.Flags().StringP("access-key", "k", "", "Access key")
	loginCmd.Flags().StringP("secret", "x", "", "Secret")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check the stored credentials",
		Long:  `Issue a signed call to verify the configured credentials work`,
		Run: func(cmd *cobra.Command, args []string) {
			status(cmd, args)
		}}

	return []*cobra.Command{loginCmd, statusCmd}
}

func login(cmd *cobra.Command, args []string) {
	organization, _ := cmd.Flags().GetString("organization")
	accessKey, _ := cmd.Flags().GetString("access-key")
	secret, _ := cmd.Flags().GetString("secret")

	if organization == "" {
		logging.Log.Fatal("✗ an organization is required")
	}

	err := creds.Store(&creds.Credentials{
		Organization: organization,
		AccessKey:    accessKey,
		Secret:       secret,
	})
	if err != nil {
		logging.Log.Fatal(err)
	}
	logging.Log.Infof("✔ Stored credentials for organization `%s`", organization)
}

func status(cmd *cobra.Command, args []string) {
	c := creds.GetClient()

	names, err := c.CustomProperties(context.Background())
	if err != nil {
		logging.Log.Fatalf("✗ credentials rejected: %s", err)
	}
	logging.Log.Infof("✔ Authenticated for organization `%s` (%d custom properties registered)", c.Organization(), len(names))
}
