package channels

import (
	"context"
	"encoding/json"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
	"strings"
)

func GetCommands() []*cobra.Command {
	channelsCmd := &cobra.Command{
		Use:   "channels",
		Short: "Manage channels",
	}

	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a channel",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().CreateChannel(context.Background(), args[0]))
		}}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List channels",
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().ListChannels(context.Background()))
		}}

	updateCmd := &cobra.Command{
		Use:   "update <channel-id>",
		Short: "Update channel properties",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pairs, _ := cmd.Flags().GetStringArray("set")
			printReport(creds.GetClient().UpdateChannel(context.Background(), args[0], parsePairs(pairs)))
		}}
	updateCmd.Flags().StringArray("set", nil, "Property to set, as key=value (repeatable)")

	publishCmd := &cobra.Command{
		Use:   "publish <channel-id>",
		Short: "Publish a channel",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().PublishChannel(context.Background(), args[0]))
		}}

	rmCmd := &cobra.Command{
		Use:   "rm <channel-id>",
		Short: "Delete a channel",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().DeleteChannel(context.Background(), args[0]); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Deleted channel `%s`", args[0])
		}}

	linkCmd := &cobra.Command{
		Use:   "link <channel-id> <media-id>",
		Short: "Add a media asset to a channel",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().AddMediaToChannel(context.Background(), args[0], args[1]); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Linked media `%s` into channel `%s`", args[1], args[0])
		}}

	unlinkCmd := &cobra.Command{
		Use:   "unlink <channel-id> <media-id>",
		Short: "Remove a media asset from a channel",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().RemoveMediaFromChannel(context.Background(), args[0], args[1]); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Unlinked media `%s` from channel `%s`", args[1], args[0])
		}}

	channelsCmd.AddCommand(createCmd, lsCmd, updateCmd, publishCmd, rmCmd, linkCmd, unlinkCmd)

	return []*cobra.Command{channelsCmd}
}

func printReport(report map[string]interface{}, err error) {
	if err != nil {
		logging.Log.Fatal(err)
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logging.Log.Fatal(err)
	}
	logging.Log.Info(string(b))
}

func parsePairs(pairs []string) map[string]string {
	parsed := map[string]string{}
	for _, pair := range pairs {
		if idx := strings.Index(pair, "="); idx != -1 {
			parsed[pair[:idx]] = pair[idx+1:]
		} else {
			logging.Log.Warnf("✗ ignoring `%s`, expected key=value", pair)
		}
	}
	return parsed
}
