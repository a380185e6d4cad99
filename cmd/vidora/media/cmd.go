package media

import (
	"context"
	"encoding/json"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
	"strings"
)

func GetCommands() []*cobra.Command {
	mediaCmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media assets",
	}

	infoCmd := &cobra.Command{
		Use:   "info <media-id>",
		Short: "Show media properties",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().MediaInfo(context.Background(), args[0]))
		}}

	encodingsCmd := &cobra.Command{
		Use:   "encodings <media-id>",
		Short: "Show media encodings",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().MediaEncodings(context.Background(), args[0]))
		}}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List all media",
		Run: func(cmd *cobra.Command, args []string) {
			printReport(creds.GetClient().ListMedia(context.Background()))
		}}

	updateCmd := &cobra.Command{
		Use:   "update <media-id>",
		Short: "Update media properties",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pairs, _ := cmd.Flags().GetStringArray("set")
			printReport(creds.GetClient().UpdateMedia(context.Background(), args[0], parsePairs(pairs)))
		}}
	updateCmd.Flags().StringArray("set", nil, "Property to set, as key=value (repeatable)")

	rmCmd := &cobra.Command{
		Use:   "rm <media-id>",
		Short: "Delete a media asset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := creds.GetClient().DeleteMedia(context.Background(), args[0]); err != nil {
				logging.Log.Fatal(err)
			}
			logging.Log.Infof("✔ Deleted media `%s`", args[0])
		}}

	mediaCmd.AddCommand(infoCmd, encodingsCmd, lsCmd, updateCmd, rmCmd, getUploadCommand())

	return []*cobra.Command{mediaCmd}
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
