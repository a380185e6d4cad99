package analytics

import (
	"context"
	"fmt"
	"github.com/leekchan/accounting"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
	"sort"
)

func GetCommands() []*cobra.Command {
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Fetch analytics reports",
	}

	mediaCmd := &cobra.Command{
		Use:   "media <media-id>...",
		Short: "Analytics report for one or more media assets",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			report, err := creds.GetClient().MediaAnalytics(context.Background(), args...)
			if err != nil {
				logging.Log.Fatal(err)
			}
			printCounts(report)
		}}

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Organization-wide analytics report",
		Run: func(cmd *cobra.Command, args []string) {
			report, err := creds.GetClient().AccountAnalytics(context.Background())
			if err != nil {
				logging.Log.Fatal(err)
			}
			printCounts(report)
		}}

	analyticsCmd.AddCommand(mediaCmd, accountCmd)

	return []*cobra.Command{analyticsCmd}
}

// printCounts renders the numeric fields of a report with thousand
// separators and everything else as-is.
func printCounts(report map[string]interface{}) {
	ac := accounting.Accounting{Symbol: "", Precision: 0, Thousand: ","}

	keys := make([]string, 0, len(report))
	for key := range report {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if count, ok := report[key].(float64); ok {
			logging.Log.Infof("%s: %s", key, ac.FormatMoney(count))
		} else {
			logging.Log.Infof("%s: %s", key, fmt.Sprint(report[key]))
		}
	}
}
