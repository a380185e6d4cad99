package form

import (
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/cli"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/form"
	"github.com/vidora/cli/pkg/logging"
)

func GetCommands() []*cobra.Command {
	formCmd := &cobra.Command{
		Use:   "form",
		Short: "Serve a browser upload form",
		Long:  `Serve a local page with a pre-signed upload form, so media can be uploaded straight from a browser`,
		Run: func(cmd *cobra.Command, args []string) {
			serve(cmd, args)
		}}

	formCmd.Flags().IntP("port", "p", 3001, "Define port number for the local form server")

	return []*cobra.Command{formCmd}
}

func serve(cmd *cobra.Command, args []string) {
	c := creds.GetClient()

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		logging.Log.Fatal("invalid port number given")
	}

	server, err := form.GetUploadFormServer("localhost", port, c)
	if err != nil {
		logging.Log.Fatal(err)
	}

	go server.Start()
	logging.Log.Infof("✔ Serving the upload form at %s", server.URL())

	if err := browser.OpenURL(server.URL()); err != nil {
		logging.Log.Warn("could not call browser")
	}
	cli.CloseHandler(server.Stop)
}
