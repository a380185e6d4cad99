package media

import (
	"context"
	"errors"
	"github.com/cenkalti/backoff/v4"
	"github.com/gen2brain/dlgs"
	"github.com/spf13/cobra"
	"github.com/vidora/cli/pkg/client"
	"github.com/vidora/cli/pkg/creds"
	"github.com/vidora/cli/pkg/logging"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sync"
	"time"
)

func getUploadCommand() *cobra.Command {
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload media files",
		Long:  `Upload a media file, or every media file in a directory`,
		Run: func(cmd *cobra.Command, args []string) {
			upload(cmd, args)
		}}

	uploadCmd.Flags().StringP("source", "s", "", "Select the source file or directory")
	uploadCmd.Flags().StringP("title", "t", "", "Title for the uploaded media")
	uploadCmd.Flags().StringArrayP("meta", "m", nil, "Custom metadata, as key=value (repeatable)")
	uploadCmd.Flags().BoolP("await", "a", false, "Wait until the platform finished encoding")

	return uploadCmd
}

func upload(cmd *cobra.Command, args []string) {
	c := creds.GetClient()

	source, err := cmd.Flags().GetString("source")
	if err != nil {
		logging.Log.Fatal(err)
	}
	if source == "" {
		selectedSource, ok, err := dlgs.File("Select a file or directory to upload", "", true)
		if err != nil {
			logging.Log.Fatal(err)
		}
		if !ok {
			logging.Log.Fatal("failed to select a source")
		}
		source = selectedSource
	}

	title, _ := cmd.Flags().GetString("title")
	pairs, _ := cmd.Flags().GetStringArray("meta")
	await, _ := cmd.Flags().GetBool("await")
	metadata := parsePairs(pairs)

	info, err := os.Stat(source)
	if err != nil {
		logging.Log.Fatal(err)
	}

	if !info.IsDir() {
		uploadOne(c, source, title, metadata, await)
		return
	}

	queue := make(chan string, 25)
	uploader := sync.WaitGroup{}
	matcher := regexp.MustCompile(`.*\.(mp4|mov|m4v|mpe?g|avi|wmv|flv|webm|mkv|mp3|m4a)$`)

	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			for path := range queue {
				// The per-flag title only makes sense for a single file;
				// directory uploads fall back to the filename.
				uploadOne(c, path, filepath.Base(path), metadata, await)
				uploader.Done()
			}
		}()
	}

	err = filepath.Walk(source,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if !matcher.MatchString(path) {
				logging.Log.Warnf("✗ skipping `%s`, not a media file", path)
				return nil
			}

			uploader.Add(1)
			queue <- path
			logging.Log.Debugf("✔ added to queue `%s`", path)
			return nil
		})
	if err != nil {
		logging.Log.Fatal(err)
	}

	uploader.Wait()
	logging.Log.Info("✔ Finished uploading all files")
}

func uploadOne(c *client.Client, path string, title string, metadata map[string]string, await bool) {
	report, err := c.Upload(context.Background(), client.FileSource{Path: path}, client.UploadOptions{
		Title:    title,
		Metadata: metadata,
	})
	if err != nil {
		logging.Log.Errorf("✗ failed to upload `%s`: %s", path, err)
		return
	}

	mediaID, _ := report["media_id"].(string)
	logging.Log.Infof("✔ Uploaded `%s` as media `%s`", path, mediaID)

	if await && mediaID != "" {
		if err := awaitEncodings(c, mediaID); err != nil {
			logging.Log.Errorf("✗ gave up waiting on encodings for `%s`: %s", mediaID, err)
			return
		}
		logging.Log.Infof("✔ Media `%s` finished encoding", mediaID)
	}
}

// awaitEncodings polls the encoding report with exponential backoff until
// every encoding is complete.
func awaitEncodings(c *client.Client, mediaID string) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second * 5
	policy.MaxElapsedTime = time.Minute * 30

	return backoff.Retry(func() error {
		report, err := c.MediaEncodings(context.Background(), mediaID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !encodingsComplete(report) {
			return errors.New("media is still encoding")
		}
		return nil
	}, policy)
}

func encodingsComplete(report map[string]interface{}) bool {
	list, ok := report["encodings"].([]interface{})
	if !ok || len(list) == 0 {
		return false
	}
	for _, entry := range list {
		encoding, ok := entry.(map[string]interface{})
		if !ok || encoding["state"] != "Complete" {
			return false
		}
	}
	return true
}
