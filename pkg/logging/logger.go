package logging

import (
	log "github.com/sirupsen/logrus"
	"os"
)

var (
	Log = log.New()
)

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetLevel(log.InfoLevel)
	Log.SetFormatter(&log.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: true,
	})
}

// Verbose switches the logger to debug level.
func Verbose() {
	Log.SetLevel(log.DebugLevel)
}
