package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// CloseHandler blocks until the process is interrupted, runs the given
// cleanup and exits.
func CloseHandler(cleanup func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	func() {
		<-c
		fmt.Println("\r- Ctrl+C pressed in Terminal")
		if cleanup != nil {
			cleanup()
		}
		os.Exit(0)
	}()
}
