// Command mwsqldump streams rows out of a MediaWiki MySQL dump file,
// one supported table at a time, as newline-delimited JSON.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var logger *log.Logger

func main() {
	logPath := filepath.Join(os.TempDir(), "mwsqldump.log")
	logfile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mwsqldump: %v\n", err)
		os.Exit(1)
	}
	defer logfile.Close()
	logger = log.New(logfile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mwsqldump: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mwsqldump",
		Short:         "Stream rows out of a MediaWiki MySQL dump as JSON Lines",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newRowsCommand())
	root.AddCommand(newStatsCommand())
	root.AddCommand(newServeCommand())
	return root
}
