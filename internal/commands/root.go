package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "logsink",
	Short: "Append log events to a size-capped file",
	Long: `logsink pipes text log lines into one or more configured sinks.
The file sink appends to a single file, optionally capping its total size:
once the cap is reached further output is dropped silently rather than
growing the file unbounded.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
