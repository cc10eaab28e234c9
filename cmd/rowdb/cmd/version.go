package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leengari/rowdb/internal/repl"
)

// Version is the release version, overridable at link time.
var Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", repl.SoftwareName, Version)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
