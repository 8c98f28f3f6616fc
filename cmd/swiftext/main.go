package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swift-tooling/swiftext/internal/extension"
	"github.com/swift-tooling/swiftext/internal/host"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "swiftext",
		Short: "Swift editor-integration tooling",
		Long: `swiftext resolves the Swift toolchain for an editor host: it locates
sourcekit-lsp and lldb-dap for a worktree and translates debug requests into
adapter configurations.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", toolCfg.Verbose, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serverCommandCmd)
	rootCmd.AddCommand(initOptionsCmd)
	rootCmd.AddCommand(dapBinaryCmd)
	rootCmd.AddCommand(requestKindCmd)
	rootCmd.AddCommand(scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the extension logger. Verbose mode mirrors the development
// configuration; otherwise logging is silenced.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newExtension wires the extension with file-backed settings, the same shape
// an editor host would supply.
func newExtension() *extension.Extension {
	return extension.New(host.FileSettings{}, newLogger())
}
