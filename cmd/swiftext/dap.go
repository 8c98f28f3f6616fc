package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/swift-tooling/swiftext/internal/debug"
	"github.com/swift-tooling/swiftext/internal/extension"
	"github.com/swift-tooling/swiftext/internal/worktree"
)

var (
	dapWorktree    string
	dapAdapter     string
	dapConfig      string
	dapConfigFile  string
	dapAdapterPath string
	dapEmitRequest bool
)

func init() {
	for _, c := range []*cobra.Command{dapBinaryCmd, requestKindCmd} {
		c.Flags().StringVar(&dapConfig, "config", "", "Debug configuration JSON")
		c.Flags().StringVar(&dapConfigFile, "config-file", "", "Path to a debug configuration JSON file")
		c.Flags().StringVar(&dapAdapter, "adapter", extension.AdapterName, "Debug adapter identifier")
	}
	dapBinaryCmd.Flags().StringVar(&dapWorktree, "worktree", toolCfg.Worktree, "Worktree root directory")
	dapBinaryCmd.Flags().StringVar(&dapAdapterPath, "adapter-path", toolCfg.AdapterPath, "Explicit lldb-dap path, overriding discovery")
	dapBinaryCmd.Flags().BoolVar(&dapEmitRequest, "emit-request", false, "Print the DAP start request for the resolved binary")
}

// readDapConfig returns the configuration bytes from --config or --config-file.
func readDapConfig() ([]byte, error) {
	switch {
	case dapConfig != "" && dapConfigFile != "":
		return nil, fmt.Errorf("--config and --config-file are mutually exclusive")
	case dapConfig != "":
		return []byte(dapConfig), nil
	case dapConfigFile != "":
		raw, err := os.ReadFile(dapConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read debug configuration: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("a debug configuration is required (--config or --config-file)")
	}
}

var dapBinaryCmd = &cobra.Command{
	Use:   "dap-binary",
	Short: "Resolve the debug adapter binary",
	Long:  "Resolve the lldb-dap invocation for a debug configuration: user override, Xcode and CommandLineTools dispatch paths, then the worktree search path",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readDapConfig()
		if err != nil {
			return err
		}
		root, err := filepath.Abs(dapWorktree)
		if err != nil {
			return err
		}

		bin, err := newExtension().DebugAdapterBinary(dapAdapter, raw, dapAdapterPath, worktree.NewLocal(root))
		if err != nil {
			return err
		}

		color.New(color.Bold).Println(bin.Command)
		fmt.Printf("request: %s\n", bin.Request)
		fmt.Printf("cwd: %s\n", bin.Cwd)

		if dapEmitRequest {
			msg, err := debug.StartMessage(bin, 1)
			if err != nil {
				return err
			}
			encoded, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
		}
		return nil
	},
}

var requestKindCmd = &cobra.Command{
	Use:   "request-kind",
	Short: "Classify a debug configuration",
	Long:  "Report whether a debug configuration's request discriminator is a launch or an attach",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readDapConfig()
		if err != nil {
			return err
		}

		kind, err := newExtension().DebugRequestKind(dapAdapter, raw)
		if err != nil {
			return err
		}
		fmt.Println(kind)
		return nil
	},
}
