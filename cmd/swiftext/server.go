package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/swift-tooling/swiftext/internal/sourcekit"
	"github.com/swift-tooling/swiftext/internal/worktree"
)

var (
	serverWorktree string
	serverID       string
)

func init() {
	serverCommandCmd.Flags().StringVar(&serverWorktree, "worktree", toolCfg.Worktree, "Worktree root directory")
	serverCommandCmd.Flags().StringVar(&serverID, "server", sourcekit.ServerID, "Language server identifier")

	initOptionsCmd.Flags().StringVar(&serverWorktree, "worktree", toolCfg.Worktree, "Worktree root directory")
	initOptionsCmd.Flags().StringVar(&serverID, "server", sourcekit.ServerID, "Language server identifier")
}

var serverCommandCmd = &cobra.Command{
	Use:   "server-command",
	Short: "Resolve the language server launch command",
	Long:  "Resolve the sourcekit-lsp launch command for a worktree: settings override, search path discovery, or the xcrun fallback",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(serverWorktree)
		if err != nil {
			return err
		}

		command, err := newExtension().LanguageServerCommand(serverID, worktree.NewLocal(root))
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Print(command.Path)
		if len(command.Args) > 0 {
			fmt.Print(" " + strings.Join(command.Args, " "))
		}
		fmt.Println()

		if len(command.Env) > 0 {
			keys := make([]string, 0, len(command.Env))
			for k := range command.Env {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Printf("environment: %d variable(s): %s\n", len(keys), strings.Join(keys, ", "))
		}
		return nil
	},
}

var initOptionsCmd = &cobra.Command{
	Use:   "init-options",
	Short: "Show the server's initialization options",
	Long:  "Print the initialization-options blob stored for the language server, passed through to it verbatim",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(serverWorktree)
		if err != nil {
			return err
		}

		options, err := newExtension().InitializationOptions(serverID, worktree.NewLocal(root))
		if err != nil {
			return err
		}
		if options == nil {
			fmt.Println("no initialization options configured")
			return nil
		}
		fmt.Println(string(options))
		return nil
	},
}
