package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swift-tooling/swiftext/internal/debug"
	"github.com/swift-tooling/swiftext/internal/extension"
)

var (
	scenarioRequest     string
	scenarioLabel       string
	scenarioProgram     string
	scenarioPid         int
	scenarioCwd         string
	scenarioEnv         []string
	scenarioStopOnEntry bool
)

func init() {
	scenarioCmd.Flags().StringVar(&scenarioRequest, "request", "launch", `Request kind ("launch" or "attach")`)
	scenarioCmd.Flags().StringVar(&scenarioLabel, "label", "Debug Swift program", "Scenario display label")
	scenarioCmd.Flags().StringVar(&scenarioProgram, "program", "", "Program to launch")
	scenarioCmd.Flags().IntVar(&scenarioPid, "pid", 0, "Process id to attach to")
	scenarioCmd.Flags().StringVar(&scenarioCwd, "cwd", "", "Working directory for the launched program")
	scenarioCmd.Flags().StringArrayVar(&scenarioEnv, "env", nil, "Environment variable KEY=VALUE (repeatable)")
	scenarioCmd.Flags().BoolVar(&scenarioStopOnEntry, "stop-on-entry", false, "Stop at the program entry point")
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Translate a debug request into an adapter scenario",
	Long:  "Serialize a launch or attach request into the configuration text handed to lldb-dap",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req debug.Request
		switch scenarioRequest {
		case "launch":
			env := make(map[string]string, len(scenarioEnv))
			for _, kv := range scenarioEnv {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --env value %q, expected KEY=VALUE", kv)
				}
				env[k] = v
			}
			req = debug.Launch{
				Program:     scenarioProgram,
				Cwd:         scenarioCwd,
				Env:         env,
				StopOnEntry: scenarioStopOnEntry,
			}
		case "attach":
			req = debug.Attach{
				Pid:         scenarioPid,
				StopOnEntry: scenarioStopOnEntry,
			}
		default:
			return fmt.Errorf("unknown request kind %q", scenarioRequest)
		}

		scenario, err := newExtension().DebugConfigToScenario(extension.AdapterName, scenarioLabel, req)
		if err != nil {
			return err
		}
		fmt.Println(scenario.Config)
		return nil
	},
}
