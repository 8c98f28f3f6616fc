package main

import (
	"github.com/spf13/viper"
)

// toolConfig carries cross-command defaults. Flags always override it.
type toolConfig struct {
	Worktree    string
	AdapterPath string
	Verbose     bool
}

// toolCfg is resolved once at startup from SWIFTEXT_* environment variables.
var toolCfg = loadToolConfig()

// loadToolConfig reads tool defaults from the environment, e.g.
// SWIFTEXT_WORKTREE, SWIFTEXT_ADAPTER_PATH, SWIFTEXT_VERBOSE.
func loadToolConfig() toolConfig {
	v := viper.New()
	v.SetDefault("worktree", ".")
	v.SetDefault("adapter_path", "")
	v.SetDefault("verbose", false)
	v.SetEnvPrefix("swiftext")
	v.AutomaticEnv()

	return toolConfig{
		Worktree:    v.GetString("worktree"),
		AdapterPath: v.GetString("adapter_path"),
		Verbose:     v.GetBool("verbose"),
	}
}
