package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BinarySettings is an explicit binary override for a language server.
type BinarySettings struct {
	Path      string            `yaml:"path"`
	Arguments []string          `yaml:"arguments"`
	Env       map[string]string `yaml:"env"`
}

// LspSettings is the per-server slice of the host's settings store. The
// initialization options are an opaque blob passed through to the server
// verbatim; the extension never inspects them.
type LspSettings struct {
	Binary                *BinarySettings
	InitializationOptions json.RawMessage
}

// SettingsSource supplies the settings the host has stored for a language
// server in a given worktree. A nil *LspSettings means no settings exist.
type SettingsSource interface {
	ForWorktree(serverID string, wt Worktree) (*LspSettings, error)
}

// NoSettings is a SettingsSource with nothing configured.
type NoSettings struct{}

// ForWorktree always reports no settings.
func (NoSettings) ForWorktree(string, Worktree) (*LspSettings, error) { return nil, nil }

// serverSettingsSchema mirrors one server entry of the settings file.
type serverSettingsSchema struct {
	Binary                *BinarySettings `yaml:"binary"`
	InitializationOptions map[string]any  `yaml:"initialization_options"`
}

type settingsFileSchema struct {
	Lsp map[string]serverSettingsSchema `yaml:"lsp"`
}

// FileSettings reads lsp settings from a swiftext.yaml (or .yml) file at the
// worktree root:
//
//	lsp:
//	  sourcekit-lsp:
//	    binary:
//	      path: /opt/swift/bin/sourcekit-lsp
//	      arguments: ["--log-level", "info"]
//	      env:
//	        SOURCEKIT_TOOLCHAIN_PATH: /opt/swift
//	    initialization_options:
//	      backgroundIndexing: true
//
// Environment variable names and initialization options are case-sensitive,
// so the file is decoded with yaml directly rather than through a
// case-folding config layer. A missing file is not an error; the resolution
// chain simply moves on to worktree discovery.
type FileSettings struct {
	// ConfigName overrides the settings file base name. Empty means "swiftext".
	ConfigName string
}

// ForWorktree loads the settings slice for serverID from the worktree root.
func (f FileSettings) ForWorktree(serverID string, wt Worktree) (*LspSettings, error) {
	name := f.ConfigName
	if name == "" {
		name = "swiftext"
	}

	var raw []byte
	for _, ext := range []string{".yaml", ".yml"} {
		data, err := os.ReadFile(filepath.Join(wt.RootPath(), name+ext))
		if err == nil {
			raw = data
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}
	if raw == nil {
		return nil, nil
	}

	var schema settingsFileSchema
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse %s settings: %w", name, err)
	}

	server, ok := schema.Lsp[serverID]
	if !ok {
		return nil, nil
	}

	settings := &LspSettings{Binary: server.Binary}
	if server.InitializationOptions != nil {
		encoded, err := json.Marshal(server.InitializationOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to encode initialization options for %s: %w", serverID, err)
		}
		settings.InitializationOptions = encoded
	}

	return settings, nil
}
