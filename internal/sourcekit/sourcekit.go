// Package sourcekit resolves and describes the sourcekit-lsp language server:
// how to launch it for a given worktree, and how its completions and symbols
// should be rendered by the host.
package sourcekit

import (
	"github.com/swift-tooling/swiftext/internal/host"
)

// ServerID is the language server identifier this extension owns.
const ServerID = "sourcekit-lsp"

// xcrunPath is the toolchain dispatcher used when no binary can be resolved
// from settings or the worktree search path. Invoking it may still fail at
// runtime; the host surfaces that failure separately.
const xcrunPath = "/usr/bin/xcrun"

// SourceKitLSP resolves launch commands and synthesizes code labels for
// sourcekit-lsp. It is stateless; one instance serves the facade for the life
// of the process.
type SourceKitLSP struct{}

// New returns a SourceKitLSP.
func New() *SourceKitLSP {
	return &SourceKitLSP{}
}

// defaultArgs is the argument list used when settings do not override it.
func defaultArgs() []string {
	return nil
}

// serverBinary is an intermediate resolution result. A nil args slice means
// the caller should apply the default argument list.
type serverBinary struct {
	path string
	args []string
	env  map[string]string
}

// binary resolves the server binary with a fixed precedence: an explicit
// settings path wins, then a binary discovered on the worktree search path,
// then the xcrun dispatcher. The chain never fails; only a settings-store
// error propagates.
func (s *SourceKitLSP) binary(settings host.SettingsSource, wt host.Worktree) (serverBinary, error) {
	lspSettings, err := settings.ForWorktree(ServerID, wt)
	if err != nil {
		return serverBinary{}, err
	}

	if lspSettings != nil && lspSettings.Binary != nil && lspSettings.Binary.Path != "" {
		env := make(map[string]string, len(lspSettings.Binary.Env))
		for k, v := range lspSettings.Binary.Env {
			env[k] = v
		}
		return serverBinary{
			path: lspSettings.Binary.Path,
			args: lspSettings.Binary.Arguments,
			env:  env,
		}, nil
	}

	if path, ok := wt.Which(ServerID); ok {
		return serverBinary{
			path: path,
			env:  wt.ShellEnv(),
		}, nil
	}

	return serverBinary{
		path: xcrunPath,
		args: []string{ServerID},
		env:  map[string]string{},
	}, nil
}

// Command returns the command line the host should use to launch
// sourcekit-lsp for the given worktree.
func (s *SourceKitLSP) Command(settings host.SettingsSource, wt host.Worktree) (host.Command, error) {
	bin, err := s.binary(settings, wt)
	if err != nil {
		return host.Command{}, err
	}

	args := bin.args
	if args == nil {
		args = defaultArgs()
	}

	return host.Command{
		Path: bin.path,
		Args: args,
		Env:  bin.env,
	}, nil
}
