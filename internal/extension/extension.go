// Package extension dispatches host callbacks to the Swift toolchain
// components by server and adapter identifier. It owns no logic beyond
// identifier matching and lazy construction of the language-server resolver.
package extension

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/swift-tooling/swiftext/internal/debug"
	"github.com/swift-tooling/swiftext/internal/host"
	"github.com/swift-tooling/swiftext/internal/sourcekit"
)

// AdapterName is the debug adapter identifier this extension owns.
const AdapterName = "Swift"

var (
	// ErrUnknownServer reports a language server identifier this extension
	// does not own.
	ErrUnknownServer = errors.New("unknown language server")

	// ErrUnknownAdapter reports a debug adapter identifier this extension
	// does not own.
	ErrUnknownAdapter = errors.New("unknown debug adapter")
)

// Extension is the entry point the host drives. The host guarantees one call
// in flight at a time, so the lazily created sourcekit instance needs no
// locking.
type Extension struct {
	settings  host.SettingsSource
	logger    *zap.Logger
	sourcekit *sourcekit.SourceKitLSP
}

// New creates an extension. Both arguments may be nil: settings default to an
// empty store and logging to a nop logger.
func New(settings host.SettingsSource, logger *zap.Logger) *Extension {
	if settings == nil {
		settings = host.NoSettings{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extension{settings: settings, logger: logger}
}

// server returns the sourcekit instance, creating it on first use.
func (e *Extension) server() *sourcekit.SourceKitLSP {
	if e.sourcekit == nil {
		e.sourcekit = sourcekit.New()
	}
	return e.sourcekit
}

// LanguageServerCommand resolves the launch command for a language server.
func (e *Extension) LanguageServerCommand(serverID string, wt host.Worktree) (host.Command, error) {
	if serverID != sourcekit.ServerID {
		return host.Command{}, fmt.Errorf("%w: %s", ErrUnknownServer, serverID)
	}

	e.logger.Debug("resolving language server command", zap.String("server", serverID))
	return e.server().Command(e.settings, wt)
}

// InitializationOptions returns the opaque initialization-options blob the
// host has stored for the server, or nil when none exist. A settings-store
// failure degrades to empty options so server startup is never blocked on it.
func (e *Extension) InitializationOptions(serverID string, wt host.Worktree) (json.RawMessage, error) {
	if serverID != sourcekit.ServerID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownServer, serverID)
	}

	settings, err := e.settings.ForWorktree(serverID, wt)
	if err != nil {
		e.logger.Warn("failed to load lsp settings", zap.String("server", serverID), zap.Error(err))
		return nil, nil
	}
	if settings == nil {
		return nil, nil
	}
	return settings.InitializationOptions, nil
}

// LabelForCompletion renders a completion label. Unrecognized server
// identifiers yield nil, not an error, since other extensions sharing the
// host may own them.
func (e *Extension) LabelForCompletion(serverID string, item protocol.CompletionItem) *host.CodeLabel {
	if serverID != sourcekit.ServerID {
		return nil
	}
	return e.server().LabelForCompletion(item)
}

// LabelForSymbol renders a symbol label, with the same unknown-identifier
// semantics as LabelForCompletion.
func (e *Extension) LabelForSymbol(serverID string, symbol protocol.SymbolInformation) *host.CodeLabel {
	if serverID != sourcekit.ServerID {
		return nil
	}
	return e.server().LabelForSymbol(symbol)
}

// DebugAdapterBinary resolves the lldb-dap invocation for a serialized debug
// configuration.
func (e *Extension) DebugAdapterBinary(adapterName string, config []byte, userPath string, wt host.Worktree) (debug.AdapterBinary, error) {
	if adapterName != AdapterName {
		return debug.AdapterBinary{}, fmt.Errorf("%w: %s", ErrUnknownAdapter, adapterName)
	}

	e.logger.Debug("resolving debug adapter binary", zap.String("adapter", adapterName))
	return debug.ResolveAdapterBinary(config, userPath, wt)
}

// DebugRequestKind classifies a serialized debug configuration as a launch or
// attach request.
func (e *Extension) DebugRequestKind(adapterName string, config []byte) (debug.RequestKind, error) {
	if adapterName != AdapterName {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAdapter, adapterName)
	}
	return debug.ClassifyRequest(config)
}

// DebugConfigToScenario serializes a host-native debug request into a
// scenario for the adapter.
func (e *Extension) DebugConfigToScenario(adapterName, label string, req debug.Request) (debug.Scenario, error) {
	if adapterName != AdapterName {
		return debug.Scenario{}, fmt.Errorf("%w: %s", ErrUnknownAdapter, adapterName)
	}
	return debug.ConfigToScenario(adapterName, label, req)
}
