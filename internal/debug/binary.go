package debug

import (
	"fmt"
	"strings"

	"github.com/swift-tooling/swiftext/internal/host"
)

// adapterCandidates are the lldb-dap locations tried, in order, when the user
// has not supplied an explicit adapter path. The Xcode and CommandLineTools
// dispatch paths come first; a bare name found on the worktree search path is
// the last resort before failing.
var adapterCandidates = []string{
	"/Applications/Xcode.app/Contents/Developer/usr/bin/lldb-dap",
	"/Library/Developer/CommandLineTools/usr/bin/lldb-dap",
	"lldb-dap",
}

// AdapterBinary is a resolved debug adapter invocation packaged with the
// configuration it will execute and the normalized request kind.
type AdapterBinary struct {
	Command       string
	Args          []string
	Env           map[string]string
	Cwd           string
	Configuration string
	Request       RequestKind
}

// ResolveAdapterBinary parses a serialized debug configuration, re-derives its
// request kind, and resolves the lldb-dap executable: a user-provided path
// wins, then the fixed candidate locations via the worktree lookup. Every tier
// missing is an error; there is no dispatcher fallback for the adapter.
func ResolveAdapterBinary(raw []byte, userPath string, wt host.Worktree) (AdapterBinary, error) {
	cfg, kind, err := parseConfig(raw)
	if err != nil {
		return AdapterBinary{}, err
	}

	command := userPath
	if command == "" {
		for _, candidate := range adapterCandidates {
			if path, ok := wt.Which(candidate); ok {
				command = path
				break
			}
		}
	}
	if command == "" {
		return AdapterBinary{}, fmt.Errorf("%w (tried %s)", ErrAdapterNotFound, strings.Join(adapterCandidates, ", "))
	}

	cwd := cfg.Cwd
	if cwd == "" {
		cwd = wt.RootPath()
	}

	return AdapterBinary{
		Command:       command,
		Args:          []string{},
		Env:           cfg.Env,
		Cwd:           cwd,
		Configuration: string(raw),
		Request:       kind,
	}, nil
}
