// Package worktree provides a local-filesystem implementation of the host
// worktree collaborator, used by the CLI shim and integration-style tests.
package worktree

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/swift-tooling/swiftext/internal/host"
)

// Local is a host.Worktree rooted at a directory on the local filesystem.
type Local struct {
	root string
}

var _ host.Worktree = (*Local)(nil)

// NewLocal creates a worktree rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Which resolves name via the search path, or checks the file directly when
// name is an absolute candidate path.
func (w *Local) Which(name string) (string, bool) {
	if filepath.IsAbs(name) {
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			return "", false
		}
		if info.Mode()&0o111 == 0 {
			return "", false
		}
		return name, true
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// ShellEnv returns the process environment as a map.
func (w *Local) ShellEnv() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// RootPath returns the worktree root directory.
func (w *Local) RootPath() string {
	return w.root
}
