package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	xcodePath = "/Applications/Xcode.app/Contents/Developer/usr/bin/lldb-dap"
	cltPath   = "/Library/Developer/CommandLineTools/usr/bin/lldb-dap"
)

// fakeWorktree is an in-memory host.Worktree.
type fakeWorktree struct {
	root     string
	binaries map[string]string
	env      map[string]string
}

func (f *fakeWorktree) Which(name string) (string, bool) {
	path, ok := f.binaries[name]
	return path, ok
}

func (f *fakeWorktree) ShellEnv() map[string]string { return f.env }

func (f *fakeWorktree) RootPath() string { return f.root }

const launchConfig = `{"request":"launch","program":"/build/app","cwd":"/work","env":{"A":"1"}}`

func TestResolveAdapterBinaryUserPathWins(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{xcodePath: xcodePath, "lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(launchConfig), "/custom/lldb-dap", wt)
	require.NoError(t, err)
	assert.Equal(t, "/custom/lldb-dap", bin.Command)
}

func TestResolveAdapterBinaryXcodeDispatch(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{xcodePath: xcodePath, cltPath: cltPath},
	}

	bin, err := ResolveAdapterBinary([]byte(launchConfig), "", wt)
	require.NoError(t, err)
	assert.Equal(t, xcodePath, bin.Command, "Xcode dispatch path is tried first")
}

func TestResolveAdapterBinaryCommandLineToolsFallback(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{cltPath: cltPath, "lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(launchConfig), "", wt)
	require.NoError(t, err)
	assert.Equal(t, cltPath, bin.Command)
}

func TestResolveAdapterBinaryBareName(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{"lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(launchConfig), "", wt)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/lldb-dap", bin.Command)
}

func TestResolveAdapterBinaryNotFound(t *testing.T) {
	_, err := ResolveAdapterBinary([]byte(launchConfig), "", &fakeWorktree{root: "/work"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdapterNotFound)
}

func TestResolveAdapterBinaryPackaging(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/projects/app",
		binaries: map[string]string{"lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(launchConfig), "", wt)
	require.NoError(t, err)

	assert.Equal(t, RequestLaunch, bin.Request)
	assert.Equal(t, launchConfig, bin.Configuration, "configuration text is carried verbatim")
	assert.Equal(t, "/work", bin.Cwd, "cwd comes from the configuration, not the worktree root")
	assert.Equal(t, map[string]string{"A": "1"}, bin.Env)
	assert.Empty(t, bin.Args)
}

func TestResolveAdapterBinaryCwdDefaultsToRoot(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/projects/app",
		binaries: map[string]string{"lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(`{"request":"launch","program":"/build/app"}`), "", wt)
	require.NoError(t, err)
	assert.Equal(t, "/projects/app", bin.Cwd)
}

func TestResolveAdapterBinaryAttach(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{"lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	bin, err := ResolveAdapterBinary([]byte(`{"request":"attach","pid":42}`), "", wt)
	require.NoError(t, err)
	assert.Equal(t, RequestAttach, bin.Request)
}

func TestResolveAdapterBinaryMalformedConfig(t *testing.T) {
	wt := &fakeWorktree{
		root:     "/work",
		binaries: map[string]string{"lldb-dap": "/usr/local/bin/lldb-dap"},
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{`},
		{"missing request", `{"program":"/build/app"}`},
		{"unexpected request", `{"request":"debug"}`},
		{"launch without program", `{"request":"launch"}`},
		{"attach with program", `{"request":"attach","program":"/build/app"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveAdapterBinary([]byte(tt.raw), "", wt)
			assert.Error(t, err)
		})
	}
}
