// Package host defines the boundary types shared between the editor host and
// the extension: the worktree collaborator, resolved commands, and code labels.
// The host owns settings storage and process lifecycles; this package only
// describes the shapes that cross the boundary.
package host

// Worktree is the host-provided view of the workspace the extension is
// operating in. Implementations are consumed, never mutated.
type Worktree interface {
	// Which resolves a binary name (or absolute candidate path) to an
	// executable path, reporting whether one was found.
	Which(name string) (string, bool)

	// ShellEnv returns the worktree's inherited shell environment.
	ShellEnv() map[string]string

	// RootPath returns the worktree root directory.
	RootPath() string
}

// Command is a runnable command line produced by binary resolution.
// Constructed fresh per resolution call and owned by the caller.
type Command struct {
	Path string
	Args []string
	Env  map[string]string
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Span is a highlighted sub-range of a code label. An empty Highlight means
// the span is rendered without a syntax highlight.
type Span struct {
	Range     Range
	Highlight string
}

// CodeLabel is a synthesized display label for a completion or symbol: a code
// snippet, highlighted sub-ranges, and the sub-range a fuzzy matcher should
// score against. All ranges index into Code; for completions rendered without
// a synthesized snippet, Code is the original label text.
type CodeLabel struct {
	Code        string
	Spans       []Span
	FilterRange Range
}
