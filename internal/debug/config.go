// Package debug translates between host-native debug requests and the textual
// configuration protocol the lldb-dap debug adapter consumes, and resolves the
// adapter binary itself.
package debug

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RequestKind is the normalized kind of a debug request.
type RequestKind int

const (
	// RequestLaunch starts the program under the debugger.
	RequestLaunch RequestKind = iota
	// RequestAttach attaches the debugger to a running process.
	RequestAttach
)

// String returns the wire discriminator for the kind.
func (k RequestKind) String() string {
	switch k {
	case RequestLaunch:
		return "launch"
	case RequestAttach:
		return "attach"
	default:
		return fmt.Sprintf("RequestKind(%d)", int(k))
	}
}

var (
	// ErrMissingRequest reports a configuration without the request
	// discriminator field.
	ErrMissingRequest = errors.New("missing required `request` field in debug adapter configuration")

	// ErrUnexpectedRequest reports a request discriminator outside the
	// launch/attach vocabulary.
	ErrUnexpectedRequest = errors.New("unexpected value for `request` field in debug adapter configuration")

	// ErrAdapterNotFound reports that no tier of the adapter resolution chain
	// produced a usable lldb-dap path.
	ErrAdapterNotFound = errors.New("could not find lldb-dap")
)

// Config is the serialized debug configuration the adapter receives. Unknown
// fields are ignored; the extension only ever inspects the fields below.
type Config struct {
	Request     string            `json:"request"`
	Program     string            `json:"program,omitempty"`
	Pid         *int              `json:"pid,omitempty"`
	Cwd         string            `json:"cwd,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	StopOnEntry bool              `json:"stopOnEntry,omitempty"`
}

// Request is a host-native launch or attach request.
type Request interface {
	requestKind() RequestKind
}

// Launch starts a program under the debugger.
type Launch struct {
	Program     string
	Cwd         string
	Env         map[string]string
	StopOnEntry bool
}

func (Launch) requestKind() RequestKind { return RequestLaunch }

// Attach attaches the debugger to an already running process.
type Attach struct {
	Pid         int
	StopOnEntry bool
}

func (Attach) requestKind() RequestKind { return RequestAttach }

// Scenario is a debug configuration packaged for the host: the adapter to use,
// a display label, and the serialized configuration text.
type Scenario struct {
	Adapter string
	Label   string
	Config  string
}

// ConfigToScenario serializes a host-native debug request into a scenario. A
// launch request must carry a program; an attach configuration never does.
func ConfigToScenario(adapter, label string, req Request) (Scenario, error) {
	var cfg Config
	switch r := req.(type) {
	case Launch:
		if r.Program == "" {
			return Scenario{}, errors.New("launch request requires a program")
		}
		cfg = Config{
			Request:     RequestLaunch.String(),
			Program:     r.Program,
			Cwd:         r.Cwd,
			Env:         r.Env,
			StopOnEntry: r.StopOnEntry,
		}
	case Attach:
		cfg = Config{
			Request:     RequestAttach.String(),
			StopOnEntry: r.StopOnEntry,
		}
		if r.Pid != 0 {
			pid := r.Pid
			cfg.Pid = &pid
		}
	default:
		return Scenario{}, fmt.Errorf("unsupported debug request type %T", req)
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to serialize debug configuration: %w", err)
	}

	return Scenario{
		Adapter: adapter,
		Label:   label,
		Config:  string(raw),
	}, nil
}

// ClassifyRequest inspects the request discriminator of a serialized
// configuration. Only an absent field is a missing-field error; any present
// value outside the launch/attach vocabulary, string or not, is always a hard
// error, never coerced.
func ClassifyRequest(raw []byte) (RequestKind, error) {
	var probe struct {
		Request json.RawMessage `json:"request"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return 0, fmt.Errorf("invalid debug adapter configuration: %w", err)
	}
	if probe.Request == nil {
		return 0, ErrMissingRequest
	}

	var request string
	if err := json.Unmarshal(probe.Request, &request); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedRequest, probe.Request)
	}
	return classify(request)
}

func classify(request string) (RequestKind, error) {
	switch request {
	case "launch":
		return RequestLaunch, nil
	case "attach":
		return RequestAttach, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedRequest, request)
	}
}

// parseConfig decodes a serialized configuration and validates that its
// fields agree with the declared request kind.
func parseConfig(raw []byte) (Config, RequestKind, error) {
	kind, err := ClassifyRequest(raw)
	if err != nil {
		return Config{}, 0, err
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, 0, fmt.Errorf("invalid debug adapter configuration: %w", err)
	}

	switch kind {
	case RequestLaunch:
		if cfg.Program == "" {
			return Config{}, 0, errors.New("missing required `program` field in launch configuration")
		}
	case RequestAttach:
		if cfg.Program != "" {
			return Config{}, 0, errors.New("attach configuration must not set `program`")
		}
	}

	return cfg, kind, nil
}
