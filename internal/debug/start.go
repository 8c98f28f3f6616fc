package debug

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-dap"
)

// StartMessage packages a resolved adapter binary's configuration as the DAP
// request the host sends to start debugging. The configuration text is carried
// verbatim as the request arguments.
func StartMessage(bin AdapterBinary, seq int) (dap.Message, error) {
	protocolMessage := dap.ProtocolMessage{
		Seq:  seq,
		Type: "request",
	}

	switch bin.Request {
	case RequestLaunch:
		return &dap.LaunchRequest{
			Request: dap.Request{
				ProtocolMessage: protocolMessage,
				Command:         "launch",
			},
			Arguments: json.RawMessage(bin.Configuration),
		}, nil
	case RequestAttach:
		return &dap.AttachRequest{
			Request: dap.Request{
				ProtocolMessage: protocolMessage,
				Command:         "attach",
			},
			Arguments: json.RawMessage(bin.Configuration),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedRequest, bin.Request)
	}
}
