package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/uber/scene-bridge/src/bridge/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInitializedParams maps the parameters from a jsonrpc2.Request into protocol.InitializedParams.
func RequestToInitializedParams(req jsonrpc2.Request) (*protocol.InitializedParams, error) {
	params := protocol.InitializedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsonrpc2.Request into protocol.ExecuteCommandParams.
// Each argument is kept as raw JSON so the command decodes it into the shape it expects.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*protocol.ExecuteCommandParams, error) {
	params := protocol.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}

	rawArgs := []interface{}{}
	for _, arg := range params.Arguments {
		rawArg, err := json.Marshal(arg)
		if err != nil {
			return nil, wrapErrParse(err)
		}
		rawArgs = append(rawArgs, json.RawMessage(rawArg))
	}

	params.Arguments = rawArgs
	return &params, nil
}

// RequestToSurfaceMessageParams maps the parameters of a bridge/surfaceMessage notification.
func RequestToSurfaceMessageParams(req jsonrpc2.Request) (*entity.SurfaceMessageParams, error) {
	params := entity.SurfaceMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidDisposeSurfaceParams maps the parameters of a bridge/didDisposeSurface notification.
func RequestToDidDisposeSurfaceParams(req jsonrpc2.Request) (*entity.DidDisposeSurfaceParams, error) {
	params := entity.DidDisposeSurfaceParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.SurfaceID == "" {
		return nil, wrapErrParse(fmt.Errorf("missing surfaceId"))
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
}
