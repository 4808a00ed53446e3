package bridgedaemon

import (
	"context"

	"github.com/uber/scene-bridge/src/bridge/internal/errors"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.bridgedaemon.ExecuteCommand(ctx, params)
	if errors.IsBadRequest(err) {
		// Keep the message, the host only learns the code from a wire error.
		err = jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	return reply(ctx, result, err)
}
