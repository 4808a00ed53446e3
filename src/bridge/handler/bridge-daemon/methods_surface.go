package bridgedaemon

import (
	"context"

	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// SurfaceMessage forwards a message the host shim received from the rendering surface.
func (r *jsonRPCRouter) SurfaceMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSurfaceMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.bridgedaemon.SurfaceMessage(ctx, params)
	return reply(ctx, nil, err)
}

// DidDisposeSurface reports a surface the user closed.
func (r *jsonRPCRouter) DidDisposeSurface(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidDisposeSurfaceParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.bridgedaemon.DidDisposeSurface(ctx, params)
	return reply(ctx, nil, err)
}
