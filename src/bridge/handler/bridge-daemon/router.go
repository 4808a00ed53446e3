package bridgedaemon

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type jsonRPCRouter struct {
	bridgedaemon controller.Controller
	uuid         uuid.UUID
	stats        tally.Scope
}

// HandleReq handles routing for a single request.
// Every route calls reply, notifications included, so that the next request on the connection can start.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.ConnectionUUIDToContext(ctx, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	case entity.MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Workspace methods
	case protocol.MethodWorkspaceExecuteCommand:
		return r.ExecuteCommand(ctx, reply, req)

	// Surface notifications
	case entity.MethodSurfaceMessage:
		return r.SurfaceMessage(ctx, reply, req)

	case entity.MethodDidDisposeSurface:
		return r.DidDisposeSurface(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
