// Package bridgedaemon connects the bridge daemon controller to the JSON-RPC transport.
package bridgedaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon"
	"github.com/uber/scene-bridge/src/bridge/internal/jsonrpcfx"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Handler creates a router for every host connection accepted by the JSON-RPC module.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

type jsonRPCConnectionManager struct {
	ctrl  controller.Controller
	stats tally.Scope
}

// New constructs a new bridge-daemon Handler and registers it with the JSON-RPC module.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}
	return c, nil
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	c.stats.Counter("connections_opened").Inc(1)

	return &jsonRPCRouter{
		bridgedaemon: c.ctrl,
		uuid:         id,
		stats:        c.stats,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure the connection is removed even if no Exit call has been received.
	ctx = mapper.ConnectionUUIDToContext(ctx, id)
	if err := c.ctrl.EndSession(ctx, id); err != nil {
		c.stats.Counter("connection_cleanup_errors").Inc(1)
	}
	c.stats.Counter("connections_closed").Inc(1)
}
