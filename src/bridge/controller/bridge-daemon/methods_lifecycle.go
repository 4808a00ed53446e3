package bridgedaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Initialize will store information about a new connection and advertise the host commands.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	conn, err := c.connections.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting connection from context: %w", err)
	}

	opts, err := mapper.InitializeParamsToOptions(params)
	if err != nil {
		return nil, fmt.Errorf("reading initialization options: %w", err)
	}

	conn.InitializeParams = params
	conn.ClientName = mapper.InitializeParamsToClientName(params)
	conn.AssetsDir = opts.AssetsDir
	if err := c.connections.Set(ctx, conn); err != nil {
		return nil, fmt.Errorf("setting updated connection state: %w", err)
	}

	c.logger.Infow("host connection initialized", "connection", conn.UUID, "client", conn.ClientName)
	return &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{
			Name: _serverName,
		},
		Capabilities: protocol.ServerCapabilities{
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: entity.HostCommands,
			},
		},
	}, nil
}

// Initialized handles any actions that need to occur immediately after initialization.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	if err := c.hostShell.ShowMessage(ctx, &protocol.ShowMessageParams{
		Message: "Connection to scene-bridge is now initialized.",
		Type:    protocol.MessageTypeInfo,
	}); err != nil {
		c.logger.Warnf("showing initialized message: %s", err)
	}
	return nil
}

// Shutdown is sent just before Exit. The session opened by this connection is released while the host can still close its surface.
func (c *controller) Shutdown(ctx context.Context) error {
	id, err := mapper.ContextToConnectionUUID(ctx)
	if err != nil {
		return fmt.Errorf("getting connection from context: %w", err)
	}

	if s := c.editor.Session(); s != nil && s.ConnectionUUID == id {
		return c.editor.Dispose(ctx)
	}
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	if c.fullShutdown.Load() {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}

	conn, err := c.connections.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during connection exit: %w", err)
	}
	return c.EndSession(ctx, conn.UUID)
}

// RequestFullShutdown will set the controller to treat subsequent Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown.Store(true)
	return nil
}

// InitSession registers a new host connection and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.hostShell.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.connections.Set(ctx, mapper.UUIDToConnection(id, conn)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of a connection, during or after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	if err := c.editor.EndConnection(ctx, id); err != nil {
		c.logger.Error(err)
	}

	if err := c.hostShell.DeregisterClient(ctx, id); err != nil {
		c.logger.Error(err)
	}

	return c.connections.Delete(ctx, id)
}
